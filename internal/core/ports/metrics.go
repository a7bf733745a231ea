package ports

import (
	"io"
	"net/http"

	"go.trai.ch/advent/internal/core/domain"
)

// Run outcomes counted by Metrics.Outcome.
const (
	OutcomeSolved = "solved"
	OutcomeCached = "cached"
	OutcomeFailed = "failed"
)

// Metrics collects executor statistics per puzzle.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// Probe returns the probe that records work done for id.
	Probe(id domain.PuzzleID) Probe
	// Outcome counts a finished run of id.
	Outcome(id domain.PuzzleID, outcome string)
	// Report writes the collected statistics to w.
	Report(w io.Writer) error
	// Handler serves the collected statistics over HTTP.
	Handler() http.Handler
}
