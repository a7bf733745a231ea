// Package puzzles contains the puzzle solutions and the registry that serves them.
package puzzles

import (
	"strconv"
	"strings"

	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/advent/internal/engine/dynamic"
	"go.trai.ch/zerr"
)

// SolveFunc computes the answer of a puzzle part for input.
type SolveFunc func(input string, probe ports.Probe) (string, error)

// puzzle is a ports.Puzzle backed by a function.
type puzzle struct {
	id    domain.PuzzleID
	title string
	solve SolveFunc
}

// New creates a puzzle from its solve function.
func New(id domain.PuzzleID, title string, solve SolveFunc) ports.Puzzle {
	return &puzzle{id: id, title: title, solve: solve}
}

func (p *puzzle) ID() domain.PuzzleID { return p.id }
func (p *puzzle) Title() string       { return p.title }

func (p *puzzle) Solve(input string, probe ports.Probe) (string, error) {
	return p.solve(input, probe)
}

// observe reports executor events to probe, if there is one.
func observe[K comparable](probe ports.Probe) []dynamic.Option[K] {
	if probe == nil {
		return nil
	}
	return []dynamic.Option[K]{dynamic.WithProbe[K](probe)}
}

// invalidInput wraps domain.ErrInvalidInput with the offending line.
func invalidInput(msg string, line int, value string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidInput, msg), "line", line), "value", value)
}

// parseInts parses whitespace separated integers.
func parseInts(input string) ([]int64, error) {
	var values []int64
	line := 0
	for text := range strings.Lines(input) {
		line++
		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, invalidInput("not an integer", line, field)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
