// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/advent/internal/core/domain"

// Probe receives the events of the memoized executor while a puzzle is solved.
type Probe interface {
	Attempt()
	Descend()
	Resolve(depth int)
	Overwrite()
}

// Puzzle is one part of one day's puzzle.
//
//go:generate go run go.uber.org/mock/mockgen -source=puzzle.go -destination=mocks/mock_puzzle.go -package=mocks
type Puzzle interface {
	ID() domain.PuzzleID
	Title() string
	// Solve computes the answer for input, reporting executor work to probe.
	Solve(input string, probe Probe) (string, error)
}

// PuzzleRegistry holds the available puzzles.
type PuzzleRegistry interface {
	// Lookup returns the puzzle for id, or an error matching domain.ErrUnknownPuzzle.
	Lookup(id domain.PuzzleID) (Puzzle, error)
	// All returns every puzzle ordered by day and part.
	All() []Puzzle
}
