// Package domain contains the core domain models of the puzzle runner.
package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

const (
	// FirstDay is the first puzzle day.
	FirstDay = 1
	// LastDay is the last puzzle day.
	LastDay = 25
)

// PuzzleID identifies one part of one day's puzzle.
type PuzzleID struct {
	Day  int
	Part int
}

// NewPuzzleID validates day and part.
func NewPuzzleID(day, part int) (PuzzleID, error) {
	if day < FirstDay || day > LastDay {
		return PuzzleID{}, zerr.With(zerr.Wrap(ErrInvalidPuzzleID, "day out of range"), "day", day)
	}
	if part != 1 && part != 2 {
		return PuzzleID{}, zerr.With(zerr.Wrap(ErrInvalidPuzzleID, "part must be 1 or 2"), "part", part)
	}
	return PuzzleID{Day: day, Part: part}, nil
}

// Less orders puzzles by day, then part.
func (id PuzzleID) Less(other PuzzleID) bool {
	if id.Day != other.Day {
		return id.Day < other.Day
	}
	return id.Part < other.Part
}

func (id PuzzleID) String() string {
	return fmt.Sprintf("day %d part %d", id.Day, id.Part)
}
