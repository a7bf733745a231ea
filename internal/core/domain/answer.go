package domain

import (
	"fmt"
	"time"
)

// Answer is the solution of a puzzle for one particular input.
type Answer struct {
	Day       int       `json:"day"`
	Part      int       `json:"part"`
	InputHash string    `json:"input_hash,omitzero"`
	Value     string    `json:"value"`
	Timestamp time.Time `json:"timestamp,omitzero"`
	// Cached is set when the answer was served from the answer store.
	Cached bool `json:"-"`
}

// ID returns the puzzle the answer belongs to.
func (a Answer) ID() PuzzleID {
	return PuzzleID{Day: a.Day, Part: a.Part}
}

// AnswerKey returns the answer store key for a puzzle and input hash.
func AnswerKey(id PuzzleID, inputHash string) string {
	return fmt.Sprintf("%02d.%d.%s", id.Day, id.Part, inputHash)
}

// Key returns the answer store key of a.
func (a Answer) Key() string {
	return AnswerKey(a.ID(), a.InputHash)
}
