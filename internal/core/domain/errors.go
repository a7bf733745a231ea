package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownPuzzle is returned when no solution is registered for a day and part.
	ErrUnknownPuzzle = zerr.New("no solution for puzzle")

	// ErrInvalidPuzzleID is returned when a day or part is out of range.
	ErrInvalidPuzzleID = zerr.New("invalid puzzle")

	// ErrInvalidInput is returned when puzzle input cannot be parsed.
	ErrInvalidInput = zerr.New("invalid puzzle input")

	// ErrNoSolution is returned when well-formed input has no answer.
	ErrNoSolution = zerr.New("the problem has no solution")

	// ErrUnsupportedConfigVersion is returned when advent.yaml declares a version this build cannot read.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrRunFailed is returned when at least one puzzle of a batch run failed.
	// Individual failures have already been reported.
	ErrRunFailed = zerr.New("run failed")
)
