package domain

import (
	"fmt"
	"strings"
)

// DayPlaceholder is replaced by the zero-padded day number in Config.Inputs.
const DayPlaceholder = "{{day}}"

// Config holds the runner settings read from advent.yaml.
type Config struct {
	// Inputs is the input file pattern used when running every puzzle.
	Inputs string
	// Cache is the path of the answer store.
	Cache string
	// Jobs is the default number of puzzles solved concurrently.
	Jobs int
}

// DefaultConfig returns the settings used when no advent.yaml is present.
func DefaultConfig() Config {
	return Config{
		Inputs: "inputs/day" + DayPlaceholder + ".txt",
		Cache:  ".advent/answers.json",
		Jobs:   4,
	}
}

// InputPath returns the input file of day according to c.Inputs.
func (c Config) InputPath(day int) string {
	return strings.ReplaceAll(c.Inputs, DayPlaceholder, fmt.Sprintf("%02d", day))
}
