// Package fs implements the filesystem adapters: input reading and input fingerprinting.
package fs

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/advent/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints puzzle input with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashInput returns the XXHash of input as 16 hex digits.
// Line endings and trailing whitespace are normalized first, so the same puzzle
// input saved by different editors gets the same hash.
func (h *Hasher) HashInput(input string) string {
	hasher := xxhash.New()
	for line := range strings.Lines(normalize(input)) {
		_, _ = hasher.WriteString(strings.TrimRight(line, "\r\n"))
		_, _ = hasher.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

func normalize(input string) string {
	return strings.TrimRight(input, " \t\r\n")
}
