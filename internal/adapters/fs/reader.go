package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/zerr"
)

// StdinPath selects standard input.
const StdinPath = "-"

var _ ports.InputSource = (*Reader)(nil)

// Reader reads puzzle input from files or standard input.
type Reader struct {
	stdin io.Reader
}

// NewReader creates a Reader that uses os.Stdin for standard input.
func NewReader() *Reader {
	return NewReaderFrom(os.Stdin)
}

// NewReaderFrom creates a Reader that uses stdin for standard input.
func NewReaderFrom(stdin io.Reader) *Reader {
	return &Reader{stdin: stdin}
}

// Read returns the content of the file at path, or of standard input if path is
// empty or "-".
func (r *Reader) Read(path string) (string, error) {
	if path == "" || path == StdinPath {
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return "", zerr.Wrap(err, "failed to read input from stdin")
		}
		return string(data), nil
	}

	path = filepath.Clean(path)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read input file"), "path", path)
	}
	return string(data), nil
}
