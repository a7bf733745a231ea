package ports

// InputSource defines the interface for reading puzzle input.
//
//go:generate go run go.uber.org/mock/mockgen -source=input.go -destination=mocks/mock_input.go -package=mocks
type InputSource interface {
	// Read returns the content of the file at path, or of standard input if path is empty or "-".
	// A missing file is reported with an error matching fs.ErrNotExist.
	Read(path string) (string, error)
}
