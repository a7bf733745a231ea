package ports

// Hasher defines the interface for fingerprinting puzzle input.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashInput returns a stable fingerprint of input.
	HashInput(input string) string
}
