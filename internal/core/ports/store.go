package ports

import "go.trai.ch/advent/internal/core/domain"

// AnswerStore defines the interface for storing and retrieving puzzle answers.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type AnswerStore interface {
	// Get retrieves the answer stored under key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.Answer, error)

	// Put stores the answer.
	Put(answer domain.Answer) error
}

// AnswerStoreOpener opens the answer store at a path.
type AnswerStoreOpener interface {
	Open(path string) (AnswerStore, error)
}
