package cas

import (
	"sync"

	"go.trai.ch/advent/internal/core/ports"
)

var _ ports.AnswerStoreOpener = (*Opener)(nil)

// Opener opens answer stores, sharing one Store per path so that concurrent
// runs write through the same lock.
type Opener struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{stores: make(map[string]*Store)}
}

// Open returns the store backed by the file at path.
func (o *Opener) Open(path string) (ports.AnswerStore, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if s, ok := o.stores[path]; ok {
		return s, nil
	}
	s, err := NewStore(path)
	if err != nil {
		return nil, err
	}
	o.stores[path] = s
	return s, nil
}
