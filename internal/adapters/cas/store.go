// Package cas implements the answer store, keyed by puzzle and input content hash.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AnswerStore = (*Store)(nil)

// Store implements ports.AnswerStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Answer
}

// NewStore creates a new AnswerStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Answer),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read answer store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal answer store"), "path", s.path)
	}

	return nil
}

// save writes the cache to disk. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal answer store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for answer store"), "dir", dir)
	}

	// Write to a sibling file first so concurrent readers never see a partial store.
	tmp := s.path + ".tmp"
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write answer store"), "path", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace answer store"), "path", s.path)
	}

	return nil
}

// Get retrieves the answer stored under key.
func (s *Store) Get(key string) (*domain.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answer, ok := s.cache[key]
	if !ok {
		return nil, nil
	}
	return &answer, nil
}

// Put stores the answer under answer.Key() and persists the store.
func (s *Store) Put(answer domain.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	answer.Cached = false
	s.cache[answer.Key()] = answer
	return s.save()
}

// Len returns the number of stored answers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}
