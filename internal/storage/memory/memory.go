package memory

import (
	"context"
	"sync"

	"ledger/internal/storage"
)

// Store keeps values in process memory. It is the backend used by tests and
// by runs that do not need durability.
type Store struct {
	mu       sync.Mutex
	items    map[string][]byte
	writes   int
	failWith error
}

func New() *Store {
	return &Store{items: map[string][]byte{}}
}

// NewSeeded returns a store pre-populated with seed. Values are copied.
func NewSeeded(seed map[string]string) *Store {
	s := New()
	for k, v := range seed {
		s.items[k] = []byte(v)
	}
	return s
}

// Get returns a copy of the stored value.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value, or returns the injected failure.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.items[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

func (s *Store) Close() error {
	return nil
}

// FailWrites makes every subsequent Set return err. A nil err restores
// normal behaviour.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// Writes returns the number of successful Set calls.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
