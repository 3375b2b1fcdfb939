// Package memory provides an in-process implementation of the local
// key-value store, used in tests and single-process deployments where no
// Redis is configured.
package memory

import (
	"context"
	"sync"

	"vocablo/app/port"
)

// Store implements port.KVStore on a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

var _ port.KVStore = (*Store)(nil)

// Get returns the value stored under key, or port.ErrKeyNotFound.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, port.ErrKeyNotFound
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

// Set stores a copy of the value under key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	copied := make([]byte, len(value))
	copy(copied, value)

	s.mu.Lock()
	s.data[key] = copied
	s.mu.Unlock()
	return nil
}

// Delete removes the key. Deleting a missing key is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
