package persistence

import (
	"context"
	"sync"
)

// MemStore is a map-backed KV for tests and ephemeral sessions.
type MemStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemStore creates an empty in-memory KV.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]byte)}
}

// Load implements KV.
func (s *MemStore) Load(_ context.Context, key string, fallback []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.m[key]
	if !ok {
		return fallback, nil
	}
	return append([]byte(nil), v...), nil
}

// Save implements KV.
func (s *MemStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[key] = append([]byte(nil), value...)
	return nil
}

// Len reports the number of stored keys.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
