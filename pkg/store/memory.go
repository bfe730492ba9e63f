package store

import (
	"context"
	"sync"
)

// MemoryStore is a simple in-memory Store useful during tests or when no
// persistence service is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed replaces the stored collection, for preloading fixtures.
func (s *MemoryStore) Seed(recs []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]Record(nil), recs...)
}

// Load implements the Store interface.
func (s *MemoryStore) Load(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Create implements the Store interface.
func (s *MemoryStore) Create(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}
