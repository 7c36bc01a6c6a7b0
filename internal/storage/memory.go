package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps the blobs in a map. It backs the service tests and can
// run the engine without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// Get fetches the blob stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.records[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored blob.
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Set overwrites the blob stored under key.
func (s *MemoryStore) Set(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.records[key] = stored
	return nil
}
