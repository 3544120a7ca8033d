// Package storage provides the in-process snapshot store used when no Redis
// address is configured, and by tests that exercise persistence round trips.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is a process-local ports.SnapshotStore. Snapshots are kept as
// serialized JSON so load/restore behaves exactly like a durable backend.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("snapshot marshal %s: %w", key, err)
	}
	s.mu.Lock()
	s.snapshots[key] = b
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Load(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	b, ok := s.snapshots[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, fmt.Errorf("snapshot unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.snapshots, key)
	s.mu.Unlock()
	return nil
}
