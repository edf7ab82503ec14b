// Package memstore provides an in-memory implementation of the
// store.Store interface. It backs the memory store backend and serves
// as the injectable fake in tests.
package memstore

import (
	"context"
	"sync"

	"github.com/okravchuk/worddrill/internal/store"
)

// MemStore is an in-memory key-value store. It is safe for concurrent
// use, holds copies of stored values, and loses everything on restart.
type MemStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// Ensure MemStore implements the store.Store interface
var _ store.Store = (*MemStore)(nil)

// New creates an empty MemStore.
func New() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// Get implements store.Store.Get.
func (m *MemStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set implements store.Store.Set.
func (m *MemStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

// Remove implements store.Store.Remove.
func (m *MemStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Keys implements store.Store.Keys.
func (m *MemStore) Keys(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys, nil
}
