package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps tables in a map. Used by tests and ephemeral runs.
type MemoryBackend struct {
	mu     sync.RWMutex
	tables map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{tables: make(map[string][]byte)}
}

func (m *MemoryBackend) ReadTable(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.tables[name]
	if !ok {
		return nil, ErrTableMissing
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *MemoryBackend) WriteTable(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	m.tables[name] = cp
	return nil
}
