package store

import (
	"context"
	"sync"
)

// Adapter is the persistence medium behind every table: one JSON-encoded
// array per table under a fixed, versioned key. Implementations exist for
// plain files, Redis and Postgres; Memory backs tests.
type Adapter interface {
	// Get returns the raw stored value for a table, or nil when the table
	// has never been written.
	Get(ctx context.Context, table string) ([]byte, error)

	// PutAll fully replaces the stored value. There is no merge.
	PutAll(ctx context.Context, table string, data []byte) error
}

// Memory is an in-process adapter for tests and ephemeral runs.
type Memory struct {
	mu     sync.RWMutex
	tables map[string][]byte
}

var _ Adapter = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{tables: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, table string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tables[table], nil
}

func (m *Memory) PutAll(_ context.Context, table string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.tables[table] = cp
	return nil
}
