package store

import (
	"context"
	"sync"
	"time"

	"macro-stress/internal/simulate"
)

type entry struct {
	table     *simulate.Table
	expiresAt time.Time
}

// MemoryStore is an in-process RunStore with a fixed TTL. Tables are
// immutable, so they are shared rather than copied.
type MemoryStore struct {
	mu    sync.RWMutex
	store map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		store: make(map[string]entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (m *MemoryStore) Save(_ context.Context, id string, t *simulate.Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[id] = entry{table: t, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (*simulate.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.store[id]
	if !ok || m.now().After(e.expiresAt) {
		return nil, ErrNotFound
	}
	return e.table, nil
}

// Len reports the number of entries, expired ones included until swept.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

// Sweep drops expired entries.
func (m *MemoryStore) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for id, e := range m.store {
		if now.After(e.expiresAt) {
			delete(m.store, id)
		}
	}
}

// Janitor sweeps every interval until ctx is done.
func (m *MemoryStore) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
