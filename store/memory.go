package store

import (
	"fmt"
	"sync"
)

// DefaultQuota mirrors the ~5MB budget of browser local storage.
const DefaultQuota = 5 << 20

// MemoryStore is the in-process Store used when no Redis address is
// configured. Writes are bounded by a byte quota so oversized embedded
// content fails the same way a full browser store would.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string][]byte
	used  int
	quota int
}

func NewMemoryStore(quota int) *MemoryStore {
	if quota <= 0 {
		quota = DefaultQuota
	}
	return &MemoryStore{data: make(map[string][]byte), quota: quota}
}

func (m *MemoryStore) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.used - len(m.data[key]) + len(value)
	if next > m.quota {
		return fmt.Errorf("%w: %d bytes over a %d byte quota", ErrCapacityExceeded, next-m.quota, m.quota)
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	m.used = next
	return nil
}

func (m *MemoryStore) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		m.used -= len(v)
		delete(m.data, key)
	}
}
