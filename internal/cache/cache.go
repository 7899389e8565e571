// Package cache stores raw upstream responses for a short revalidation window.
package cache

import (
	"context"
	"sync"
	"time"
)

// Store is a byte-oriented cache with per-entry expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Memory is an in-process Store guarded by a RWMutex.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	now   func() time.Time
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: map[string]memoryEntry{}, now: time.Now}
}

// Get returns a copy of the cached value when present and unexpired.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if m.now().After(entry.expires) {
		m.mu.Lock()
		if current, ok := m.items[key]; ok && current.expires.Equal(entry.expires) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return clone(entry.value), true, nil
}

// Set stores value for ttl. Non-positive ttls are ignored.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = memoryEntry{value: clone(value), expires: m.now().Add(ttl)}
	return nil
}

// Len reports the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
