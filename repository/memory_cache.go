package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository. A zero ttl keeps entries
// until the process exits.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if m.expired(entry) {
		m.mu.Lock()
		// un Set concurrente pudo renovar la entrada
		if current, ok := m.data[key]; ok && m.expired(current) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt)
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()
	return nil
}
