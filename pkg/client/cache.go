package client

import (
	"sync"
	"time"
)

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// responseCache is a TTL cache of raw response bodies keyed by
// path+query. Expired entries are dropped lazily on read.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (rc *responseCache) get(key string) ([]byte, bool) {
	rc.mu.RLock()
	entry, ok := rc.entries[key]
	rc.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		rc.remove(key)
		return nil, false
	}
	return entry.data, true
}

func (rc *responseCache) set(key string, data []byte) {
	if rc.ttl <= 0 {
		return
	}
	rc.mu.Lock()
	rc.entries[key] = cacheEntry{data: data, expiresAt: time.Now().Add(rc.ttl)}
	rc.mu.Unlock()
}

func (rc *responseCache) remove(key string) {
	rc.mu.Lock()
	delete(rc.entries, key)
	rc.mu.Unlock()
}

func (rc *responseCache) clear() {
	rc.mu.Lock()
	rc.entries = make(map[string]cacheEntry)
	rc.mu.Unlock()
}
