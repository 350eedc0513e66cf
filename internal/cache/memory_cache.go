package cache

import "sync"

// MemoryCache provides an in-memory Provider for readers that fetch and
// re-read raw payloads during a run.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	closed  bool
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

// Fetch retrieves a cached payload if available. A closed cache misses.
func (c *MemoryCache) Fetch(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, false
	}
	data, exists := c.entries[key]
	return data, exists
}

// Store caches a payload. Stores after Close are dropped.
func (c *MemoryCache) Store(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.entries[key] = data
}

// Close releases all cached payloads. Safe to call more than once.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.closed = true
	return nil
}
