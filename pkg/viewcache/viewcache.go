// Package viewcache stores rendered list pages so repeated reads skip the
// database. Mutations mark views stale by invalidating a path prefix; the
// signal is fire-and-forget and callers never inspect a result.
package viewcache

import (
	"strings"
	"sync"
)

// Cache is a concurrency-safe store of rendered pages keyed by request path
// plus query string.
type Cache struct {
	mu    sync.RWMutex
	pages map[string][]byte
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{pages: make(map[string][]byte)}
}

// Get returns the cached page for key, if any.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	body, ok := c.pages[key]

	return body, ok
}

// Put stores the rendered page under key. The body is copied so callers may
// reuse their buffer.
func (c *Cache) Put(key string, body []byte) {
	dup := make([]byte, len(body))
	copy(dup, body)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages[key] = dup
}

// Invalidate drops every cached page whose key starts with prefix, forcing a
// re-render on next access.
func (c *Cache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.pages {
		if strings.HasPrefix(key, prefix) {
			delete(c.pages, key)
		}
	}
}
