package translation

import "sync"

type cacheKey struct {
	text   string
	target string
}

// Cache stores translation results keyed by the exact (text, target
// language) pair. Entries are never evicted; translations of a fixed input
// are stable enough that the cache only grows with distinct requests.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]string
}

// NewCache creates an empty translation cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[cacheKey]string),
	}
}

// Get retrieves a cached translation.
func (c *Cache) Get(text, target string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translated, ok := c.entries[cacheKey{text, target}]
	return translated, ok
}

// Add stores a translation result.
func (c *Cache) Add(text, target, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{text, target}] = translated
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
