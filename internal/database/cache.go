package database

import "sync"

// Cache holds every record of a database after its first full scan. The
// first Populate wins; later ones are ignored until Reset. A cache is not
// tied to a file path: share one only between accessors of the same file.
type Cache struct {
	mu      sync.RWMutex
	records []Record
	warm    bool
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

var shared = NewCache()

// SharedCache returns the process-wide cache used when no cache is injected.
func SharedCache() *Cache {
	return shared
}

// Records returns the cached records and whether the cache is populated.
// The slice is shared and must not be modified.
func (c *Cache) Records() ([]Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records, c.warm
}

// Populate stores records unless the cache is already populated, and
// reports whether they were stored.
func (c *Cache) Populate(records []Record) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.warm {
		return false
	}
	c.records = records
	c.warm = true
	return true
}

// Reset empties the cache so the next scan reads the file again.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.warm = false
}

// Len returns the number of cached records.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
