package cache

import "time"

// NullCache is a no-op cache that never stores anything.
// Used when caching is disabled (--no-cache) and in tests that must always
// reach the feed.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(key string, v any) bool {
	return false
}

// Set does nothing.
func (c *NullCache) Set(key string, v any, expires time.Time) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(key string) error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
