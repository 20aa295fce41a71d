package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps vectors in process memory
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a vector from the cache
func (c *MemoryCache) Get(key string) ([]float32, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]float32), true
	}
	return nil, false
}

// Set stores a vector in the cache with the given TTL
func (c *MemoryCache) Set(key string, vector []float32, ttl time.Duration) error {
	c.cache.Set(key, vector, ttl)
	return nil
}

// Delete removes a vector from the cache
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all vectors from the cache
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
