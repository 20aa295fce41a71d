package cache

import "time"

// LayeredCache combines a memory layer with a disk layer
type LayeredCache struct {
	memory VectorCache
	disk   VectorCache
}

// NewLayeredCache creates a new layered cache
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get retrieves a vector, checking memory first, then disk
func (c *LayeredCache) Get(key string) ([]float32, bool) {
	if vector, found := c.memory.Get(key); found {
		return vector, true
	}

	if vector, found := c.disk.Get(key); found {
		// Promote to the memory layer
		_ = c.memory.Set(key, vector, 0)
		return vector, true
	}

	return nil, false
}

// Set stores a vector in both layers
func (c *LayeredCache) Set(key string, vector []float32, ttl time.Duration) error {
	if err := c.memory.Set(key, vector, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, vector, ttl)
}

// Delete removes a vector from both layers
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear removes all vectors from both layers
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
