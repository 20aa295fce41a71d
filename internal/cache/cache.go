// Package cache persists embedding vectors across runs. Embeddings are
// deterministic per model, so entries can live for a long time; the
// layered memory+disk design keeps hot vectors cheap and cold ones
// durable.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// VectorCache defines the interface for embedding caches
type VectorCache interface {
	Get(key string) ([]float32, bool)
	Set(key string, vector []float32, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from the embedding model and input text
func Key(model, text string) string {
	hash := sha256.Sum256([]byte(model + "\x00" + text))
	return "corrobora:v1:" + hex.EncodeToString(hash[:])
}
