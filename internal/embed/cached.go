package embed

import (
	"context"
	"fmt"
	"time"

	"github.com/corrobora/corrobora/internal/cache"
)

// Cached wraps a Provider with a transparent vector cache. Only texts
// missing from the cache reach the underlying provider, still as one
// batched request
type Cached struct {
	provider Provider
	store    cache.VectorCache
	model    string
	ttl      time.Duration
}

// NewCached creates a caching wrapper. The model string namespaces keys
// so switching models never serves stale vectors
func NewCached(provider Provider, store cache.VectorCache, model string, ttl time.Duration) *Cached {
	if model == "" {
		model = provider.Name()
	}
	return &Cached{
		provider: provider,
		store:    store,
		model:    model,
		ttl:      ttl,
	}
}

// Name returns the underlying provider name
func (c *Cached) Name() string {
	return c.provider.Name()
}

// Embed returns a cached vector or fetches and stores a fresh one
func (c *Cached) Embed(ctx context.Context, text string) ([]float32, error) {
	key := cache.Key(c.model, text)
	if vector, found := c.store.Get(key); found {
		return vector, nil
	}

	vector, err := c.provider.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	_ = c.store.Set(key, vector, c.ttl)
	return vector, nil
}

// EmbedBatch serves cache hits locally and fetches the remaining texts
// from the provider in a single request
func (c *Cached) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))

	var missing []string
	var missingIdx []int
	for i, text := range texts {
		if vector, found := c.store.Get(cache.Key(c.model, text)); found {
			vectors[i] = vector
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	fetched, err := c.provider.EmbedBatch(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(fetched) != len(missing) {
		return nil, fmt.Errorf("provider returned %d embeddings for %d inputs", len(fetched), len(missing))
	}

	for j, vector := range fetched {
		vectors[missingIdx[j]] = vector
		_ = c.store.Set(cache.Key(c.model, missing[j]), vector, c.ttl)
	}
	return vectors, nil
}
