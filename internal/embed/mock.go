package embed

import (
	"context"
	"hash/fnv"
	"math"
)

// MockProvider is a deterministic provider for tests and offline runs. It
// derives a fixed-dimension unit vector from the text hash, so the same
// text always gets the same embedding
type MockProvider struct {
	dimensions int
}

// NewMockProvider returns a provider producing deterministic embeddings
// of the given dimensions
func NewMockProvider(dimensions int) *MockProvider {
	if dimensions <= 0 {
		dimensions = 64
	}
	return &MockProvider{dimensions: dimensions}
}

// Name returns the provider name
func (p *MockProvider) Name() string {
	return "mock"
}

// Embed returns a deterministic embedding based on the text hash
func (p *MockProvider) Embed(_ context.Context, text string) ([]float32, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	seed := float64(h.Sum64()%100003) + 1

	vector := make([]float32, p.dimensions)
	for i := range vector {
		vector[i] = float32(math.Sin(seed*float64(i+1))*0.1 + 0.01)
	}

	// Normalize to unit length for cosine similarity
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	if sum > 0 {
		norm := 1 / math.Sqrt(sum)
		for i := range vector {
			vector[i] *= float32(norm)
		}
	}
	return vector, nil
}

// EmbedBatch embeds each text in order
func (p *MockProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := p.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}
	return vectors, nil
}
