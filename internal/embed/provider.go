// Package embed supplies text embeddings from external providers behind a
// single interface, with cosine similarity, transparent caching, and rate
// limiting. Provider failures propagate unchanged; nothing here retries.
package embed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/corrobora/corrobora/internal/model"
)

// Provider defines the interface for embedding providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Embed generates an embedding for one text
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for all texts in a single request,
	// preserving input order one to one
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Config holds embedding provider configuration
type Config struct {
	// Provider name: "openai", "ollama", "mock", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// RateLimit caps requests per second (0 = unlimited)
	RateLimit float64

	// Burst allows short request bursts above the rate limit
	Burst int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   60 * time.Second,
		RateLimit: 5,
		Burst:     10,
	}
}

// ConfigFromModel converts model.EmbeddingConfig to embed.Config
func ConfigFromModel(modelConfig model.EmbeddingConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		RateLimit: modelConfig.RateLimit,
		Burst:     modelConfig.Burst,
	}
}

// NewProvider creates an embedding provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "mock":
		return NewMockProvider(0), nil

	case "":
		// No provider configured - return nil (embeddings disabled)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown embedding provider: %s (supported: openai, ollama, mock)", config.Provider)
	}
}
