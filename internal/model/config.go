package model

import "time"

// Config holds all engine settings
type Config struct {
	Corpus    CorpusConfig    `yaml:"corpus" json:"corpus"`
	Claims    ClaimsConfig    `yaml:"claims" json:"claims"`
	Matching  MatchingConfig  `yaml:"matching" json:"matching"`
	Scoring   ScoringConfig   `yaml:"scoring" json:"scoring"`
	Ranking   RankingConfig   `yaml:"ranking" json:"ranking"`
	Embedding EmbeddingConfig `yaml:"embedding" json:"embedding"`
	Cache     CacheConfig     `yaml:"cache" json:"cache"`
	Output    OutputConfig    `yaml:"output" json:"output"`
}

// CorpusConfig locates the source document corpus
type CorpusConfig struct {
	Dir        string `yaml:"dir" json:"dir"`                 // Directory of "Author(s) - Year - Title.txt" files
	SampleSize int    `yaml:"sample_size" json:"sample_size"` // Filenames listed in resolution error messages
}

// ClaimsConfig locates the claims and outline documents
type ClaimsConfig struct {
	Path        string `yaml:"path" json:"path"`                 // Claims markdown file, or a directory of them
	OutlinePath string `yaml:"outline_path" json:"outline_path"` // Draft outline markdown
}

// MatchingConfig tunes quote verification
type MatchingConfig struct {
	AcceptThreshold    float64 `yaml:"accept_threshold" json:"accept_threshold"`         // Fuzzy similarity that counts as verified
	SearchThreshold    float64 `yaml:"search_threshold" json:"search_threshold"`         // Word-overlap floor for line search hits
	ContextLines       int     `yaml:"context_lines" json:"context_lines"`               // Context lines around a verified match
	SearchContextLines int     `yaml:"search_context_lines" json:"search_context_lines"` // Context lines around a search hit
	MaxWorkers         int     `yaml:"max_workers" json:"max_workers"`                   // Parallelism for verify-all runs
}

// ScoringConfig tunes claim-strength scoring
type ScoringConfig struct {
	SimilarityThreshold float64       `yaml:"similarity_threshold" json:"similarity_threshold"` // Candidates below this are ignored
	Lexicon             LexiconConfig `yaml:"lexicon" json:"lexicon"`
}

// LexiconConfig supplies the contradiction detector's word tables
type LexiconConfig struct {
	Negations    []string   `yaml:"negations" json:"negations"`
	AntonymPairs [][]string `yaml:"antonym_pairs" json:"antonym_pairs"` // Two words per entry
	Positive     []string   `yaml:"positive" json:"positive"`
	Negative     []string   `yaml:"negative" json:"negative"`
}

// RankingConfig tunes paper relevance ranking
type RankingConfig struct {
	CitationThreshold int     `yaml:"citation_threshold" json:"citation_threshold"` // Citations needed before any boost
	CitationFactor    float64 `yaml:"citation_factor" json:"citation_factor"`       // Multiplier on log10(count/threshold)
	WordsPerMinute    int     `yaml:"words_per_minute" json:"words_per_minute"`     // Reading speed
	WordsPerPage      int     `yaml:"words_per_page" json:"words_per_page"`         // Page-count fallback
	AbstractRatio     int     `yaml:"abstract_ratio" json:"abstract_ratio"`         // Abstract-words fallback multiplier
	DefaultWordCount  int     `yaml:"default_word_count" json:"default_word_count"` // Title-only fallback
}

// EmbeddingConfig selects and tunes the embedding provider
type EmbeddingConfig struct {
	Provider  string        `yaml:"provider" json:"provider"` // openai, ollama, mock ("" disables)
	Model     string        `yaml:"model" json:"model"`
	APIKey    string        `yaml:"api_key,omitempty" json:"api_key,omitempty"`
	BaseURL   string        `yaml:"base_url,omitempty" json:"base_url,omitempty"` // Ollama endpoint or API override
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	RateLimit float64       `yaml:"rate_limit" json:"rate_limit"` // Requests per second, 0 = unlimited
	Burst     int           `yaml:"burst" json:"burst"`
}

// CacheConfig tunes the embedding cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"` // Disk layer location, "" = ~/.corrobora/cache
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the standard settings
func DefaultConfig() Config {
	return Config{
		Corpus: CorpusConfig{
			Dir:        "sources",
			SampleSize: 5,
		},
		Claims: ClaimsConfig{
			Path:        "claims",
			OutlinePath: "outline.md",
		},
		Matching: MatchingConfig{
			AcceptThreshold:    0.85,
			SearchThreshold:    0.7,
			ContextLines:       2,
			SearchContextLines: 5,
			MaxWorkers:         4,
		},
		Scoring: ScoringConfig{
			SimilarityThreshold: 0.7,
			Lexicon:             DefaultLexicon(),
		},
		Ranking: RankingConfig{
			CitationThreshold: 50,
			CitationFactor:    0.1,
			WordsPerMinute:    200,
			WordsPerPage:      500,
			AbstractRatio:     10,
			DefaultWordCount:  5000,
		},
		Embedding: EmbeddingConfig{
			Provider:  "openai",
			Model:     "text-embedding-3-small",
			Timeout:   60 * time.Second,
			RateLimit: 5,
			Burst:     10,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   30 * 24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}

// DefaultLexicon returns the standard contradiction word tables
func DefaultLexicon() LexiconConfig {
	return LexiconConfig{
		Negations: []string{
			"not", "no", "never", "without", "neither", "nor", "none",
			"nobody", "nothing", "nowhere", "hardly", "scarcely", "barely",
		},
		AntonymPairs: [][]string{
			{"increase", "decrease"},
			{"effective", "ineffective"},
			{"improve", "worsen"},
			{"better", "worse"},
			{"higher", "lower"},
			{"more", "less"},
			{"positive", "negative"},
			{"beneficial", "harmful"},
			{"advantage", "disadvantage"},
			{"strength", "weakness"},
			{"support", "oppose"},
			{"agree", "disagree"},
			{"confirm", "contradict"},
			{"consistent", "inconsistent"},
		},
		Positive: []string{
			"effective", "beneficial", "improve", "improved", "improves",
			"improvement", "better", "success", "successful", "advantage",
			"robust", "accurate", "superior", "consistent",
		},
		Negative: []string{
			"ineffective", "harmful", "worsen", "worsened", "worse", "fail",
			"failed", "failure", "disadvantage", "poor", "inaccurate",
			"inferior", "inconsistent", "biased",
		},
	}
}
