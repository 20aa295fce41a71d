// Package engine wires the corpus store, claim repository, quote
// verifier, strength scorer, and relevance ranker into one facade the
// CLI drives.
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/corrobora/corrobora/internal/cache"
	"github.com/corrobora/corrobora/internal/claims"
	"github.com/corrobora/corrobora/internal/contradict"
	"github.com/corrobora/corrobora/internal/corpus"
	"github.com/corrobora/corrobora/internal/embed"
	"github.com/corrobora/corrobora/internal/ingest"
	"github.com/corrobora/corrobora/internal/model"
	"github.com/corrobora/corrobora/internal/rank"
	"github.com/corrobora/corrobora/internal/score"
	"github.com/corrobora/corrobora/internal/verify"
)

// Engine exposes every verification, scoring, and ranking operation
type Engine struct {
	config   *model.Config
	store    *corpus.Store
	claims   *claims.Repository
	sections *claims.Sections
	verifier *verify.Verifier
	detector *contradict.Detector
	scorer   *score.Scorer
	ranker   *rank.Ranker
	provider embed.Provider // nil when embeddings are disabled
	ingestor *ingest.Ingestor
	logger   *zap.Logger
}

// New creates an engine from configuration. The embedding provider is
// optional; operations that need one fail with a clear error instead
func New(cfg *model.Config, logger *zap.Logger) (*Engine, error) {
	if cfg == nil {
		defaults := model.DefaultConfig()
		cfg = &defaults
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	provider, err := embed.NewProvider(embed.ConfigFromModel(cfg.Embedding))
	if err != nil {
		return nil, fmt.Errorf("embedding provider: %w", err)
	}

	if provider != nil && cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".corrobora", "cache")
			}
		}
		if dir != "" {
			vectors := cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
			namespace := cfg.Embedding.Provider + "/" + cfg.Embedding.Model
			provider = embed.NewCached(provider, vectors, namespace, cfg.Cache.DiskTTL)
		}
	}

	store := corpus.NewStore(cfg.Corpus)
	detector := contradict.NewDetector(cfg.Scoring.Lexicon)

	return &Engine{
		config:   cfg,
		store:    store,
		claims:   claims.NewRepository(cfg.Claims.Path),
		sections: claims.NewSections(cfg.Claims.OutlinePath),
		verifier: verify.NewVerifier(store, cfg.Matching, logger),
		detector: detector,
		scorer:   score.NewScorer(provider, detector, cfg.Scoring),
		ranker:   rank.NewRanker(provider, cfg.Ranking),
		provider: provider,
		ingestor: ingest.NewIngestor(cfg.Corpus.Dir, logger),
		logger:   logger,
	}, nil
}

// LoadClaims reads the claim corpus from disk
func (e *Engine) LoadClaims() error {
	return e.claims.Load()
}

// LoadOutline reads the draft outline from disk
func (e *Engine) LoadOutline() error {
	return e.sections.Load()
}

// Claims returns every loaded claim
func (e *Engine) Claims() ([]model.Claim, error) {
	return e.claims.All()
}

// Claim returns one loaded claim by id
func (e *Engine) Claim(id string) (model.Claim, error) {
	return e.claims.Get(id)
}

// VerifyQuote checks one quoted passage against its source document
func (e *Engine) VerifyQuote(quoteText, source string) (model.Verification, error) {
	return e.verifier.VerifyQuote(quoteText, source)
}

// VerifyClaim verifies every quote of one loaded claim
func (e *Engine) VerifyClaim(id string) ([]model.QuoteVerification, error) {
	claim, err := e.claims.Get(id)
	if err != nil {
		return nil, err
	}
	return e.verifier.VerifyClaim(claim), nil
}

// VerifyAll verifies every quote of every loaded claim
func (e *Engine) VerifyAll(ctx context.Context) (model.VerificationReport, error) {
	all, err := e.claims.All()
	if err != nil {
		return model.VerificationReport{}, err
	}
	return e.verifier.VerifyAll(ctx, all)
}

// SearchQuotes looks for a passage line by line across the corpus,
// optionally narrowed to sources matching an author-year designator
func (e *Engine) SearchQuotes(query, authorFilter string) ([]model.SearchMatch, error) {
	return e.verifier.Search(query, authorFilter)
}

// ScoreClaim assesses how strongly one claim is corroborated by the
// rest of the loaded corpus
func (e *Engine) ScoreClaim(ctx context.Context, id string) (model.ClaimStrength, error) {
	if err := e.requireProvider(); err != nil {
		return model.ClaimStrength{}, err
	}
	target, err := e.claims.Get(id)
	if err != nil {
		return model.ClaimStrength{}, err
	}
	all, err := e.claims.All()
	if err != nil {
		return model.ClaimStrength{}, err
	}
	return e.scorer.Score(ctx, target, all)
}

// ScoreClaims assesses several claims in one batched pass
func (e *Engine) ScoreClaims(ctx context.Context, ids []string) (map[string]model.ClaimStrength, error) {
	if err := e.requireProvider(); err != nil {
		return nil, err
	}
	all, err := e.claims.All()
	if err != nil {
		return nil, err
	}
	return e.scorer.ScoreBatch(ctx, ids, all)
}

// WeakClaims lists claims with fewer than minSources independent
// supporters
func (e *Engine) WeakClaims(ctx context.Context, minSources int) ([]model.ClaimStrength, error) {
	if err := e.requireProvider(); err != nil {
		return nil, err
	}
	all, err := e.claims.All()
	if err != nil {
		return nil, err
	}
	return e.scorer.WeakClaims(ctx, all, minSources)
}

// RankPapers orders papers by relevance to a question
func (e *Engine) RankPapers(ctx context.Context, query string, papers []model.PaperMetadata) ([]model.RankedPaper, error) {
	if err := e.requireProvider(); err != nil {
		return nil, err
	}
	return e.ranker.Rank(ctx, query, papers)
}

// RankForSection orders papers by relevance to one outline section
func (e *Engine) RankForSection(ctx context.Context, sectionID string, papers []model.PaperMetadata) ([]model.RankedPaper, error) {
	if err := e.requireProvider(); err != nil {
		return nil, err
	}
	section, err := e.sections.GetByID(sectionID)
	if err != nil {
		return nil, err
	}
	return e.ranker.RankForSection(ctx, section, papers)
}

// Section returns one loaded outline section
func (e *Engine) Section(id string) (model.Section, error) {
	return e.sections.GetByID(id)
}

func (e *Engine) requireProvider() error {
	if e.provider == nil {
		return fmt.Errorf("embedding provider not configured (set embedding.provider to openai, ollama, or mock)")
	}
	return nil
}
