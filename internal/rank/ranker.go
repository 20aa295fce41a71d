// Package rank orders papers by relevance to a question or outline
// section, blending semantic similarity with a citation-count boost.
package rank

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/corrobora/corrobora/internal/embed"
	"github.com/corrobora/corrobora/internal/model"
)

// Ranker scores papers against a natural-language query
type Ranker struct {
	provider embed.Provider
	config   model.RankingConfig
}

// NewRanker creates a ranker backed by an embedding provider
func NewRanker(provider embed.Provider, config model.RankingConfig) *Ranker {
	if config.CitationThreshold <= 0 {
		config.CitationThreshold = 50
	}
	if config.CitationFactor <= 0 {
		config.CitationFactor = 0.1
	}
	if config.WordsPerMinute <= 0 {
		config.WordsPerMinute = 200
	}
	if config.WordsPerPage <= 0 {
		config.WordsPerPage = 500
	}
	if config.AbstractRatio <= 0 {
		config.AbstractRatio = 10
	}
	if config.DefaultWordCount <= 0 {
		config.DefaultWordCount = 5000
	}
	return &Ranker{
		provider: provider,
		config:   config,
	}
}

// Rank orders papers by descending relevance to the query. A blank query
// or empty paper list returns an empty result without touching the provider
func (r *Ranker) Rank(ctx context.Context, query string, papers []model.PaperMetadata) ([]model.RankedPaper, error) {
	if strings.TrimSpace(query) == "" || len(papers) == 0 {
		return []model.RankedPaper{}, nil
	}

	queryVector, err := r.provider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	texts := make([]string, len(papers))
	for i, paper := range papers {
		texts[i] = paperText(paper)
	}

	vectors, err := r.provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed papers: %w", err)
	}

	ranked := make([]model.RankedPaper, len(papers))
	for i, paper := range papers {
		similarity := embed.CosineSimilarity(queryVector, vectors[i])
		boost := r.citationBoost(paper.CitationCount)
		ranked[i] = model.RankedPaper{
			Paper:                paper,
			RelevanceScore:       similarity + boost,
			SemanticSimilarity:   similarity,
			CitationBoost:        boost,
			EstimatedReadingTime: r.readingTime(paper),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked, nil
}

// RankForSection ranks papers against an outline section, using the
// section title and content as the query
func (r *Ranker) RankForSection(ctx context.Context, section model.Section, papers []model.PaperMetadata) ([]model.RankedPaper, error) {
	return r.Rank(ctx, section.Query(), papers)
}

// citationBoost rewards heavily cited papers on a log scale. Below the
// threshold the boost is zero, so citation counts break ties rather than
// dominate similarity
func (r *Ranker) citationBoost(count *int) float64 {
	if count == nil || *count < r.config.CitationThreshold {
		return 0
	}
	return r.config.CitationFactor * math.Log10(float64(*count)/float64(r.config.CitationThreshold))
}

// paperText returns the text to embed for a paper, falling back to the
// title when no abstract is available
func paperText(paper model.PaperMetadata) string {
	if strings.TrimSpace(paper.Abstract) != "" {
		return paper.Abstract
	}
	return paper.Title
}
