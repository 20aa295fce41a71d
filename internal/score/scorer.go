// Package score measures how strongly a claim is corroborated by the rest
// of the claim corpus. Semantically similar claims from other sources count
// as support; similar claims with opposing wording count as contradiction.
package score

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/corrobora/corrobora/internal/contradict"
	"github.com/corrobora/corrobora/internal/embed"
	"github.com/corrobora/corrobora/internal/model"
)

// Scorer assesses claim strength from embedding similarity
type Scorer struct {
	provider  embed.Provider
	detector  *contradict.Detector
	threshold float64
}

// NewScorer creates a scorer backed by an embedding provider
func NewScorer(provider embed.Provider, detector *contradict.Detector, config model.ScoringConfig) *Scorer {
	threshold := config.SimilarityThreshold
	if threshold <= 0 {
		threshold = 0.7
	}
	return &Scorer{
		provider:  provider,
		detector:  detector,
		threshold: threshold,
	}
}

// Score assesses one target claim against the full claim corpus
func (s *Scorer) Score(ctx context.Context, target model.Claim, corpus []model.Claim) (model.ClaimStrength, error) {
	if len(corpus) == 0 {
		return model.ClaimStrength{ClaimID: target.ID}, nil
	}

	// One batched request for the target and every candidate
	texts := make([]string, 0, len(corpus)+1)
	texts = append(texts, target.Text)
	for _, claim := range corpus {
		texts = append(texts, claim.Text)
	}

	vectors, err := s.provider.EmbedBatch(ctx, texts)
	if err != nil {
		return model.ClaimStrength{}, fmt.Errorf("embed claims: %w", err)
	}

	return s.assess(target, vectors[0], corpus, vectors[1:]), nil
}

// ScoreBatch assesses several claims in one pass. Every embedding is
// fetched in a single provider request up front; the comparisons that
// follow are pure CPU. Ids not present in the corpus are skipped
func (s *Scorer) ScoreBatch(ctx context.Context, ids []string, corpus []model.Claim) (map[string]model.ClaimStrength, error) {
	results := make(map[string]model.ClaimStrength)
	if len(ids) == 0 || len(corpus) == 0 {
		return results, nil
	}

	texts := make([]string, len(corpus))
	index := make(map[string]int, len(corpus))
	for i, claim := range corpus {
		texts[i] = claim.Text
		index[claim.ID] = i
	}

	vectors, err := s.provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed claims: %w", err)
	}

	for _, id := range ids {
		i, ok := index[id]
		if !ok {
			continue
		}
		results[id] = s.assess(corpus[i], vectors[i], corpus, vectors)
	}

	return results, nil
}

// WeakClaims returns the claims whose independent supporting count falls
// below minSources, in corpus order
func (s *Scorer) WeakClaims(ctx context.Context, corpus []model.Claim, minSources int) ([]model.ClaimStrength, error) {
	if minSources <= 0 {
		return nil, fmt.Errorf("minimum sources must be positive, got %d", minSources)
	}

	ids := make([]string, len(corpus))
	for i, claim := range corpus {
		ids[i] = claim.ID
	}

	results, err := s.ScoreBatch(ctx, ids, corpus)
	if err != nil {
		return nil, err
	}

	var weak []model.ClaimStrength
	for _, claim := range corpus {
		strength, ok := results[claim.ID]
		if !ok {
			continue
		}
		if len(strength.SupportingClaims) < minSources {
			weak = append(weak, strength)
		}
	}

	return weak, nil
}

// assess partitions the corpus into supporting and contradictory claims
// for one target whose embedding is already available
func (s *Scorer) assess(target model.Claim, targetVector []float32, corpus []model.Claim, vectors [][]float32) model.ClaimStrength {
	result := model.ClaimStrength{ClaimID: target.ID}

	for i, candidate := range corpus {
		// A claim cannot corroborate itself, and two claims quoting the
		// same paper are one voice, not two
		if candidate.ID == target.ID || candidate.SourceKey() == target.SourceKey() {
			continue
		}

		similarity := embed.CosineSimilarity(targetVector, vectors[i])
		if similarity < s.threshold {
			continue
		}

		if s.detector.IsContradictory(target.Text, candidate.Text) {
			result.ContradictoryClaims = append(result.ContradictoryClaims, model.ContradictoryClaim{
				ClaimID:             candidate.ID,
				Source:              candidate.PrimaryQuote.Source,
				Similarity:          similarity,
				SentimentOpposition: s.detector.SentimentOpposition(target.Text, candidate.Text),
			})
			continue
		}

		result.SupportingClaims = append(result.SupportingClaims, model.SupportingClaim{
			ClaimID:    candidate.ID,
			Source:     candidate.PrimaryQuote.Source,
			Similarity: similarity,
		})
	}

	sort.SliceStable(result.SupportingClaims, func(i, j int) bool {
		return result.SupportingClaims[i].Similarity > result.SupportingClaims[j].Similarity
	})
	sort.SliceStable(result.ContradictoryClaims, func(i, j int) bool {
		return result.ContradictoryClaims[i].Similarity > result.ContradictoryClaims[j].Similarity
	})

	result.StrengthScore = StrengthScore(len(result.SupportingClaims))
	return result
}

// StrengthScore reduces an independent supporting count to a strength
// value. Growth is linear up to three sources and logarithmic beyond, so
// a fourth corroborating source moves the needle less than a second
func StrengthScore(supporting int) float64 {
	if supporting <= 0 {
		return 0
	}
	if supporting <= 3 {
		return float64(supporting)
	}
	return 3 + math.Log(float64(supporting-2))
}
