package score

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/corrobora/corrobora/internal/contradict"
	"github.com/corrobora/corrobora/internal/model"
)

// vectorProvider returns pre-assigned vectors so tests control every
// similarity exactly
type vectorProvider struct {
	vectors    map[string][]float32
	batchCalls int
}

func (p *vectorProvider) Name() string {
	return "stub"
}

func (p *vectorProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vector, ok := p.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return vector, nil
}

func (p *vectorProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	p.batchCalls++
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, ok := p.vectors[text]
		if !ok {
			return nil, fmt.Errorf("no vector for %q", text)
		}
		vectors[i] = vector
	}
	return vectors, nil
}

// at returns a unit vector whose cosine against (1, 0) is exactly cos
func at(cos float64) []float32 {
	sin := math.Sqrt(1 - cos*cos)
	return []float32{float32(cos), float32(sin)}
}

func claim(id, text, source string) model.Claim {
	return model.Claim{
		ID:           id,
		Text:         text,
		PrimaryQuote: model.Quote{Text: text, Source: source},
	}
}

func newTestScorer(vectors map[string][]float32) (*Scorer, *vectorProvider) {
	provider := &vectorProvider{vectors: vectors}
	detector := contradict.NewDetector(model.DefaultLexicon())
	scorer := NewScorer(provider, detector, model.ScoringConfig{SimilarityThreshold: 0.7})
	return scorer, provider
}

func TestStrengthScore_Sequence(t *testing.T) {
	cases := []struct {
		supporting int
		expected   float64
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3 + math.Log(2)},
		{5, 3 + math.Log(3)},
		{6, 3 + math.Log(4)},
	}

	for _, tc := range cases {
		got := StrengthScore(tc.supporting)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("StrengthScore(%d): expected %v, got %v", tc.supporting, tc.expected, got)
		}
	}
}

func TestScorer_Score_ParaphraseScenario(t *testing.T) {
	target := claim("C1", "Batch effects degrade classifier performance across cohorts", "SourceA2020")
	corpus := []model.Claim{
		target,
		claim("C2", "Technical batch variation weakens classifier performance", "SourceB2021"),
		claim("C3", "Technical batch variation does not weaken classifier performance", "SourceB2021"),
	}
	scorer, _ := newTestScorer(map[string][]float32{
		corpus[0].Text: at(1.0),
		corpus[1].Text: at(0.9),
		corpus[2].Text: at(0.88),
	})

	result, err := scorer.Score(context.Background(), target, corpus)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if len(result.SupportingClaims) != 1 || result.SupportingClaims[0].ClaimID != "C2" {
		t.Fatalf("Expected C2 as the only supporter, got %+v", result.SupportingClaims)
	}
	if math.Abs(result.SupportingClaims[0].Similarity-0.9) > 1e-3 {
		t.Errorf("Expected similarity 0.9, got %v", result.SupportingClaims[0].Similarity)
	}
	if len(result.ContradictoryClaims) != 1 || result.ContradictoryClaims[0].ClaimID != "C3" {
		t.Fatalf("Expected C3 as the only contradiction, got %+v", result.ContradictoryClaims)
	}
	if result.ContradictoryClaims[0].SentimentOpposition {
		t.Error("Expected negation, not sentiment, to flag C3")
	}
	if result.StrengthScore != 1 {
		t.Errorf("Expected strength 1, got %v", result.StrengthScore)
	}
}

func TestScorer_Score_ThresholdFiltersBothLists(t *testing.T) {
	target := claim("C1", "Replication resolves observed variance", "SourceA2020")
	corpus := []model.Claim{
		target,
		claim("C2", "Repeated measurement resolves variance", "SourceB2021"),
		claim("C3", "Repeated measurement does not resolve variance", "SourceC2019"),
	}
	scorer, _ := newTestScorer(map[string][]float32{
		corpus[0].Text: at(1.0),
		corpus[1].Text: at(0.5),
		corpus[2].Text: at(0.4),
	})

	result, err := scorer.Score(context.Background(), target, corpus)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if len(result.SupportingClaims) != 0 {
		t.Errorf("Expected below-threshold supporter to be dropped, got %+v", result.SupportingClaims)
	}
	if len(result.ContradictoryClaims) != 0 {
		t.Errorf("Expected below-threshold contradiction to be dropped, got %+v", result.ContradictoryClaims)
	}
	if result.StrengthScore != 0 {
		t.Errorf("Expected strength 0, got %v", result.StrengthScore)
	}
}

func TestScorer_Score_SameSourceExcluded(t *testing.T) {
	target := claim("C1", "Normalization removes most batch variance", "SourceA2020")
	corpus := []model.Claim{
		target,
		claim("C2", "Centering removes nearly all batch variance", "SourceA2020"),
		claim("C3", "Scaling removes the bulk of batch variance", "SourceB2021"),
	}
	scorer, _ := newTestScorer(map[string][]float32{
		corpus[0].Text: at(1.0),
		corpus[1].Text: at(0.95),
		corpus[2].Text: at(0.9),
	})

	result, err := scorer.Score(context.Background(), target, corpus)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	for _, supporter := range result.SupportingClaims {
		if supporter.Source == target.PrimaryQuote.Source {
			t.Errorf("Expected no same-source supporter, got %+v", supporter)
		}
	}
	if len(result.SupportingClaims) != 1 || result.SupportingClaims[0].ClaimID != "C3" {
		t.Errorf("Expected only the independent C3, got %+v", result.SupportingClaims)
	}
}

func TestScorer_Score_SortedBySimilarity(t *testing.T) {
	target := claim("C1", "Larger cohorts stabilize the estimates", "SourceA2020")
	corpus := []model.Claim{
		target,
		claim("C2", "Bigger samples stabilize estimates", "SourceB2021"),
		claim("C3", "Added participants stabilize the estimates", "SourceC2019"),
		claim("C4", "Wider recruitment stabilizes estimation", "SourceD2022"),
	}
	scorer, _ := newTestScorer(map[string][]float32{
		corpus[0].Text: at(1.0),
		corpus[1].Text: at(0.8),
		corpus[2].Text: at(0.95),
		corpus[3].Text: at(0.9),
	})

	result, err := scorer.Score(context.Background(), target, corpus)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if len(result.SupportingClaims) != 3 {
		t.Fatalf("Expected 3 supporters, got %d", len(result.SupportingClaims))
	}
	for i := 1; i < len(result.SupportingClaims); i++ {
		if result.SupportingClaims[i].Similarity > result.SupportingClaims[i-1].Similarity {
			t.Errorf("Expected descending similarity, got %+v", result.SupportingClaims)
		}
	}
	if result.SupportingClaims[0].ClaimID != "C3" {
		t.Errorf("Expected C3 first, got %s", result.SupportingClaims[0].ClaimID)
	}
}

func TestScorer_Score_EmptyCorpus(t *testing.T) {
	scorer, provider := newTestScorer(nil)
	target := claim("C1", "Anything", "SourceA2020")

	result, err := scorer.Score(context.Background(), target, nil)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if result.ClaimID != "C1" || result.StrengthScore != 0 {
		t.Errorf("Expected empty strength for empty corpus, got %+v", result)
	}
	if provider.batchCalls != 0 {
		t.Errorf("Expected no provider calls, got %d", provider.batchCalls)
	}
}

func TestScorer_ScoreBatch_SingleProviderRequest(t *testing.T) {
	corpus := []model.Claim{
		claim("C1", "Batch effects degrade performance", "SourceA2020"),
		claim("C2", "Technical variation weakens performance", "SourceB2021"),
		claim("C3", "Depth determines sensitivity", "SourceC2019"),
	}
	scorer, provider := newTestScorer(map[string][]float32{
		corpus[0].Text: at(1.0),
		corpus[1].Text: at(0.9),
		corpus[2].Text: at(0.1),
	})

	results, err := scorer.ScoreBatch(context.Background(), []string{"C1", "C2", "C3"}, corpus)
	if err != nil {
		t.Fatalf("ScoreBatch failed: %v", err)
	}

	if provider.batchCalls != 1 {
		t.Errorf("Expected exactly one provider request, got %d", provider.batchCalls)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if len(results["C1"].SupportingClaims) != 1 || results["C1"].SupportingClaims[0].ClaimID != "C2" {
		t.Errorf("Expected C2 to support C1, got %+v", results["C1"].SupportingClaims)
	}
	if results["C3"].StrengthScore != 0 {
		t.Errorf("Expected no support for C3, got %v", results["C3"].StrengthScore)
	}
}

func TestScorer_ScoreBatch_UnknownIdsSkipped(t *testing.T) {
	corpus := []model.Claim{
		claim("C1", "Batch effects degrade performance", "SourceA2020"),
	}
	scorer, _ := newTestScorer(map[string][]float32{
		corpus[0].Text: at(1.0),
	})

	results, err := scorer.ScoreBatch(context.Background(), []string{"C1", "C404"}, corpus)
	if err != nil {
		t.Fatalf("ScoreBatch failed: %v", err)
	}

	if len(results) != 1 {
		t.Errorf("Expected the unknown id to be skipped, got %d results", len(results))
	}
	if _, ok := results["C404"]; ok {
		t.Error("Expected no entry for an unknown id")
	}
}

func TestScorer_ScoreBatch_EmptyIds(t *testing.T) {
	scorer, provider := newTestScorer(nil)

	results, err := scorer.ScoreBatch(context.Background(), nil, []model.Claim{
		claim("C1", "Anything", "SourceA2020"),
	})
	if err != nil {
		t.Fatalf("ScoreBatch failed: %v", err)
	}

	if len(results) != 0 {
		t.Errorf("Expected empty map, got %d results", len(results))
	}
	if provider.batchCalls != 0 {
		t.Errorf("Expected no provider calls for empty ids, got %d", provider.batchCalls)
	}
}

func TestScorer_WeakClaims_BelowMinimum(t *testing.T) {
	corpus := []model.Claim{
		claim("C1", "Batch effects degrade performance", "SourceA2020"),
		claim("C2", "Technical variation weakens performance", "SourceB2021"),
		claim("C3", "Depth determines sensitivity", "SourceC2019"),
	}
	scorer, _ := newTestScorer(map[string][]float32{
		corpus[0].Text: at(1.0),
		corpus[1].Text: at(0.9), // supports C1 and vice versa
		corpus[2].Text: at(0.0), // supports nothing
	})

	weak, err := scorer.WeakClaims(context.Background(), corpus, 1)
	if err != nil {
		t.Fatalf("WeakClaims failed: %v", err)
	}

	if len(weak) != 1 || weak[0].ClaimID != "C3" {
		t.Fatalf("Expected only C3 to be weak, got %+v", weak)
	}

	weak, err = scorer.WeakClaims(context.Background(), corpus, 2)
	if err != nil {
		t.Fatalf("WeakClaims failed: %v", err)
	}

	if len(weak) != 3 {
		t.Errorf("Expected every claim to be weak at minimum 2, got %d", len(weak))
	}
	if weak[0].ClaimID != "C1" || weak[2].ClaimID != "C3" {
		t.Errorf("Expected corpus order, got %+v", weak)
	}
}

func TestScorer_WeakClaims_CountsIndependentSourcesOnly(t *testing.T) {
	// C2 paraphrases C1 from the same paper; that is one voice, so C1
	// still has zero independent supporters
	corpus := []model.Claim{
		claim("C1", "Normalization removes most batch variance", "SourceA2020"),
		claim("C2", "Centering removes nearly all batch variance", "SourceA2020"),
	}
	scorer, _ := newTestScorer(map[string][]float32{
		corpus[0].Text: at(1.0),
		corpus[1].Text: at(0.95),
	})

	weak, err := scorer.WeakClaims(context.Background(), corpus, 1)
	if err != nil {
		t.Fatalf("WeakClaims failed: %v", err)
	}

	if len(weak) != 2 {
		t.Errorf("Expected both same-source claims to be weak, got %+v", weak)
	}
}

func TestScorer_WeakClaims_NonPositiveMinimum(t *testing.T) {
	scorer, _ := newTestScorer(nil)

	for _, minSources := range []int{0, -3} {
		if _, err := scorer.WeakClaims(context.Background(), nil, minSources); err == nil {
			t.Errorf("Expected a validation error for minimum %d", minSources)
		}
	}
}
