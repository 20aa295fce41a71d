package verify

import (
	"strings"
	"testing"

	"github.com/corrobora/corrobora/internal/model"
)

const testDocument = `Introduction

Batch effects can substantially degrade classifier performance.
Cross-validation estimates were strongly biased in several studies.
Additional replication resolved most of the observed variance.
Methods followed the original protocol.`

func newTestMatcher() *Matcher {
	return NewMatcher(model.MatchingConfig{})
}

func TestMatcher_Verify_Verbatim(t *testing.T) {
	m := newTestMatcher()

	result, err := m.Verify("Batch effects can SUBSTANTIALLY degrade   classifier performance", testDocument)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.Verified {
		t.Error("Expected verbatim quote to be verified")
	}
	if result.Similarity != 1.0 {
		t.Errorf("Expected similarity 1.0, got %v", result.Similarity)
	}
	if !strings.Contains(result.MatchedText, "substantially degrade") {
		t.Errorf("Expected matched text to cover the quote, got %q", result.MatchedText)
	}
	if !strings.Contains(result.ContextBefore, "Introduction") {
		t.Errorf("Expected context before to include the heading, got %q", result.ContextBefore)
	}
	if !strings.Contains(result.ContextAfter, "Cross-validation") {
		t.Errorf("Expected context after to include the next line, got %q", result.ContextAfter)
	}
}

func TestMatcher_Verify_SpansLines(t *testing.T) {
	m := newTestMatcher()

	result, err := m.Verify("classifier performance. Cross-validation estimates", testDocument)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.Verified || result.Similarity != 1.0 {
		t.Fatalf("Expected exact multi-line match, got verified=%v similarity=%v", result.Verified, result.Similarity)
	}
	if !strings.Contains(result.MatchedText, "Batch effects") || !strings.Contains(result.MatchedText, "strongly biased") {
		t.Errorf("Expected matched text to span both lines, got %q", result.MatchedText)
	}
}

func TestMatcher_Verify_FuzzyAboveThreshold(t *testing.T) {
	m := newTestMatcher()

	// One word differs from the document ("severely" vs "substantially")
	result, err := m.Verify("batch effects can severely degrade classifier performance", testDocument)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.Verified {
		t.Errorf("Expected fuzzy match above threshold to verify, similarity=%v", result.Similarity)
	}
	if result.Similarity >= 1.0 || result.Similarity < 0.85 {
		t.Errorf("Expected similarity in [0.85, 1.0), got %v", result.Similarity)
	}
	if result.MatchedText == "" {
		t.Error("Expected matched text for a verified fuzzy match")
	}
}

func TestMatcher_Verify_FuzzyBelowThreshold(t *testing.T) {
	m := newTestMatcher()

	result, err := m.Verify("batch effects influence downstream quantile normalization outputs", testDocument)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Verified {
		t.Errorf("Expected weak overlap not to verify, similarity=%v", result.Similarity)
	}
	if result.Similarity <= 0 || result.Similarity >= 0.85 {
		t.Errorf("Expected partial similarity below threshold, got %v", result.Similarity)
	}
	if result.NearestMatch == "" {
		t.Error("Expected nearest match for a partial result")
	}
	if result.MatchedText != "" {
		t.Errorf("Expected no matched text below threshold, got %q", result.MatchedText)
	}
}

func TestMatcher_Verify_NoOverlap(t *testing.T) {
	m := newTestMatcher()

	result, err := m.Verify("zygote proteome kinetics", testDocument)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Verified {
		t.Error("Expected no match to fail verification")
	}
	if result.Similarity != 0 {
		t.Errorf("Expected similarity 0, got %v", result.Similarity)
	}
}

func TestMatcher_Verify_VerifiedTracksThreshold(t *testing.T) {
	m := newTestMatcher()

	quotes := []string{
		"Batch effects can substantially degrade classifier performance",
		"batch effects can severely degrade classifier performance",
		"batch effects influence downstream quantile normalization outputs",
		"zygote proteome kinetics",
	}

	for _, quote := range quotes {
		result, err := m.Verify(quote, testDocument)
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", quote, err)
		}
		if result.Similarity < 0 || result.Similarity > 1 {
			t.Errorf("Similarity out of range for %q: %v", quote, result.Similarity)
		}
		if result.Verified != (result.Similarity >= 0.85) {
			t.Errorf("Verified flag disagrees with threshold for %q: verified=%v similarity=%v",
				quote, result.Verified, result.Similarity)
		}
	}
}

func TestMatcher_Verify_EmptyQuote(t *testing.T) {
	m := newTestMatcher()

	if _, err := m.Verify("   ", testDocument); err == nil {
		t.Error("Expected a validation error for an empty quote")
	}
}

func TestMatcher_Verify_EmptyDocument(t *testing.T) {
	m := newTestMatcher()

	result, err := m.Verify("some quote", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Verified || result.Similarity != 0 {
		t.Errorf("Expected empty result for empty document, got %+v", result)
	}
}

func TestMatcher_Verify_QuoteLongerThanDocument(t *testing.T) {
	m := newTestMatcher()

	result, err := m.Verify("batch effects degrade classifiers in every comparison we ran", "Batch effects degrade.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Similarity <= 0 || result.Similarity > 1 {
		t.Errorf("Expected partial similarity for truncated window, got %v", result.Similarity)
	}
}

const searchDocument = `The treatment was effective in most patients.

Batch effects degrade overall classifier accuracy.
Some unrelated sentence sits here.
Classifier accuracy degrades once batch effects appear.`

func TestMatcher_Search_ExactLine(t *testing.T) {
	m := newTestMatcher()

	matches, err := m.Search("batch effects degrade overall classifier accuracy", searchDocument)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(matches) < 1 {
		t.Fatal("Expected at least one match")
	}

	first := matches[0]
	if first.LineNumber != 3 {
		t.Errorf("Expected 1-based line number 3, got %d", first.LineNumber)
	}
	if first.Similarity != 1.0 {
		t.Errorf("Expected exact line similarity 1.0, got %v", first.Similarity)
	}
	if !strings.Contains(first.ContextBefore, "treatment was effective") {
		t.Errorf("Expected context before to include earlier lines, got %q", first.ContextBefore)
	}
	if !strings.Contains(first.ContextAfter, "unrelated sentence") {
		t.Errorf("Expected context after to include later lines, got %q", first.ContextAfter)
	}
}

func TestMatcher_Search_OverlapThreshold(t *testing.T) {
	m := newTestMatcher()

	// "regression" never appears: 4 of 5 words overlap on two lines
	matches, err := m.Search("batch effects degrade accuracy regression", searchDocument)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 overlap matches, got %d", len(matches))
	}
	for _, match := range matches {
		if match.Similarity < 0.7 || match.Similarity >= 1.0 {
			t.Errorf("Expected overlap similarity in [0.7, 1.0), got %v", match.Similarity)
		}
	}
}

func TestMatcher_Search_BelowThresholdExcluded(t *testing.T) {
	m := newTestMatcher()

	matches, err := m.Search("proteome kinetics of zygote populations batch", searchDocument)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected no matches below the search threshold, got %d", len(matches))
	}
}

func TestMatcher_Search_EmptyQuery(t *testing.T) {
	m := newTestMatcher()

	if _, err := m.Search("", searchDocument); err == nil {
		t.Error("Expected a validation error for an empty query")
	}
}
