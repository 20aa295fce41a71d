package contradict

import (
	"testing"

	"github.com/corrobora/corrobora/internal/model"
)

func TestDetector_IsContradictory_NegationMismatch(t *testing.T) {
	d := NewDetector(model.DefaultLexicon())

	a := "The treatment reduced inflammation in mice"
	b := "The treatment did not reduce inflammation in mice"

	if !d.IsContradictory(a, b) {
		t.Error("Expected one-sided negation to contradict")
	}
	if !d.IsContradictory(b, a) {
		t.Error("Expected negation mismatch to be symmetric")
	}
}

func TestDetector_IsContradictory_NegationOnBothSides(t *testing.T) {
	d := NewDetector(model.DefaultLexicon())

	a := "The method did not converge on the full dataset"
	b := "The approach did not converge when replicated"

	if d.IsContradictory(a, b) {
		t.Error("Expected negation on both sides not to contradict")
	}
}

func TestDetector_IsContradictory_NegationWordBoundary(t *testing.T) {
	d := NewDetector(model.DefaultLexicon())

	a := "Notable gains were recorded across sites"
	b := "Gains were recorded across replication sites"

	if d.IsContradictory(a, b) {
		t.Error("Expected 'notable' not to count as the negation 'not'")
	}
}

func TestDetector_IsContradictory_AntonymPair(t *testing.T) {
	d := NewDetector(model.DefaultLexicon())

	a := "Expression levels increase under heat stress"
	b := "Expression levels decrease under heat stress"

	if !d.IsContradictory(a, b) {
		t.Error("Expected antonym pair split across texts to contradict")
	}
	if !d.IsContradictory(b, a) {
		t.Error("Expected antonym detection in either direction")
	}
}

func TestDetector_IsContradictory_SameWordNoSplit(t *testing.T) {
	d := NewDetector(model.DefaultLexicon())

	a := "Read counts increase with depth"
	b := "Mapped fragments increase with depth"

	if d.IsContradictory(a, b) {
		t.Error("Expected the same antonym member on both sides not to contradict")
	}
}

func TestDetector_IsContradictory_SentimentOpposition(t *testing.T) {
	d := NewDetector(model.DefaultLexicon())

	a := "The normalization produced accurate estimates"
	b := "The normalization produced biased estimates"

	if !d.IsContradictory(a, b) {
		t.Error("Expected opposed sentiment wording to contradict")
	}
}

func TestDetector_SentimentOpposition_MixedWordingDoesNotCount(t *testing.T) {
	d := NewDetector(model.DefaultLexicon())

	a := "The tool was effective despite poor documentation"
	b := "The pipeline was harmful to throughput"

	if d.SentimentOpposition(a, b) {
		t.Error("Expected mixed positive and negative wording on one side not to oppose")
	}
}

func TestDetector_SentimentOpposition_Metadata(t *testing.T) {
	d := NewDetector(model.DefaultLexicon())

	a := "Imputation improved downstream calls"
	b := "Imputation worsened downstream calls"

	if !d.SentimentOpposition(a, b) {
		t.Error("Expected positive-only vs negative-only wording to oppose")
	}

	neutralA := "Imputation changed downstream calls"
	neutralB := "Imputation altered downstream calls"
	if d.SentimentOpposition(neutralA, neutralB) {
		t.Error("Expected neutral wording not to oppose")
	}
}

func TestDetector_CustomLexicon(t *testing.T) {
	d := NewDetector(model.LexiconConfig{
		Negations: []string{"jamais"},
	})

	if !d.IsContradictory("le traitement marche jamais", "le traitement marche") {
		t.Error("Expected injected negation word to be honored")
	}
	if d.IsContradictory("levels increase sharply", "levels decrease sharply") {
		t.Error("Expected default antonym pairs to be inactive with a custom lexicon")
	}
}

func TestDetector_EmptyConfigFallsBackToDefaults(t *testing.T) {
	d := NewDetector(model.LexiconConfig{})

	if !d.IsContradictory("counts increase with depth", "counts decrease with depth") {
		t.Error("Expected an empty lexicon config to fall back to the default tables")
	}
}
