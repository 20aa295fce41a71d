package embed

import (
	"math"
	"testing"
)

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	v := []float32{0.5, 1.5, -2.0}

	sim := CosineSimilarity(v, v)

	if math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("Expected similarity 1.0 for identical vectors, got %v", sim)
	}
}

func TestCosineSimilarity_OppositeVectors(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{-1, -2, -3}

	sim := CosineSimilarity(a, b)

	if math.Abs(sim+1.0) > 1e-9 {
		t.Errorf("Expected similarity -1.0 for opposite vectors, got %v", sim)
	}
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}

	sim := CosineSimilarity(a, b)

	if math.Abs(sim) > 1e-9 {
		t.Errorf("Expected similarity 0 for orthogonal vectors, got %v", sim)
	}
}

func TestCosineSimilarity_KnownAngle(t *testing.T) {
	// 60 degrees apart: cosine is exactly 0.5
	a := []float32{1, 0}
	b := []float32{float32(math.Cos(math.Pi / 3)), float32(math.Sin(math.Pi / 3))}

	sim := CosineSimilarity(a, b)

	if math.Abs(sim-0.5) > 1e-6 {
		t.Errorf("Expected similarity 0.5, got %v", sim)
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := []float32{0.3, -0.7, 0.2, 0.9}
	b := []float32{-0.1, 0.4, 0.8, 0.05}

	if CosineSimilarity(a, b) != CosineSimilarity(b, a) {
		t.Error("Expected cosine similarity to be symmetric")
	}
}

func TestCosineSimilarity_MismatchedLengths(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{1, 2}

	if sim := CosineSimilarity(a, b); sim != 0 {
		t.Errorf("Expected 0 for mismatched lengths, got %v", sim)
	}
}

func TestCosineSimilarity_EmptyVectors(t *testing.T) {
	if sim := CosineSimilarity(nil, nil); sim != 0 {
		t.Errorf("Expected 0 for empty vectors, got %v", sim)
	}
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	a := []float32{0, 0, 0}
	b := []float32{1, 2, 3}

	if sim := CosineSimilarity(a, b); sim != 0 {
		t.Errorf("Expected 0 when one vector has zero norm, got %v", sim)
	}
}

func TestCosineSimilarity_ClampedToRange(t *testing.T) {
	// Accumulated float error must never push the result outside [-1, 1]
	a := []float32{0.1234567, 0.7654321, 0.9999999}

	sim := CosineSimilarity(a, a)

	if sim > 1.0 || sim < -1.0 {
		t.Errorf("Expected similarity within [-1, 1], got %v", sim)
	}
}
