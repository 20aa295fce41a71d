package model

import "time"

// Verification is the outcome of matching one quote against a source
type Verification struct {
	Verified      bool    `json:"verified"`                 // True when similarity reached the accept threshold
	Similarity    float64 `json:"similarity"`               // 1.0 exact, word-overlap fraction otherwise
	SourceFile    string  `json:"source_file,omitempty"`    // Corpus file the match was found in
	MatchedText   string  `json:"matched_text,omitempty"`   // Document lines spanning the match
	ContextBefore string  `json:"context_before,omitempty"` // Lines preceding the match
	ContextAfter  string  `json:"context_after,omitempty"`  // Lines following the match
	NearestMatch  string  `json:"nearest_match,omitempty"`  // Best window text when below threshold
	Error         string  `json:"error,omitempty"`          // Source resolution failure, never a panic
}

// SupportingClaim is a corpus claim that corroborates the target
type SupportingClaim struct {
	ClaimID    string  `json:"claim_id"`
	Source     string  `json:"source"`
	Similarity float64 `json:"similarity"` // Cosine similarity in [0,1]
}

// ContradictoryClaim is a similar corpus claim that asserts the opposite
type ContradictoryClaim struct {
	ClaimID             string  `json:"claim_id"`
	Source              string  `json:"source"`
	Similarity          float64 `json:"similarity"`
	SentimentOpposition bool    `json:"sentiment_opposition"` // Positive-only vs negative-only wording
}

// ClaimStrength is the corroboration profile of one claim
type ClaimStrength struct {
	ClaimID             string               `json:"claim_id"`
	StrengthScore       float64              `json:"strength_score"` // 0, 1, 2, then 3+ln(n-2)
	SupportingClaims    []SupportingClaim    `json:"supporting_claims"`
	ContradictoryClaims []ContradictoryClaim `json:"contradictory_claims"`
}

// SearchMatch is one qualifying line from a corpus-wide quote search
type SearchMatch struct {
	SourceFile    string  `json:"source_file"`
	LineNumber    int     `json:"line_number"` // 1-based
	LineText      string  `json:"line_text"`
	Similarity    float64 `json:"similarity"` // 1.0 exact, word-overlap fraction otherwise
	ContextBefore string  `json:"context_before,omitempty"`
	ContextAfter  string  `json:"context_after,omitempty"`
}

// QuoteVerification ties a verification outcome back to its claim
type QuoteVerification struct {
	ClaimID string       `json:"claim_id"`
	Quote   Quote        `json:"quote"`
	Result  Verification `json:"result"`
}

// VerificationReport summarizes a verify-all run over the loaded claims
type VerificationReport struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Corpus      string              `json:"corpus"` // Corpus directory that was checked
	Results     []QuoteVerification `json:"results"`
	Verified    int                 `json:"verified"`
	Failed      int                 `json:"failed"`
	Unresolved  int                 `json:"unresolved"` // Quotes whose source had no corpus file
}

// SourceStatus reports corpus coverage for one claim-referenced source
type SourceStatus struct {
	Source     string `json:"source"`               // Author-year designator
	File       string `json:"file,omitempty"`       // Resolved corpus file, empty when missing
	ClaimCount int    `json:"claim_count"`          // Claims quoting this source
	Available  bool   `json:"available"`            // Whether a corpus file resolved
}
