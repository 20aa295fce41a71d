package model

import "time"

// Quote is a verbatim excerpt cited from a source document
type Quote struct {
	Text       string `json:"text"`                  // The quoted text itself
	Source     string `json:"source"`                // Author-year designator (e.g., "Soneson2014")
	Verified   bool   `json:"verified"`              // Whether the quote was located in the source
	PageNumber int    `json:"page_number,omitempty"` // Page in the source, when known
	SourceID   string `json:"source_id,omitempty"`   // External library item key, when known
}

// Claim represents a factual assertion backed by quoted evidence
type Claim struct {
	ID               string    `json:"id"`                          // Stable identifier (e.g., "C_12")
	Text             string    `json:"text"`                        // The claim statement itself
	Category         Category  `json:"category"`                    // Kind of assertion
	PrimaryQuote     Quote     `json:"primary_quote"`               // Main supporting quote
	SupportingQuotes []Quote   `json:"supporting_quotes,omitempty"` // Additional quotes
	Sections         []string  `json:"sections,omitempty"`          // Outline section ids the claim feeds
	Verified         bool      `json:"verified"`                    // Whether all quotes verified
	CreatedAt        time.Time `json:"created_at,omitempty"`
	ModifiedAt       time.Time `json:"modified_at,omitempty"`
}

// Category classifies the nature of a claim
type Category string

const (
	CategoryMethod      Category = "Method"      // How something was done
	CategoryResult      Category = "Result"      // What was found
	CategoryChallenge   Category = "Challenge"   // Open problem or limitation
	CategoryDataSource  Category = "Data Source" // Where data came from
	CategoryDataTrend   Category = "Data Trend"  // Observed pattern over data
	CategoryApplication Category = "Application" // Practical use
	CategoryImpact      Category = "Impact"      // Downstream consequence
	CategoryPhenomenon  Category = "Phenomenon"  // Observed effect
)

// SourceKey identifies the source a claim draws on; claims sharing
// a source are never counted as independent corroboration
func (c Claim) SourceKey() string {
	return c.PrimaryQuote.Source
}

// AllQuotes returns the primary quote followed by the supporting ones
func (c Claim) AllQuotes() []Quote {
	quotes := make([]Quote, 0, len(c.SupportingQuotes)+1)
	quotes = append(quotes, c.PrimaryQuote)
	quotes = append(quotes, c.SupportingQuotes...)
	return quotes
}
