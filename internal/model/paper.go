package model

// PaperMetadata describes a paper in the reading library
type PaperMetadata struct {
	Title         string   `json:"title"`
	Abstract      string   `json:"abstract,omitempty"`
	Authors       []string `json:"authors"`
	Year          int      `json:"year"`
	CitationCount *int     `json:"citation_count,omitempty"` // Absent when the library has no count
	PageCount     *int     `json:"page_count,omitempty"`
	WordCount     *int     `json:"word_count,omitempty"`
}

// RankedPaper is a paper scored against a query
type RankedPaper struct {
	Paper                PaperMetadata `json:"paper"`
	RelevanceScore       float64       `json:"relevance_score"`           // Similarity plus citation boost
	SemanticSimilarity   float64       `json:"semantic_similarity"`       // Cosine similarity to the query
	CitationBoost        float64       `json:"citation_boost"`            // 0 below the citation threshold
	EstimatedReadingTime int           `json:"estimated_reading_minutes"` // Whole minutes, rounded up
}

// Section is one unit of a draft outline
type Section struct {
	ID      string   `json:"id"`      // Numbering token (e.g., "3.2")
	Title   string   `json:"title"`   // Heading text without the numbering
	Content []string `json:"content"` // Body lines in order
}

// Query renders the section as a ranking query: title first,
// then the content lines, newline separated
func (s Section) Query() string {
	out := s.Title
	for _, line := range s.Content {
		out += "\n" + line
	}
	return out
}
