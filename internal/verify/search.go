package verify

import (
	"fmt"
	"strings"

	"github.com/corrobora/corrobora/internal/model"
	"github.com/corrobora/corrobora/internal/textnorm"
)

// Search scans a document line by line and returns every line containing
// the normalized query, or overlapping its words above the search
// threshold, each with surrounding context
func (m *Matcher) Search(query, doc string) ([]model.SearchMatch, error) {
	normQuery := textnorm.Light(query)
	if normQuery == "" {
		return nil, fmt.Errorf("search query is required")
	}
	queryWords := strings.Fields(normQuery)
	lines := strings.Split(doc, "\n")

	var matches []model.SearchMatch
	for i, line := range lines {
		normLine := textnorm.Light(line)
		if normLine == "" {
			continue
		}

		sim := 0.0
		if strings.Contains(normLine, normQuery) {
			sim = 1.0
		} else {
			matched := 0
			for _, w := range queryWords {
				if strings.Contains(normLine, w) {
					matched++
				}
			}
			sim = float64(matched) / float64(len(queryWords))
			if sim < m.cfg.SearchThreshold {
				continue
			}
		}

		before, after := contextAround(lines, i, i, m.cfg.SearchContextLines)
		matches = append(matches, model.SearchMatch{
			LineNumber:    i + 1,
			LineText:      strings.TrimSpace(line),
			Similarity:    sim,
			ContextBefore: before,
			ContextAfter:  after,
		})
	}

	return matches, nil
}
