package rank

import (
	"strings"

	"github.com/corrobora/corrobora/internal/model"
)

// readingTime estimates whole minutes needed to read a paper, working
// down a fallback chain as metadata gets sparser: explicit word count,
// then page count, then abstract length, then a flat default
func (r *Ranker) readingTime(paper model.PaperMetadata) int {
	words := r.config.DefaultWordCount
	switch {
	case paper.WordCount != nil:
		words = *paper.WordCount
	case paper.PageCount != nil:
		words = *paper.PageCount * r.config.WordsPerPage
	case strings.TrimSpace(paper.Abstract) != "":
		words = len(strings.Fields(paper.Abstract)) * r.config.AbstractRatio
	}

	return (words + r.config.WordsPerMinute - 1) / r.config.WordsPerMinute
}
