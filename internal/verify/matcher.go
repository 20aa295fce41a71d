// Package verify locates quoted evidence inside corpus documents, exactly
// or by fuzzy word overlap, and reports line-accurate context for every
// match.
package verify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corrobora/corrobora/internal/model"
	"github.com/corrobora/corrobora/internal/textnorm"
)

// Matcher locates quotes inside source documents
type Matcher struct {
	cfg model.MatchingConfig
}

// NewMatcher creates a matcher with the configured thresholds
func NewMatcher(cfg model.MatchingConfig) *Matcher {
	if cfg.AcceptThreshold <= 0 {
		cfg.AcceptThreshold = 0.85
	}
	if cfg.SearchThreshold <= 0 {
		cfg.SearchThreshold = 0.7
	}
	if cfg.ContextLines <= 0 {
		cfg.ContextLines = 2
	}
	if cfg.SearchContextLines <= 0 {
		cfg.SearchContextLines = 5
	}
	return &Matcher{cfg: cfg}
}

// Verify locates a quote inside a document. Exact containment of the
// normalized quote wins; otherwise a window of quote-word-count words is
// slid across the document and scored by word overlap
func (m *Matcher) Verify(quote, doc string) (model.Verification, error) {
	normQuote := textnorm.Light(quote)
	if normQuote == "" {
		return model.Verification{}, fmt.Errorf("quote text is required")
	}

	idx := indexDocument(doc)
	if idx.text == "" {
		return model.Verification{}, nil
	}

	if pos := strings.Index(idx.text, normQuote); pos >= 0 {
		return m.exactResult(idx, pos, len(normQuote)), nil
	}

	return m.fuzzyResult(idx, normQuote), nil
}

func (m *Matcher) exactResult(idx *docIndex, pos, length int) model.Verification {
	start := idx.lineAt(pos)
	end := idx.lineAt(pos + length - 1)
	before, after := contextAround(idx.lines, start, end, m.cfg.ContextLines)

	return model.Verification{
		Verified:      true,
		Similarity:    1.0,
		MatchedText:   idx.span(start, end),
		ContextBefore: before,
		ContextAfter:  after,
	}
}

func (m *Matcher) fuzzyResult(idx *docIndex, normQuote string) model.Verification {
	quoteWords := strings.Fields(normQuote)
	docWords := strings.Fields(idx.text)

	window := len(quoteWords)
	if window > len(docWords) {
		window = len(docWords)
	}

	bestSim := 0.0
	bestPos := -1
	for pos := 0; pos+window <= len(docWords); pos++ {
		text := strings.Join(docWords[pos:pos+window], " ")
		matched := 0
		for _, w := range quoteWords {
			if strings.Contains(text, w) {
				matched++
			}
		}
		sim := float64(matched) / float64(len(quoteWords))
		if sim > bestSim {
			bestSim = sim
			bestPos = pos
		}
		// The first window reaching the threshold wins; later windows
		// could score higher but are never visited
		if sim >= m.cfg.AcceptThreshold {
			break
		}
	}

	if bestPos < 0 || bestSim == 0 {
		return model.Verification{}
	}

	start := idx.lineOfWord(bestPos)
	end := idx.lineOfWord(bestPos + window - 1)
	before, after := contextAround(idx.lines, start, end, m.cfg.ContextLines)

	result := model.Verification{
		Verified:      bestSim >= m.cfg.AcceptThreshold,
		Similarity:    bestSim,
		ContextBefore: before,
		ContextAfter:  after,
	}
	if result.Verified {
		result.MatchedText = idx.span(start, end)
	} else {
		result.NearestMatch = strings.Join(docWords[bestPos:bestPos+window], " ")
	}
	return result
}

// docIndex maps positions in the normalized document back to original lines
type docIndex struct {
	lines    []string // original lines
	text     string   // normalized non-empty lines joined by single spaces
	starts   []int    // offset of each kept line within text
	lineFor  []int    // original line index of each kept line
	wordLine []int    // original line index of each word position
}

func indexDocument(doc string) *docIndex {
	idx := &docIndex{lines: strings.Split(doc, "\n")}

	var b strings.Builder
	for i, line := range idx.lines {
		normalized := textnorm.Light(line)
		if normalized == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		idx.starts = append(idx.starts, b.Len())
		idx.lineFor = append(idx.lineFor, i)
		b.WriteString(normalized)

		for range strings.Fields(normalized) {
			idx.wordLine = append(idx.wordLine, i)
		}
	}
	idx.text = b.String()

	return idx
}

// lineAt returns the original line index containing a byte offset of text
func (d *docIndex) lineAt(offset int) int {
	i := sort.Search(len(d.starts), func(j int) bool { return d.starts[j] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return d.lineFor[i]
}

// lineOfWord returns the original line index containing a word position
func (d *docIndex) lineOfWord(pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos >= len(d.wordLine) {
		pos = len(d.wordLine) - 1
	}
	return d.wordLine[pos]
}

// span joins the original lines from start to end inclusive
func (d *docIndex) span(start, end int) string {
	return strings.Join(d.lines[start:end+1], "\n")
}

// contextAround returns up to n original lines before and after a line span
func contextAround(lines []string, start, end, n int) (before, after string) {
	lo := start - n
	if lo < 0 {
		lo = 0
	}
	hi := end + n
	if hi > len(lines)-1 {
		hi = len(lines) - 1
	}
	before = strings.Join(lines[lo:start], "\n")
	after = strings.Join(lines[end+1:hi+1], "\n")
	return before, after
}
