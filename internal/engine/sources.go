package engine

import (
	"fmt"
	"sort"

	"github.com/corrobora/corrobora/internal/corpus"
	"github.com/corrobora/corrobora/internal/ingest"
	"github.com/corrobora/corrobora/internal/model"
)

// SourceFiles lists the corpus documents with their parsed metadata
func (e *Engine) SourceFiles() ([]corpus.SourceFile, error) {
	return e.store.List()
}

// SourceCoverage cross-references every source cited by the loaded
// claims against the corpus, reporting which ones resolve to a file
func (e *Engine) SourceCoverage() ([]model.SourceStatus, error) {
	all, err := e.claims.All()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, claim := range all {
		seen := make(map[string]bool)
		for _, quote := range claim.AllQuotes() {
			if quote.Source == "" || seen[quote.Source] {
				continue
			}
			seen[quote.Source] = true
			counts[quote.Source]++
		}
	}

	sources := make([]string, 0, len(counts))
	for source := range counts {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	statuses := make([]model.SourceStatus, 0, len(sources))
	for _, source := range sources {
		status := model.SourceStatus{
			Source:     source,
			ClaimCount: counts[source],
		}
		matches, err := e.store.Resolve(source)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			status.Available = true
			status.File = matches[0]
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// SourceText resolves an author-year designator and returns the matched
// filename together with the document text
func (e *Engine) SourceText(authorYear string) (string, string, error) {
	matches, err := e.store.Resolve(authorYear)
	if err != nil {
		return "", "", err
	}
	if len(matches) == 0 {
		return "", "", fmt.Errorf("no source file matches %q", authorYear)
	}

	text, err := e.store.Read(matches[0])
	if err != nil {
		return "", "", err
	}
	return matches[0], text, nil
}

// Ingest converts a document into a corpus text file
func (e *Engine) Ingest(req ingest.Request) (string, error) {
	return e.ingestor.Ingest(req)
}
