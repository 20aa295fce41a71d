package verify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/corrobora/corrobora/internal/corpus"
	"github.com/corrobora/corrobora/internal/model"
)

// Verifier resolves quote sources against the corpus and runs matches
type Verifier struct {
	store      *corpus.Store
	matcher    *Matcher
	maxWorkers int
	logger     *zap.Logger
}

// NewVerifier creates a verifier over a corpus store
func NewVerifier(store *corpus.Store, cfg model.MatchingConfig, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = 4
	}
	return &Verifier{
		store:      store,
		matcher:    NewMatcher(cfg),
		maxWorkers: workers,
		logger:     logger,
	}
}

// VerifyQuote locates a quote in the corpus document(s) of its source.
// Source resolution failures come back inside the result, never as an error
func (v *Verifier) VerifyQuote(quoteText, source string) (model.Verification, error) {
	if strings.TrimSpace(quoteText) == "" {
		return model.Verification{}, fmt.Errorf("quote text is required")
	}
	if strings.TrimSpace(source) == "" {
		return model.Verification{}, fmt.Errorf("source designator is required")
	}

	candidates, err := v.store.Resolve(source)
	if err != nil {
		return model.Verification{Error: fmt.Sprintf("corpus unavailable: %v", err)}, nil
	}
	if len(candidates) == 0 {
		return model.Verification{Error: v.unresolvedMessage(source)}, nil
	}

	var best model.Verification
	found := false
	for _, name := range candidates {
		doc, readErr := v.store.Read(name)
		if readErr != nil {
			v.logger.Warn("skipping unreadable source", zap.String("file", name), zap.Error(readErr))
			continue
		}

		result, err := v.matcher.Verify(quoteText, doc)
		if err != nil {
			return model.Verification{}, err
		}
		result.SourceFile = name

		if result.Verified {
			return result, nil
		}
		if !found || result.Similarity > best.Similarity {
			best = result
			found = true
		}
	}

	if !found {
		return model.Verification{Error: fmt.Sprintf("no readable source file for %q", source)}, nil
	}
	return best, nil
}

// VerifyClaim checks the primary and supporting quotes of one claim.
// Per-quote validation problems are folded into the quote's result so a
// report always covers every quote
func (v *Verifier) VerifyClaim(claim model.Claim) []model.QuoteVerification {
	quotes := claim.AllQuotes()
	results := make([]model.QuoteVerification, 0, len(quotes))

	for _, q := range quotes {
		result, err := v.VerifyQuote(q.Text, q.Source)
		if err != nil {
			result = model.Verification{Error: err.Error()}
		}
		results = append(results, model.QuoteVerification{ClaimID: claim.ID, Quote: q, Result: result})
	}

	return results
}

// VerifyAll checks every quote of every claim concurrently and assembles
// a verification report
func (v *Verifier) VerifyAll(ctx context.Context, claims []model.Claim) (model.VerificationReport, error) {
	report := model.VerificationReport{
		GeneratedAt: time.Now().UTC(),
		Corpus:      v.store.Dir(),
		Results:     []model.QuoteVerification{},
	}
	if len(claims) == 0 {
		return report, nil
	}

	perClaim := make([][]model.QuoteVerification, len(claims))
	var wg sync.WaitGroup

	// Semaphore limits concurrent document scans
	semaphore := make(chan struct{}, v.maxWorkers)

	for i, claim := range claims {
		wg.Add(1)
		go func(idx int, c model.Claim) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results := make([]model.QuoteVerification, 0, len(c.AllQuotes()))
				for _, q := range c.AllQuotes() {
					results = append(results, model.QuoteVerification{
						ClaimID: c.ID,
						Quote:   q,
						Result:  model.Verification{Error: "context cancelled"},
					})
				}
				perClaim[idx] = results
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			perClaim[idx] = v.VerifyClaim(c)
		}(i, claim)
	}

	wg.Wait()

	for _, results := range perClaim {
		for _, r := range results {
			report.Results = append(report.Results, r)
			switch {
			case r.Result.Verified:
				report.Verified++
			case r.Result.Error != "":
				report.Unresolved++
			default:
				report.Failed++
			}
		}
	}

	v.logger.Info("verification complete",
		zap.Int("quotes", len(report.Results)),
		zap.Int("verified", report.Verified),
		zap.Int("failed", report.Failed),
		zap.Int("unresolved", report.Unresolved))

	return report, nil
}

// Search runs a line search for a quote fragment across candidate corpus
// files, optionally narrowed to sources matching an author-year designator
func (v *Verifier) Search(query, authorFilter string) ([]model.SearchMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is required")
	}

	files, err := v.store.List()
	if err != nil {
		return nil, fmt.Errorf("search corpus: %w", err)
	}

	var matches []model.SearchMatch
	for _, f := range files {
		if authorFilter != "" && !corpus.Matches(f.Name, authorFilter) {
			continue
		}

		doc, readErr := v.store.Read(f.Name)
		if readErr != nil {
			v.logger.Warn("skipping unreadable source", zap.String("file", f.Name), zap.Error(readErr))
			continue
		}

		fileMatches, err := v.matcher.Search(query, doc)
		if err != nil {
			return nil, err
		}
		for i := range fileMatches {
			fileMatches[i].SourceFile = f.Name
		}
		matches = append(matches, fileMatches...)
	}

	return matches, nil
}

func (v *Verifier) unresolvedMessage(source string) string {
	sample, total := v.store.Sample()
	if total == 0 {
		return fmt.Sprintf("no source file matches %q: corpus directory %q has no documents", source, v.store.Dir())
	}

	msg := fmt.Sprintf("no source file matches %q; available sources include: %s", source, strings.Join(sample, ", "))
	if total > len(sample) {
		msg += fmt.Sprintf(" (and %d more)", total-len(sample))
	}
	return msg
}
