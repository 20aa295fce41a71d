// Package claims loads the claim corpus and the draft outline from
// markdown files. Claims live in "## C_n:" blocks, one block per claim,
// optionally split across several category files in one directory.
package claims

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/corrobora/corrobora/internal/model"
)

var (
	claimHeaderRe = regexp.MustCompile(`^##\s+(C_\d+):\s*(.+?)\s*$`)
	fieldRe       = regexp.MustCompile(`^\*\*([^*]+)\*\*:\s*(.*)$`)
	quoteRe       = regexp.MustCompile(`^"(.+)"\s*\(([^,)]+)(?:,\s*p\.\s*(\d+))?\)$`)
)

// Repository loads and indexes claims from a markdown file or a
// directory of markdown files
type Repository struct {
	path   string
	claims []model.Claim
	index  map[string]int
	loaded bool
}

// NewRepository creates a repository reading from path, which may be a
// single markdown file or a directory of category files
func NewRepository(path string) *Repository {
	return &Repository{
		path:  path,
		index: make(map[string]int),
	}
}

// Load reads and parses every claim block. It must succeed before Get
// or All can be used
func (r *Repository) Load() error {
	files, err := r.claimFiles()
	if err != nil {
		return err
	}

	r.claims = nil
	r.index = make(map[string]int)

	for _, file := range files {
		parsed, err := parseFile(file)
		if err != nil {
			return fmt.Errorf("parse %s: %w", filepath.Base(file), err)
		}
		for _, claim := range parsed {
			if _, exists := r.index[claim.ID]; exists {
				return fmt.Errorf("duplicate claim id %s in %s", claim.ID, filepath.Base(file))
			}
			r.index[claim.ID] = len(r.claims)
			r.claims = append(r.claims, claim)
		}
	}

	r.loaded = true
	return nil
}

// Get returns one claim by id
func (r *Repository) Get(id string) (model.Claim, error) {
	if !r.loaded {
		return model.Claim{}, ErrNotLoaded
	}
	i, ok := r.index[id]
	if !ok {
		return model.Claim{}, &NotFoundError{Kind: "claim", ID: id}
	}
	return r.claims[i], nil
}

// All returns every claim in file order
func (r *Repository) All() ([]model.Claim, error) {
	if !r.loaded {
		return nil, ErrNotLoaded
	}
	out := make([]model.Claim, len(r.claims))
	copy(out, r.claims)
	return out, nil
}

// claimFiles resolves the configured path to an ordered list of
// markdown files
func (r *Repository) claimFiles() ([]string, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		return nil, fmt.Errorf("claims path: %w", err)
	}

	if !info.IsDir() {
		return []string{r.path}, nil
	}

	entries, err := os.ReadDir(r.path)
	if err != nil {
		return nil, fmt.Errorf("read claims dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		files = append(files, filepath.Join(r.path, entry.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no claim files in %s", r.path)
	}
	return files, nil
}

func parseFile(path string) ([]model.Claim, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return parseClaims(string(data), info.ModTime()), nil
}

// parseClaims walks the markdown line by line. A "## C_n:" heading opens
// a claim; "**Field**:" lines fill it in; anything else is prose and is
// ignored
func parseClaims(content string, modTime time.Time) []model.Claim {
	var claims []model.Claim
	var current *model.Claim
	inSupporting := false

	flush := func() {
		if current != nil {
			claims = append(claims, *current)
			current = nil
		}
	}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		if m := claimHeaderRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &model.Claim{
				ID:         m[1],
				Text:       m[2],
				CreatedAt:  modTime,
				ModifiedAt: modTime,
			}
			inSupporting = false
			continue
		}
		if current == nil {
			continue
		}

		if m := fieldRe.FindStringSubmatch(line); m != nil {
			inSupporting = false
			value := strings.TrimSpace(m[2])
			switch strings.TrimSpace(m[1]) {
			case "Category":
				current.Category = model.Category(value)
			case "Sections":
				current.Sections = splitList(value)
			case "Verified":
				current.Verified = value == "true" || value == "yes"
			case "Primary Quote":
				if quote, ok := parseQuote(value); ok {
					current.PrimaryQuote = quote
				}
			case "Supporting Quotes":
				inSupporting = true
			}
			continue
		}

		if inSupporting && strings.HasPrefix(line, "- ") {
			if quote, ok := parseQuote(strings.TrimPrefix(line, "- ")); ok {
				current.SupportingQuotes = append(current.SupportingQuotes, quote)
			}
		}
	}
	flush()

	return claims
}

// parseQuote reads `"text" (Source, p. N)`; the page part is optional
func parseQuote(s string) (model.Quote, bool) {
	m := quoteRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return model.Quote{}, false
	}
	quote := model.Quote{
		Text:   m[1],
		Source: strings.TrimSpace(m[2]),
	}
	if m[3] != "" {
		quote.PageNumber, _ = strconv.Atoi(m[3])
	}
	return quote, true
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
