// Package corpus reads the plain-text source documents that quotes are
// verified against. Corpus files follow the "Author(s) - Year - Title.txt"
// naming convention and are resolved by author-year designators.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/corrobora/corrobora/internal/model"
)

// SourceFile describes one parsed corpus document
type SourceFile struct {
	Name    string `json:"name"`              // Filename within the corpus directory
	Authors string `json:"authors,omitempty"` // Author segment of the filename
	Year    int    `json:"year,omitempty"`
	Title   string `json:"title,omitempty"`
}

// Store provides read access to the source corpus
type Store struct {
	dir        string
	sampleSize int
}

// NewStore creates a store over the configured corpus directory
func NewStore(cfg model.CorpusConfig) *Store {
	sample := cfg.SampleSize
	if sample <= 0 {
		sample = 5
	}
	return &Store{
		dir:        cfg.Dir,
		sampleSize: sample,
	}
}

// Dir returns the corpus directory
func (s *Store) Dir() string {
	return s.dir
}

// List returns the corpus documents in filename order
func (s *Store) List() ([]SourceFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus directory: %w", err)
	}

	var files []SourceFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			continue
		}
		files = append(files, parseSourceName(entry.Name()))
	}

	return files, nil
}

// Resolve returns all corpus filenames matching an author-year designator
func (s *Store) Resolve(authorYear string) ([]string, error) {
	files, err := s.List()
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, f := range files {
		if Matches(f.Name, authorYear) {
			matches = append(matches, f.Name)
		}
	}

	return matches, nil
}

// Read returns the text of one corpus document
func (s *Store) Read(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("read source %s: %w", name, err)
	}
	return string(data), nil
}

// Sample returns up to the configured number of corpus filenames plus the
// total count, for use in resolution error messages
func (s *Store) Sample() ([]string, int) {
	files, err := s.List()
	if err != nil {
		return nil, 0
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}

	total := len(names)
	if len(names) > s.sampleSize {
		names = names[:s.sampleSize]
	}
	return names, total
}

var sourceNameRe = regexp.MustCompile(`^(.+?)\s+-\s+(\d{4})\s+-\s+(.+?)\.txt$`)

// parseSourceName splits "Author(s) - Year - Title.txt"; files outside the
// convention keep the whole stem as title
func parseSourceName(name string) SourceFile {
	if m := sourceNameRe.FindStringSubmatch(name); m != nil {
		year, _ := strconv.Atoi(m[2])
		return SourceFile{Name: name, Authors: m[1], Year: year, Title: m[3]}
	}
	return SourceFile{Name: name, Title: strings.TrimSuffix(name, filepath.Ext(name))}
}
