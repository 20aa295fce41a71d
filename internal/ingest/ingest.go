package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Request describes one document to bring into the corpus
type Request struct {
	Path    string // Source document (.pdf, .html, .txt, .md)
	Authors string // e.g., "Soneson et al."
	Year    int    // Publication year
	Title   string // Paper title
}

// Ingestor converts documents into corpus text files
type Ingestor struct {
	dir       string
	extractor *Extractor
	logger    *zap.Logger
}

// NewIngestor creates an ingestor writing into the corpus directory
func NewIngestor(dir string, logger *zap.Logger) *Ingestor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingestor{
		dir:       dir,
		extractor: NewExtractor(),
		logger:    logger,
	}
}

// Ingest extracts text from the requested document and writes it into
// the corpus under the standard filename, returning the path written
func (i *Ingestor) Ingest(req Request) (string, error) {
	if req.Path == "" {
		return "", fmt.Errorf("document path is required")
	}
	if strings.TrimSpace(req.Authors) == "" {
		return "", fmt.Errorf("authors are required")
	}
	if strings.TrimSpace(req.Title) == "" {
		return "", fmt.Errorf("title is required")
	}
	if req.Year < 1000 || req.Year > 9999 {
		return "", fmt.Errorf("year must be four digits, got %d", req.Year)
	}

	text, err := i.extractor.Extract(req.Path)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", filepath.Base(req.Path), err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text extracted from %s", filepath.Base(req.Path))
	}

	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return "", fmt.Errorf("create corpus dir: %w", err)
	}

	name := Filename(req.Authors, req.Year, req.Title)
	path := filepath.Join(i.dir, name)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write corpus file: %w", err)
	}

	i.logger.Info("ingested document",
		zap.String("source", filepath.Base(req.Path)),
		zap.String("corpus_file", name),
		zap.Int("bytes", len(text)))

	return path, nil
}

// Filename builds the corpus naming convention "Authors - Year - Title.txt"
func Filename(authors string, year int, title string) string {
	return fmt.Sprintf("%s - %d - %s.txt", sanitize(authors), year, sanitize(title))
}

// sanitize strips characters that filesystems or the corpus filename
// parser cannot tolerate
func sanitize(s string) string {
	replacer := strings.NewReplacer(
		"/", " ", "\\", " ", ":", " ", "*", " ", "?", " ",
		"\"", " ", "<", " ", ">", " ", "|", " ",
	)
	return strings.Join(strings.Fields(replacer.Replace(s)), " ")
}
