package claims

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/corrobora/corrobora/internal/model"
)

// Numbered headings at any level open a section, e.g. "## 3.2 Methods"
// or "## 4. Results". Unnumbered headings are structural and skipped
var sectionHeaderRe = regexp.MustCompile(`^#{1,6}\s+(\d+(?:\.\d+)*)\.?\s+(.+?)\s*$`)

// Sections loads the draft outline and resolves section ids
type Sections struct {
	path     string
	sections []model.Section
	index    map[string]int
	loaded   bool
}

// NewSections creates an outline repository reading from one markdown file
func NewSections(path string) *Sections {
	return &Sections{
		path:  path,
		index: make(map[string]int),
	}
}

// Load reads and parses the outline. It must succeed before GetByID or
// All can be used
func (s *Sections) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read outline: %w", err)
	}

	s.sections = nil
	s.index = make(map[string]int)

	var current *model.Section
	flush := func() {
		if current != nil {
			s.index[current.ID] = len(s.sections)
			s.sections = append(s.sections, *current)
			current = nil
		}
	}

	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)

		if m := sectionHeaderRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &model.Section{ID: m[1], Title: m[2]}
			continue
		}
		if current == nil || line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		current.Content = append(current.Content, line)
	}
	flush()

	s.loaded = true
	return nil
}

// GetByID returns one outline section by its numbering token
func (s *Sections) GetByID(id string) (model.Section, error) {
	if !s.loaded {
		return model.Section{}, ErrNotLoaded
	}
	i, ok := s.index[id]
	if !ok {
		return model.Section{}, &NotFoundError{Kind: "section", ID: id}
	}
	return s.sections[i], nil
}

// All returns every section in outline order
func (s *Sections) All() ([]model.Section, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	out := make([]model.Section, len(s.sections))
	copy(out, s.sections)
	return out, nil
}
