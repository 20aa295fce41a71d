package corpus

import (
	"regexp"
	"strings"

	"github.com/corrobora/corrobora/internal/textnorm"
)

var yearRe = regexp.MustCompile(`\d{4}`)

// Matches reports whether a corpus filename belongs to an author-year
// designator such as "Soneson2014" or "Smith 2020"
func Matches(filename, authorYear string) bool {
	nf := textnorm.Strict(filename)
	na := textnorm.Strict(authorYear)
	if nf == "" || na == "" {
		return false
	}

	// Direct containment settles it
	if strings.Contains(nf, na) {
		return true
	}

	year := yearRe.FindString(na)
	if year == "" {
		return false
	}
	if !strings.Contains(nf, year) {
		return false
	}

	author := strings.Join(strings.Fields(strings.Replace(na, year, " ", 1)), " ")
	if author == "" {
		return false
	}

	// Fragments of four characters or fewer match whole words only
	// (e.g., "du" must not hit "dupont")
	if len(author) <= 4 {
		return strings.Contains(" "+nf+" ", " "+author+" ")
	}

	for _, word := range strings.Fields(author) {
		if len(word) > 2 && strings.Contains(nf, word) {
			return true
		}
	}

	return false
}
