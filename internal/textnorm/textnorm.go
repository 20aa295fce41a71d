// Package textnorm provides the two text normalizations every matching
// operation builds on: a light form that only folds case and whitespace,
// and a strict form that additionally strips diacritics and punctuation.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Light lowercases, collapses whitespace runs to single spaces, and trims
func Light(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Strict lowercases, decomposes and strips combining marks (DUPONT,
// Élodie -> dupont, elodie), replaces every non-alphanumeric run with a
// single space, collapses whitespace, and trims
func Strict(s string) string {
	folded, _, _ := transform.String(stripMarks, strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Words splits a strict-normalized form into its tokens
func Words(s string) []string {
	return strings.Fields(Strict(s))
}

// WordSet builds a token lookup table from a text
func WordSet(s string) map[string]bool {
	words := Words(s)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
