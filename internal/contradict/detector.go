// Package contradict applies lexical heuristics to pairs of similar claim
// texts: negation mismatch, antonym co-occurrence, and sentiment
// opposition. It judges wording, not meaning, so callers only consult it
// for pairs that are already semantically close.
package contradict

import (
	"github.com/corrobora/corrobora/internal/model"
	"github.com/corrobora/corrobora/internal/textnorm"
)

// Detector flags contradictory wording between two texts
type Detector struct {
	negations map[string]bool
	antonyms  [][2]string
	positive  map[string]bool
	negative  map[string]bool
}

// NewDetector builds the lookup tables from config
func NewDetector(cfg model.LexiconConfig) *Detector {
	if len(cfg.Negations) == 0 && len(cfg.AntonymPairs) == 0 &&
		len(cfg.Positive) == 0 && len(cfg.Negative) == 0 {
		cfg = model.DefaultLexicon()
	}

	d := &Detector{
		negations: make(map[string]bool),
		positive:  make(map[string]bool),
		negative:  make(map[string]bool),
	}

	for _, w := range cfg.Negations {
		d.negations[textnorm.Strict(w)] = true
	}
	for _, pair := range cfg.AntonymPairs {
		if len(pair) != 2 {
			continue
		}
		d.antonyms = append(d.antonyms, [2]string{textnorm.Strict(pair[0]), textnorm.Strict(pair[1])})
	}
	for _, w := range cfg.Positive {
		d.positive[textnorm.Strict(w)] = true
	}
	for _, w := range cfg.Negative {
		d.negative[textnorm.Strict(w)] = true
	}

	return d
}

// IsContradictory reports whether two similar texts disagree: a negation
// on exactly one side, an antonym pair split across the two texts, or
// opposed sentiment wording
func (d *Detector) IsContradictory(a, b string) bool {
	wordsA := textnorm.WordSet(a)
	wordsB := textnorm.WordSet(b)

	if d.negationMismatch(wordsA, wordsB) {
		return true
	}
	if d.antonymSplit(wordsA, wordsB) {
		return true
	}
	return d.sentimentOpposition(wordsA, wordsB)
}

// SentimentOpposition reports whether one text carries only positive
// wording while the other carries only negative wording
func (d *Detector) SentimentOpposition(a, b string) bool {
	return d.sentimentOpposition(textnorm.WordSet(a), textnorm.WordSet(b))
}

func (d *Detector) negationMismatch(a, b map[string]bool) bool {
	return d.containsAny(a, d.negations) != d.containsAny(b, d.negations)
}

func (d *Detector) antonymSplit(a, b map[string]bool) bool {
	for _, pair := range d.antonyms {
		if (a[pair[0]] && b[pair[1]]) || (a[pair[1]] && b[pair[0]]) {
			return true
		}
	}
	return false
}

func (d *Detector) sentimentOpposition(a, b map[string]bool) bool {
	posA, negA := d.containsAny(a, d.positive), d.containsAny(a, d.negative)
	posB, negB := d.containsAny(b, d.positive), d.containsAny(b, d.negative)

	if posA && !negA && negB && !posB {
		return true
	}
	return negA && !posA && posB && !negB
}

func (d *Detector) containsAny(words map[string]bool, table map[string]bool) bool {
	for w := range table {
		if words[w] {
			return true
		}
	}
	return false
}
