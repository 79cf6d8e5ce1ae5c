package query

import (
	"sort"

	"github.com/varnhold/lexent/lexicon"
)

// TermSet is an unordered, deduplicated set of normalized terms.
type TermSet map[string]struct{}

// NewTermSet creates a TermSet containing the given words.
func NewTermSet(words ...string) TermSet {
	s := make(TermSet, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts word into the set.
func (s TermSet) Add(word string) {
	s[word] = struct{}{}
}

// Has reports whether word is in the set.
func (s TermSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of distinct terms.
func (s TermSet) Len() int { return len(s) }

// Words returns the terms in sorted order, for deterministic previews
// and logging. Scoring does not depend on this order.
func (s TermSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Expand broadens the normalized tokens into the full term set used for
// the low-weight scoring pass. For each token it adds the token itself,
// its lemma, every dictionary expansion of the token, and the lemma of
// each expansion. Missing lemma or dictionary entries silently fall back
// to identity, so an incomplete lexicon degrades recall rather than
// failing.
func Expand(tokens []string, lex *lexicon.Lexicon) TermSet {
	expanded := make(TermSet, len(tokens)*2)
	for _, word := range tokens {
		expanded.Add(word)
		expanded.Add(lex.Lemma(word))
		for _, exp := range lex.Expansions(word) {
			expanded.Add(exp)
			expanded.Add(lex.Lemma(exp))
		}
	}
	return expanded
}
