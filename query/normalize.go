package query

import (
	"strings"
	"unicode"
)

// nonEmphasis is the stopword set: articles, conjunctions, prepositions,
// common auxiliaries, and a few other low-signal words. These never
// carry emphasis and are dropped before scoring.
var nonEmphasis = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "but": true, "if": true,
	"or": true, "because": true, "as": true, "until": true, "while": true,
	"of": true, "at": true, "by": true, "for": true, "with": true, "about": true,
	"against": true, "between": true, "into": true, "through": true,
	"during": true, "before": true, "after": true, "above": true, "below": true,
	"to": true, "from": true, "up": true, "down": true, "in": true, "out": true,
	"on": true, "off": true, "over": true, "under": true, "again": true,
	"further": true, "then": true, "once": true, "here": true, "there": true,
	"when": true, "where": true, "why": true, "how": true, "all": true,
	"any": true, "both": true, "each": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "no": true,
	"nor": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "can": true,
	"will": true, "just": true, "don": true, "should": true, "now": true,
	"is": true,
}

// IsStopword reports whether word is in the non-emphasis set.
func IsStopword(word string) bool {
	return nonEmphasis[word]
}

// Normalize turns a raw query into an ordered token sequence: lowercase,
// punctuation replaced by spaces, split on whitespace, stopwords dropped.
//
// Word characters are letters, digits and underscore; every other
// non-space rune becomes a space, so "don't" tokenizes as "don", "t".
// Contractions are not specially handled. Duplicates survive because
// exact-phrase reconstruction needs them; the scorer's matched-set guard
// credits each distinct word once regardless.
func Normalize(raw string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, strings.ToLower(raw))

	words := strings.Fields(cleaned)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if nonEmphasis[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Phrase reconstructs the normalized query as a single space-joined
// string for exact-phrase matching. Empty when no tokens survived
// normalization.
func Phrase(tokens []string) string {
	return strings.Join(tokens, " ")
}
