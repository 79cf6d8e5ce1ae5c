package search

import (
	"strings"

	"github.com/varnhold/lexent/core"
	"github.com/varnhold/lexent/query"
)

// Scoring weights. Literal matches dominate; expanded (lemma/synonym)
// matches contribute an order of magnitude less so they can break ties
// without drowning out literal hits.
const (
	phraseBonus = 90

	originalTitleWeight       = 70
	originalDescriptionWeight = 60
	originalContentWeight     = 50

	expandedTitleWeight       = 10
	expandedDescriptionWeight = 7
	expandedContentWeight     = 5
)

// Score computes the relevance of doc for a query given its ordered
// original tokens and expanded term set. The result is a non-negative
// integer; 0 means no signal at all.
//
// Field checks are plain substring containment on the lowercased field
// text, not token-boundary matching, so short words may match inside
// longer ones. A matched set guards against crediting the same word
// twice: once a word is examined in the original pass it is marked
// matched even when it scored nothing, which also excludes it from the
// expanded pass.
func Score(doc *core.Document, original []string, expanded query.TermSet) int {
	score := 0
	matched := query.NewTermSet()

	title := strings.ToLower(doc.Title)
	description := strings.ToLower(doc.Description)
	content := strings.ToLower(doc.Content)

	// Exact-phrase bonus on the space-joined concatenation of all fields,
	// awarded at most once.
	phrase := query.Phrase(original)
	if phrase != "" && strings.Contains(doc.FullText(), phrase) {
		score += phraseBonus
	}

	for _, word := range original {
		if matched.Has(word) {
			continue
		}
		switch {
		case strings.Contains(title, word):
			score += originalTitleWeight
		case strings.Contains(description, word):
			score += originalDescriptionWeight
		case strings.Contains(content, word):
			score += originalContentWeight
		}
		matched.Add(word)
	}

	for word := range expanded {
		if matched.Has(word) {
			continue
		}
		switch {
		case strings.Contains(title, word):
			score += expandedTitleWeight
		case strings.Contains(description, word):
			score += expandedDescriptionWeight
		case strings.Contains(content, word):
			score += expandedContentWeight
		}
		matched.Add(word)
	}

	return score
}
