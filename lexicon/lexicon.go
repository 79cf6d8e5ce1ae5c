package lexicon

import "strings"

// Lexicon holds the read-only lemma table and expansion dictionary for
// one or more searches. The zero value is not usable; construct with New
// or Empty.
type Lexicon struct {
	lemmas     map[string]string
	dictionary map[string]string
}

// New creates a Lexicon from a lemma table and an expansion dictionary.
// The dictionary maps a word to a whitespace-separated string of related
// terms. Nil maps are treated as empty. The maps are not copied; callers
// must not mutate them after construction.
func New(lemmas, dictionary map[string]string) *Lexicon {
	if lemmas == nil {
		lemmas = map[string]string{}
	}
	if dictionary == nil {
		dictionary = map[string]string{}
	}
	return &Lexicon{lemmas: lemmas, dictionary: dictionary}
}

// Empty returns a Lexicon with no entries. Every word is its own lemma
// and nothing expands; search still works with reduced recall.
func Empty() *Lexicon {
	return New(nil, nil)
}

// Lemma returns the canonical form of word, or word itself when no
// entry exists.
func (l *Lexicon) Lemma(word string) string {
	if lemma, ok := l.lemmas[word]; ok {
		return lemma
	}
	return word
}

// Expansions returns the related terms for word, or nil when no entry
// exists.
func (l *Lexicon) Expansions(word string) []string {
	exp, ok := l.dictionary[word]
	if !ok {
		return nil
	}
	return strings.Fields(exp)
}

// LemmaCount returns the number of lemma table entries.
func (l *Lexicon) LemmaCount() int { return len(l.lemmas) }

// DictionaryCount returns the number of expansion dictionary entries.
func (l *Lexicon) DictionaryCount() int { return len(l.dictionary) }
