package text

import (
	"strings"
	"unicode/utf8"
)

// Tokenizer splits normalized text into meaningful terms and expands them
// against a fixed synonym table. Tables are immutable after construction,
// so a Tokenizer is safe for concurrent use.
type Tokenizer struct {
	stopwords map[string]struct{}
	synonyms  map[string][]string // canonical -> normalized variants
	canonical map[string]string   // normalized variant -> canonical
}

// NewTokenizer builds a tokenizer with the default Thai tables.
func NewTokenizer() *Tokenizer {
	return NewTokenizerWithTables(defaultStopwords, defaultSynonyms)
}

// NewTokenizerWithTables builds a tokenizer from explicit tables. Entries are
// normalized on the way in, so callers may pass natural spellings.
func NewTokenizerWithTables(stopwords []string, synonyms map[string][]string) *Tokenizer {
	t := &Tokenizer{
		stopwords: make(map[string]struct{}, len(stopwords)),
		synonyms:  make(map[string][]string, len(synonyms)),
		canonical: make(map[string]string),
	}

	for _, w := range stopwords {
		if n := Normalize(w); n != "" {
			t.stopwords[n] = struct{}{}
		}
	}

	for key, variants := range synonyms {
		canon := Normalize(key)
		if canon == "" {
			continue
		}
		cluster := make([]string, 0, len(variants))
		for _, v := range variants {
			if n := Normalize(v); n != "" && n != canon {
				cluster = append(cluster, n)
				t.canonical[n] = canon
			}
		}
		t.synonyms[canon] = cluster
	}

	return t
}

// Tokenize normalizes the input, splits it on whitespace and drops tokens of
// length <= 1 (in runes) together with stopwords. Order is preserved for
// n-gram construction.
func (t *Tokenizer) Tokenize(s string) []string {
	norm := Normalize(s)
	if norm == "" {
		return nil
	}

	var tokens []string
	for _, w := range strings.Fields(norm) {
		if utf8.RuneCountInString(w) <= 1 {
			continue
		}
		if _, stop := t.stopwords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Expand maps every token to its full synonym cluster. It returns the
// per-position flattened sequence (for n-gram windows) and the deduplicated
// set union of originals and expansions (for membership tests). The set is
// always a superset of the input tokens.
func (t *Tokenizer) Expand(tokens []string) ([]string, map[string]struct{}) {
	sequence := make([]string, 0, len(tokens))
	set := make(map[string]struct{}, len(tokens))

	add := func(term string) {
		sequence = append(sequence, term)
		set[term] = struct{}{}
	}

	for _, tok := range tokens {
		add(tok)

		canon := tok
		if c, ok := t.canonical[tok]; ok {
			canon = c
			add(canon)
		}
		for _, v := range t.synonyms[canon] {
			if v != tok {
				add(v)
			}
		}
	}

	return sequence, set
}
