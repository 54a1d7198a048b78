// Package intent scores free-text input against a fixed taxonomy of user
// goals (registration, verification, access problems, ...) using keyword
// presence. It is deliberately heuristic: no training, no embeddings.
package intent

import (
	"sort"
	"strings"

	"member-portal-be/pkg/faq/text"
)

// Detection is one matched intent with the number of taxonomy keywords found.
type Detection struct {
	Name  string
	Score int
}

// Category is one taxonomy entry: an intent name and its trigger keywords.
type Category struct {
	Name     string
	Keywords []string
}

// Detector matches input against an immutable taxonomy. Safe for concurrent
// use after construction.
type Detector struct {
	taxonomy []Category
}

// NewDetector builds a detector with the default Thai taxonomy.
func NewDetector() *Detector {
	return NewDetectorWithTaxonomy(defaultTaxonomy)
}

// NewDetectorWithTaxonomy builds a detector from an explicit taxonomy.
// Keywords are normalized on the way in.
func NewDetectorWithTaxonomy(taxonomy []Category) *Detector {
	cats := make([]Category, 0, len(taxonomy))
	for _, c := range taxonomy {
		kws := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			if n := text.Normalize(kw); n != "" {
				kws = append(kws, n)
			}
		}
		cats = append(cats, Category{Name: c.Name, Keywords: kws})
	}
	return &Detector{taxonomy: cats}
}

// Detect normalizes the input and counts, per intent, how many of its
// keywords appear as substrings. Each keyword contributes at most 1
// regardless of repeats. Intents with count 0 are dropped; the rest are
// returned in descending score order (taxonomy order breaks ties).
func (d *Detector) Detect(input string) []Detection {
	norm := text.Normalize(input)
	if norm == "" {
		return nil
	}

	var found []Detection
	for _, c := range d.taxonomy {
		score := 0
		for _, kw := range c.Keywords {
			if strings.Contains(norm, kw) {
				score++
			}
		}
		if score > 0 {
			found = append(found, Detection{Name: c.Name, Score: score})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Score > found[j].Score
	})
	return found
}
