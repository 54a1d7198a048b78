package faq

import (
	"strings"

	"member-portal-be/pkg/faq/intent"
	"member-portal-be/pkg/faq/text"
	"member-portal-be/pkg/store"
)

// Scoring weights. Empirically tuned against the portal's live question log;
// changing one shifts the balance between signals, so treat them as a set.
const (
	weightExactMatch    = 100.0
	weightIntentOverlap = 15.0
	weightGramQuestion  = 4.0
	weightGramKeyword   = 6.0
	weightGramAnswer    = 2.0
	weightSameCategory  = 10.0
	weightContextKw     = 8.0
	weightJaccard       = 15.0
)

// Dynamic confidence threshold parameters.
const (
	thresholdBase        = 8.0
	thresholdShortInput  = 5.0
	thresholdLongInput   = 12.0
	thresholdIntentCut   = 2.0
	shortInputTokenCount = 2
	longInputTokenCount  = 5
)

// turnInput carries everything derived from one user turn: normalization,
// tokens, per-position synonym expansion, n-gram windows and detected
// intents. Built once, consumed by every entry scoring.
type turnInput struct {
	raw      string
	norm     string
	tokens   []string
	sequence []string
	set      map[string]struct{}
	joined   string
	ngrams   []string
	intents  []intent.Detection
}

func (in *turnInput) intentNames() []string {
	names := make([]string, len(in.intents))
	for i, d := range in.intents {
		names[i] = d.Name
	}
	return names
}

func (in *turnInput) hasIntent(name string) bool {
	for _, d := range in.intents {
		if d.Name == name {
			return true
		}
	}
	return false
}

// preparedEntry caches the per-entry derived text so one catalogue pass
// normalizes each entry once.
type preparedEntry struct {
	entry        Entry
	normQuestion string
	normAnswer   string
	keywords     []string
	intents      []intent.Detection
	tokenSet     map[string]struct{}
}

type scoredCandidate struct {
	entry Entry
	score float64
}

// Scorer combines exact-match, intent-overlap, n-gram, context-continuity,
// Jaccard and special-pattern signals into one additive score per entry.
// Scores are unbounded non-negative reals used only for relative ranking.
type Scorer struct {
	tokenizer *text.Tokenizer
	detector  *intent.Detector
	patterns  []SpecialPattern
}

// NewScorer builds a scorer. Pattern phrases are normalized on the way in;
// nil patterns selects the default table.
func NewScorer(tokenizer *text.Tokenizer, detector *intent.Detector, patterns []SpecialPattern) *Scorer {
	if patterns == nil {
		patterns = defaultPatterns
	}
	normalized := make([]SpecialPattern, 0, len(patterns))
	for _, p := range patterns {
		phrases := make([]string, 0, len(p.Phrases))
		for _, ph := range p.Phrases {
			if n := text.Normalize(ph); n != "" {
				phrases = append(phrases, n)
			}
		}
		normalized = append(normalized, SpecialPattern{Name: p.Name, Phrases: phrases, Bonus: p.Bonus})
	}
	return &Scorer{tokenizer: tokenizer, detector: detector, patterns: normalized}
}

// prepareTurn runs the text pipeline over one raw user question.
func (s *Scorer) prepareTurn(raw string) *turnInput {
	tokens := s.tokenizer.Tokenize(raw)
	sequence, set := s.tokenizer.Expand(tokens)

	return &turnInput{
		raw:      raw,
		norm:     text.Normalize(raw),
		tokens:   tokens,
		sequence: sequence,
		set:      set,
		joined:   strings.Join(sequence, " "),
		ngrams:   text.NGrams(sequence),
		intents:  s.detector.Detect(raw),
	}
}

// prepareEntry derives the matchable views of one catalogue entry. Entry
// intents run over question + keywords so keyword-only entries still carry
// intent signal.
func (s *Scorer) prepareEntry(e Entry) *preparedEntry {
	var keywords []string
	for _, kw := range strings.Split(e.Keywords, ",") {
		if n := text.Normalize(kw); n != "" {
			keywords = append(keywords, n)
		}
	}

	entryTokens := s.tokenizer.Tokenize(e.Question)
	_, tokenSet := s.tokenizer.Expand(entryTokens)

	return &preparedEntry{
		entry:        e,
		normQuestion: text.Normalize(e.Question),
		normAnswer:   text.Normalize(e.Answer),
		keywords:     keywords,
		intents:      s.detector.Detect(e.Question + " " + e.Keywords),
		tokenSet:     tokenSet,
	}
}

// score computes the additive similarity between one turn and one entry.
func (s *Scorer) score(p *preparedEntry, in *turnInput, convCtx *store.ConversationContext) float64 {
	var total float64

	// 1. Exact match on the expanded-token rendering of the input.
	if in.joined != "" && in.joined == p.normQuestion {
		total += weightExactMatch
	}

	// 2. Intent overlap, weighted by the weaker side of each pair.
	for _, ui := range in.intents {
		for _, ei := range p.intents {
			if ui.Name == ei.Name {
				total += weightIntentOverlap * float64(min(ui.Score, ei.Score))
			}
		}
	}

	// 3. N-gram overlap against question, keywords and answer; wider grams
	// weigh proportionally more.
	for _, g := range in.ngrams {
		w := float64(text.GramWidth(g))
		if strings.Contains(p.normQuestion, g) {
			total += weightGramQuestion * w
		}
		if containsAny(p.keywords, g) {
			total += weightGramKeyword * w
		}
		if strings.Contains(p.normAnswer, g) {
			total += weightGramAnswer * w
		}
	}

	// 4. Context continuity with the previous matched answer.
	if convCtx != nil {
		if convCtx.LastCategory != "" && convCtx.LastCategory == p.entry.Category {
			total += weightSameCategory
		}
		for _, kw := range convCtx.LastKeywords {
			if strings.Contains(p.normQuestion, kw) || containsAny(p.keywords, kw) {
				total += weightContextKw
			}
		}
	}

	// 5. Jaccard similarity over expanded token sets.
	total += weightJaccard * jaccard(in.set, p.tokenSet)

	// 6. Hand-authored pattern bonuses, at most once per pattern.
	for _, pat := range s.patterns {
		for _, phrase := range pat.Phrases {
			if strings.Contains(in.norm, phrase) &&
				(strings.Contains(p.normQuestion, phrase) || containsAny(p.keywords, phrase)) {
				total += pat.Bonus
				break
			}
		}
	}

	return total
}

// threshold computes the dynamic direct-answer cutoff for one turn: short
// inputs get a lower bar, long inputs a higher one, and a detected intent
// relaxes it slightly.
func (s *Scorer) threshold(in *turnInput) float64 {
	t := thresholdBase
	if len(in.set) <= shortInputTokenCount {
		t = thresholdShortInput
	} else if len(in.set) >= longInputTokenCount {
		t = thresholdLongInput
	}
	if len(in.intents) > 0 {
		t -= thresholdIntentCut
	}
	return t
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func containsAny(terms []string, sub string) bool {
	for _, t := range terms {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}
