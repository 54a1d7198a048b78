package faq

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"member-portal-be/pkg/store"
)

const (
	maxChoices          = 10
	previewLimit        = 100
	singleChoiceCutoff  = 15.0
	choiceTypeIndex     = "index"
	choiceTypeFaqID     = "faq_id"
	choicePromptMessage = "พบคำถามที่ใกล้เคียงหลายข้อ กรุณาเลือกข้อที่ตรงกับความต้องการของคุณ"
)

var (
	bareNumberRe   = regexp.MustCompile(`^\d+$`)
	faqIDRe        = regexp.MustCompile(`^faq_(\d+)$`)
	selectionRe    = regexp.MustCompile(`^(?:เลือก|ข้อ|คำถามที่|ตัวที่|อันที่)\s*(\d+)`)
	selectionWords = []string{"เลือก", "ข้อ", "คำถามที่", "ตัวที่", "อันที่"}
)

// ChoiceInput is the parse of a follow-up message against a pending menu.
// IsChoice=false means the message is a fresh question, not a selection.
type ChoiceInput struct {
	IsChoice   bool
	ChoiceID   int
	ChoiceType string
}

// ParseChoiceInput recognizes a bare integer (1-based menu index), an
// explicit faq_<id> reference, or a Thai selection keyword followed by a
// number. Indexes are converted to 0-based.
func ParseChoiceInput(input string) ChoiceInput {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ChoiceInput{}
	}

	if bareNumberRe.MatchString(trimmed) {
		n, err := strconv.Atoi(trimmed)
		if err != nil || n < 1 {
			return ChoiceInput{}
		}
		return ChoiceInput{IsChoice: true, ChoiceID: n - 1, ChoiceType: choiceTypeIndex}
	}

	if m := faqIDRe.FindStringSubmatch(strings.ToLower(trimmed)); m != nil {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return ChoiceInput{}
		}
		return ChoiceInput{IsChoice: true, ChoiceID: id, ChoiceType: choiceTypeFaqID}
	}

	if m := selectionRe.FindStringSubmatch(trimmed); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return ChoiceInput{}
		}
		return ChoiceInput{IsChoice: true, ChoiceID: n - 1, ChoiceType: choiceTypeIndex}
	}

	return ChoiceInput{}
}

// looksLikeSelection reports whether the input starts with a selection
// keyword even if no usable number follows. Used to answer with help copy
// instead of silently re-scoring obviously selection-shaped input.
func looksLikeSelection(input string) bool {
	trimmed := strings.TrimSpace(input)
	for _, w := range selectionWords {
		if strings.HasPrefix(trimmed, w) {
			return true
		}
	}
	return false
}

// choiceResult is the outcome of formatting scored candidates: either a menu
// or a single confident candidate that bypasses menu display.
type choiceResult struct {
	direct     *scoredCandidate
	choices    []Choice
	totalFound int
}

// formatChoices filters candidates with positive score and keeps the top
// maxChoices. A lone survivor above the cutoff is returned as a direct
// answer instead of a one-row menu.
func formatChoices(candidates []scoredCandidate, max int) *choiceResult {
	if max <= 0 {
		max = maxChoices
	}

	var positive []scoredCandidate
	for _, c := range candidates {
		if c.score > 0 {
			positive = append(positive, c)
		}
	}
	if len(positive) == 0 {
		return nil
	}

	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].score > positive[j].score
	})

	total := len(positive)
	if len(positive) > max {
		positive = positive[:max]
	}

	if len(positive) == 1 && positive[0].score > singleChoiceCutoff {
		return &choiceResult{direct: &positive[0], totalFound: total}
	}

	choices := make([]Choice, len(positive))
	for i, c := range positive {
		choices[i] = Choice{
			ID:         c.entry.ID,
			Index:      i,
			Question:   c.entry.Question,
			Category:   c.entry.Category,
			Confidence: c.score,
			Preview:    preview(c.entry.Answer),
		}
	}
	return &choiceResult{choices: choices, totalFound: total}
}

// resolutionStatus tags the outcome of resolving a parsed selection against
// the pending menu, so the orchestrator branches explicitly instead of
// null-checking.
type resolutionStatus int

const (
	resolutionResolved resolutionStatus = iota
	resolutionNotAChoice
	resolutionOutOfRange
)

// resolveChoice maps a parsed selection onto the pending menu. An index is
// bounds-checked; a faq_id is matched against the menu first and falls back
// to the caller's catalogue lookup.
func resolveChoice(parsed ChoiceInput, pending []store.PendingChoice) (*store.PendingChoice, resolutionStatus) {
	if !parsed.IsChoice {
		return nil, resolutionNotAChoice
	}

	switch parsed.ChoiceType {
	case choiceTypeIndex:
		if parsed.ChoiceID < 0 || parsed.ChoiceID >= len(pending) {
			return nil, resolutionOutOfRange
		}
		return &pending[parsed.ChoiceID], resolutionResolved
	case choiceTypeFaqID:
		for i := range pending {
			if pending[i].FaqID == uint(parsed.ChoiceID) {
				return &pending[i], resolutionResolved
			}
		}
		return nil, resolutionOutOfRange
	default:
		return nil, resolutionNotAChoice
	}
}

func preview(answer string) string {
	if utf8.RuneCountInString(answer) <= previewLimit {
		return answer
	}
	runes := []rune(answer)
	return fmt.Sprintf("%s...", string(runes[:previewLimit]))
}
