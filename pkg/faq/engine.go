package faq

import (
	"context"
	"sort"
	"strconv"

	"member-portal-be/internal/pkg/logger"
	"member-portal-be/internal/repository/memory"
	"member-portal-be/pkg/faq/intent"
	"member-portal-be/pkg/faq/text"
	"member-portal-be/pkg/store"
)

const maxSuggestions = 3

// Engine is the façade over the FAQ resolution pipeline. Each turn is a pure
// computation over the current catalogue snapshot plus one session's context;
// the context repository is the only shared mutable state. Turns for the
// same session id must be serialized by the caller.
type Engine struct {
	catalogue Catalogue
	contexts  *memory.ContextRepository
	tokenizer *text.Tokenizer
	detector  *intent.Detector
	scorer    *Scorer
	logger    logger.ILogger
}

// NewEngine wires the engine with the default Thai tables.
func NewEngine(catalogue Catalogue, contexts *memory.ContextRepository, log logger.ILogger) *Engine {
	tokenizer := text.NewTokenizer()
	detector := intent.NewDetector()
	return &Engine{
		catalogue: catalogue,
		contexts:  contexts,
		tokenizer: tokenizer,
		detector:  detector,
		scorer:    NewScorer(tokenizer, detector, nil),
		logger:    log,
	}
}

// Answer resolves one conversational turn. It returns nil when nothing in
// the catalogue matches; the caller supplies its own fallback copy. Internal
// failures degrade to nil after logging, they never propagate.
func (e *Engine) Answer(ctx context.Context, req Request) *Response {
	in := e.scorer.prepareTurn(req.Question)

	// A pending menu takes priority: the reply may be a selection.
	if req.SessionID != "" {
		if resp := e.tryResolvePending(ctx, req.SessionID, req.Question); resp != nil {
			return resp
		}
	}

	if isGreeting(in.norm, in) {
		return greetingResponse()
	}

	entries, err := e.catalogue.ListActiveEntries(ctx)
	if err != nil {
		e.logger.Error("faq-engine", "catalogue read failed", map[string]interface{}{
			"error":      err.Error(),
			"session_id": req.SessionID,
		})
		return nil
	}
	if len(entries) == 0 {
		return nil
	}

	convCtx := e.contexts.Get(req.SessionID)

	candidates := make([]scoredCandidate, 0, len(entries))
	for _, entry := range entries {
		prepared := e.scorer.prepareEntry(entry)
		candidates = append(candidates, scoredCandidate{
			entry: entry,
			score: e.scorer.score(prepared, in, convCtx),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].entry.ID < candidates[j].entry.ID
	})

	threshold := e.scorer.threshold(in)
	top := candidates[0]

	if req.ReturnMultipleChoices || top.score <= threshold {
		if result := formatChoices(candidates, maxChoices); result != nil {
			if result.direct != nil {
				return e.directAnswer(*result.direct, in, entries, req.SessionID)
			}
			e.storePendingChoices(req.SessionID, result.choices, req.Question)
			return &Response{
				Type:       TypeMultipleChoices,
				Message:    choicePromptMessage,
				Choices:    result.choices,
				TotalFound: result.totalFound,
			}
		}
		return nil
	}

	return e.directAnswer(top, in, entries, req.SessionID)
}

// tryResolvePending checks the session's pending menu against the new input.
// A successful selection answers directly; selection-shaped input that fails
// to parse gets help copy; anything else falls through to fresh scoring.
func (e *Engine) tryResolvePending(ctx context.Context, sessionID, input string) *Response {
	pending, _ := e.contexts.GetPendingChoices(sessionID)
	if len(pending) == 0 {
		return nil
	}

	parsed := ParseChoiceInput(input)
	selected, status := resolveChoice(parsed, pending)

	switch status {
	case resolutionResolved:
		e.contexts.ClearPendingChoices(sessionID)
		return e.answerFromChoice(ctx, sessionID, selected)
	case resolutionOutOfRange:
		// An explicit faq_<id> may point at a valid entry outside the menu;
		// answer it from the catalogue when it does. Anything else degrades
		// to a fresh question with the menu left answerable.
		if parsed.ChoiceType == choiceTypeFaqID {
			offMenu := &store.PendingChoice{FaqID: uint(parsed.ChoiceID)}
			if resp := e.answerFromChoice(ctx, sessionID, offMenu); resp != nil {
				e.contexts.ClearPendingChoices(sessionID)
				return resp
			}
		}
		return nil
	default:
		if looksLikeSelection(input) {
			return helpResponse(input, len(pending))
		}
		return nil
	}
}

// answerFromChoice turns a resolved menu row back into a full answer,
// re-reading the catalogue so the answer body is current.
func (e *Engine) answerFromChoice(ctx context.Context, sessionID string, choice *store.PendingChoice) *Response {
	entry, err := e.catalogue.GetByID(ctx, choice.FaqID)
	if err != nil || entry == nil {
		if err != nil {
			e.logger.Warn("faq-engine", "choice lookup failed", map[string]interface{}{
				"error":  err.Error(),
				"faq_id": choice.FaqID,
			})
		}
		return nil
	}

	tokens := e.tokenizer.Tokenize(entry.Question)
	detections := e.detector.Detect(entry.Question)
	names := make([]string, len(detections))
	for i, d := range detections {
		names[i] = d.Name
	}
	e.contexts.UpdateWithFaq(sessionID, entry.Category, entry.ID, tokens, names)

	return &Response{
		Type:            TypeAnswer,
		Question:        entry.Question,
		Answer:          entry.Answer,
		Confidence:      choice.Confidence,
		ID:              entry.ID,
		Category:        entry.Category,
		DetectedIntents: names,
	}
}

func (e *Engine) directAnswer(top scoredCandidate, in *turnInput, entries []Entry, sessionID string) *Response {
	if sessionID != "" {
		e.contexts.UpdateWithFaq(sessionID, top.entry.Category, top.entry.ID, in.tokens, in.intentNames())
	}

	return &Response{
		Type:            TypeAnswer,
		Question:        top.entry.Question,
		Answer:          top.entry.Answer,
		Confidence:      top.score,
		ID:              top.entry.ID,
		Category:        top.entry.Category,
		Suggestions:     e.relatedQuestions(top.entry, in, entries),
		DetectedIntents: in.intentNames(),
	}
}

func (e *Engine) storePendingChoices(sessionID string, choices []Choice, originalQuestion string) {
	if sessionID == "" {
		return
	}
	pending := make([]store.PendingChoice, len(choices))
	for i, c := range choices {
		pending[i] = store.PendingChoice{
			FaqID:      c.ID,
			Index:      c.Index,
			Question:   c.Question,
			Category:   c.Category,
			Confidence: c.Confidence,
			Preview:    c.Preview,
		}
	}
	e.contexts.SetPendingChoices(sessionID, pending, originalQuestion)
}

// relatedQuestions picks up to 3 follow-up suggestions: same category first,
// then intent overlap, then arbitrary fill.
func (e *Engine) relatedQuestions(matched Entry, in *turnInput, entries []Entry) []string {
	var suggestions []string
	seen := map[uint]struct{}{matched.ID: {}}

	add := func(entry Entry) bool {
		if _, dup := seen[entry.ID]; dup {
			return len(suggestions) >= maxSuggestions
		}
		seen[entry.ID] = struct{}{}
		suggestions = append(suggestions, entry.Question)
		return len(suggestions) >= maxSuggestions
	}

	for _, entry := range entries {
		if entry.Category == matched.Category {
			if add(entry) {
				return suggestions
			}
		}
	}
	for _, entry := range entries {
		for _, d := range e.detector.Detect(entry.Question + " " + entry.Keywords) {
			if in.hasIntent(d.Name) {
				if add(entry) {
					return suggestions
				}
				break
			}
		}
	}
	for _, entry := range entries {
		if add(entry) {
			return suggestions
		}
	}
	return suggestions
}

func helpResponse(question string, pendingCount int) *Response {
	return &Response{
		Type:     TypeHelp,
		Question: question,
		Answer:   "กรุณาพิมพ์หมายเลขข้อที่ต้องการเลือก เช่น \"2\" หรือ \"เลือก 2\"",
		Suggestions: []string{
			"พิมพ์หมายเลข 1-" + strconv.Itoa(pendingCount),
			"หรือพิมพ์คำถามใหม่ได้เลย",
		},
	}
}
