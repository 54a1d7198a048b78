// Package faq implements the portal's conversational FAQ resolution engine:
// a deterministic, rule-based scorer over a small closed catalogue of
// question/answer entries, with short-lived per-session context and
// disambiguation menus when several candidates are plausible.
package faq

import "context"

// Entry is one catalogue record as the engine sees it. Entries are immutable
// for the duration of a scoring pass.
type Entry struct {
	ID       uint
	Question string
	Answer   string
	Category string
	Keywords string // comma-joined terms
	Active   bool
}

// Catalogue is the external store behind the FAQ entries. Implementations
// own filtering to active rows and the malformed-row skip policy.
type Catalogue interface {
	ListActiveEntries(ctx context.Context) ([]Entry, error)
	GetByID(ctx context.Context, id uint) (*Entry, error)
}

// Request is one conversational turn.
type Request struct {
	Question              string
	SessionID             string
	ReturnMultipleChoices bool
}

// Response kinds.
const (
	TypeAnswer          = "answer"
	TypeMultipleChoices = "multiple_choices"
	TypeGreeting        = "greeting"
	TypeHelp            = "help"
)

// Choice is one row of a disambiguation menu.
type Choice struct {
	ID         uint
	Index      int
	Question   string
	Category   string
	Confidence float64
	Preview    string
}

// Response is the engine's answer for one turn. A nil *Response means no
// match; the caller supplies its own fallback copy.
type Response struct {
	Type string

	// TypeAnswer / TypeGreeting / TypeHelp
	Question        string
	Answer          string
	Confidence      float64
	ID              uint
	Category        string
	Suggestions     []string
	DetectedIntents []string

	// TypeMultipleChoices
	Message    string
	Choices    []Choice
	TotalFound int
}
