package store

import "time"

// PendingChoice is one entry of a disambiguation menu shown to the user.
type PendingChoice struct {
	FaqID      uint    `json:"faq_id"`
	Index      int     `json:"index"`
	Question   string  `json:"question"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Preview    string  `json:"preview"`
}

// ConversationContext is the short-lived per-session state linking
// successive turns. It is owned exclusively by the context repository;
// callers mutate it only through the repository API.
type ConversationContext struct {
	SessionID    string    `json:"session_id"`
	LastCategory string    `json:"last_category"`
	LastKeywords []string  `json:"last_keywords"` // at most 5
	Intents      []string  `json:"intents"`       // at most 3
	LastFaqID    uint      `json:"last_faq_id"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Pending disambiguation sub-state. At most one menu per session;
	// setting a new one overwrites the previous.
	PendingChoices   []PendingChoice `json:"pending_choices,omitempty"`
	OriginalQuestion string          `json:"original_question,omitempty"`
	ChoiceExpiry     time.Time       `json:"choice_expiry,omitempty"`
}
