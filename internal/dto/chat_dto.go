package dto

// AskChatRequest is one user turn against the FAQ assistant. SessionId is
// optional on the first turn; the server mints one and echoes it back.
type AskChatRequest struct {
	Question              string `json:"question" validate:"required,max=500"`
	SessionId             string `json:"session_id" validate:"omitempty,max=64"`
	ReturnMultipleChoices bool   `json:"return_multiple_choices"`
}

type ChatChoiceDTO struct {
	Id         uint    `json:"id"`
	Index      int     `json:"index"`
	Question   string  `json:"question"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Preview    string  `json:"preview"`
}

// AskChatResponse is the union of the assistant's reply shapes,
// discriminated by Type: "answer", "multiple_choices", "greeting", "help"
// or "fallback" when nothing matched.
type AskChatResponse struct {
	SessionId string `json:"session_id"`
	Type      string `json:"type"`

	Question        string   `json:"question,omitempty"`
	Answer          string   `json:"answer,omitempty"`
	Confidence      float64  `json:"confidence,omitempty"`
	FaqId           uint     `json:"faq_id,omitempty"`
	Category        string   `json:"category,omitempty"`
	Suggestions     []string `json:"suggestions,omitempty"`
	DetectedIntents []string `json:"detected_intents,omitempty"`

	Message    string          `json:"message,omitempty"`
	Choices    []ChatChoiceDTO `json:"choices,omitempty"`
	TotalFound int             `json:"total_found,omitempty"`
}
