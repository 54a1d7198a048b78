package service

import (
	"context"

	"member-portal-be/internal/dto"
	"member-portal-be/internal/pkg/logger"
	"member-portal-be/internal/repository/contract"
	"member-portal-be/pkg/faq"
)

const fallbackAnswer = "ขออภัยค่ะ ไม่พบคำตอบที่ตรงกับคำถามของคุณ ลองพิมพ์คำถามใหม่ หรือเลือกจากคำถามแนะนำด้านล่างได้เลยค่ะ"

// IChatService defines the FAQ assistant service interface
type IChatService interface {
	Ask(ctx context.Context, request *dto.AskChatRequest) (*dto.AskChatResponse, error)
	GetSuggestions(ctx context.Context) []string
	GetCategories(ctx context.Context) ([]string, error)
}

type chatService struct {
	engine  *faq.Engine
	faqRepo contract.FaqRepository
	logger  logger.ILogger
}

func NewChatService(engine *faq.Engine, faqRepo contract.FaqRepository, log logger.ILogger) IChatService {
	return &chatService{
		engine:  engine,
		faqRepo: faqRepo,
		logger:  log,
	}
}

// Ask resolves one turn through the engine. The engine returns nil when
// nothing matches; the portal's fallback copy is applied here so the HTTP
// layer always has a body to render.
func (cs *chatService) Ask(ctx context.Context, request *dto.AskChatRequest) (*dto.AskChatResponse, error) {
	result := cs.engine.Answer(ctx, faq.Request{
		Question:              request.Question,
		SessionID:             request.SessionId,
		ReturnMultipleChoices: request.ReturnMultipleChoices,
	})

	if result == nil {
		cs.logger.Info("chat-service", "no FAQ match", map[string]interface{}{
			"session_id": request.SessionId,
		})
		return &dto.AskChatResponse{
			SessionId:   request.SessionId,
			Type:        "fallback",
			Answer:      fallbackAnswer,
			Suggestions: faq.StarterSuggestions,
		}, nil
	}

	response := &dto.AskChatResponse{
		SessionId:       request.SessionId,
		Type:            result.Type,
		Question:        result.Question,
		Answer:          result.Answer,
		Confidence:      result.Confidence,
		FaqId:           result.ID,
		Category:        result.Category,
		Suggestions:     result.Suggestions,
		DetectedIntents: result.DetectedIntents,
		Message:         result.Message,
		TotalFound:      result.TotalFound,
	}
	if len(result.Choices) > 0 {
		response.Choices = make([]dto.ChatChoiceDTO, len(result.Choices))
		for i, c := range result.Choices {
			response.Choices[i] = dto.ChatChoiceDTO{
				Id:         c.ID,
				Index:      c.Index,
				Question:   c.Question,
				Category:   c.Category,
				Confidence: c.Confidence,
				Preview:    c.Preview,
			}
		}
	}
	return response, nil
}

// GetSuggestions returns the fixed starter questions for the chat widget.
func (cs *chatService) GetSuggestions(ctx context.Context) []string {
	return faq.StarterSuggestions
}

// GetCategories lists the distinct categories of active catalogue entries.
func (cs *chatService) GetCategories(ctx context.Context) ([]string, error) {
	return cs.faqRepo.ListCategories(ctx)
}
