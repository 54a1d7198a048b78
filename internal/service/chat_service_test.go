package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"member-portal-be/internal/dto"
	"member-portal-be/internal/entity"
	"member-portal-be/internal/repository/memory"
	"member-portal-be/internal/repository/specification"
	"member-portal-be/pkg/faq"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeFaqRepository serves canned rows; only the read paths the chat flow
// touches are implemented.
type fakeFaqRepository struct {
	rows       []*entity.Faq
	err        error
	categories []string
}

func (f *fakeFaqRepository) Create(ctx context.Context, faq *entity.Faq) error { return nil }
func (f *fakeFaqRepository) Update(ctx context.Context, faq *entity.Faq) error { return nil }
func (f *fakeFaqRepository) Delete(ctx context.Context, id uint) error         { return nil }

func (f *fakeFaqRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Faq, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			for _, row := range f.rows {
				if row.Id == byID.ID {
					return row, nil
				}
			}
		}
	}
	return nil, nil
}

func (f *fakeFaqRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Faq, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeFaqRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeFaqRepository) ListCategories(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func newTestChatService(repo *fakeFaqRepository) IChatService {
	log := nopLogger{}
	contexts := memory.NewContextRepository(time.Minute, time.Minute, time.Minute)
	catalogue := NewFaqCatalogue(repo, log)
	engine := faq.NewEngine(catalogue, contexts, log)
	return NewChatService(engine, repo, log)
}

func TestAskReturnsAnswer(t *testing.T) {
	repo := &fakeFaqRepository{rows: []*entity.Faq{
		{
			Id:       1,
			Question: "สมัครสมาชิกอย่างไร",
			Answer:   "กรอกข้อมูลส่วนตัวและยืนยันอีเมลตามขั้นตอน",
			Category: "registration",
			Keywords: "สมัคร,ลงทะเบียน",
			IsActive: true,
		},
	}}
	svc := newTestChatService(repo)

	resp, err := svc.Ask(context.Background(), &dto.AskChatRequest{
		Question:  "อยากสมัครสมาชิก",
		SessionId: "s1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "answer", resp.Type)
	assert.Equal(t, "s1", resp.SessionId)
	assert.Equal(t, uint(1), resp.FaqId)
	assert.NotEmpty(t, resp.Answer)
}

func TestAskFallsBackWhenNothingMatches(t *testing.T) {
	repo := &fakeFaqRepository{rows: nil}
	svc := newTestChatService(repo)

	resp, err := svc.Ask(context.Background(), &dto.AskChatRequest{
		Question:  "พยากรณ์อากาศพรุ่งนี้",
		SessionId: "s1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fallback", resp.Type)
	assert.Equal(t, fallbackAnswer, resp.Answer)
	assert.Equal(t, faq.StarterSuggestions, resp.Suggestions)
}

func TestAskFallsBackOnRepositoryError(t *testing.T) {
	repo := &fakeFaqRepository{err: errors.New("connection refused")}
	svc := newTestChatService(repo)

	resp, err := svc.Ask(context.Background(), &dto.AskChatRequest{
		Question:  "อยากสมัครสมาชิก",
		SessionId: "s1",
	})

	// Engine failures degrade to the fallback copy, never to an HTTP error.
	assert.NoError(t, err)
	assert.Equal(t, "fallback", resp.Type)
}

func TestGetSuggestions(t *testing.T) {
	svc := newTestChatService(&fakeFaqRepository{})
	assert.Equal(t, faq.StarterSuggestions, svc.GetSuggestions(context.Background()))
}

func TestGetCategories(t *testing.T) {
	repo := &fakeFaqRepository{categories: []string{"registration", "contact"}}
	svc := newTestChatService(repo)

	got, err := svc.GetCategories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"registration", "contact"}, got)
}

func TestCatalogueSkipsMalformedRows(t *testing.T) {
	repo := &fakeFaqRepository{rows: []*entity.Faq{
		{Id: 1, Question: "สมัครสมาชิกอย่างไร", Answer: "กรอกข้อมูลตามขั้นตอน", Category: "registration", IsActive: true},
		{Id: 2, Question: "   ", Answer: "คำตอบกำพร้า", IsActive: true},
		{Id: 3, Question: "คำถามไม่มีคำตอบ", Answer: "", IsActive: true},
	}}
	catalogue := NewFaqCatalogue(repo, nopLogger{})

	entries, err := catalogue.ListActiveEntries(context.Background())
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, uint(1), entries[0].ID)
}

func TestCatalogueGetByIDMissing(t *testing.T) {
	catalogue := NewFaqCatalogue(&fakeFaqRepository{}, nopLogger{})

	entry, err := catalogue.GetByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, entry)
}
