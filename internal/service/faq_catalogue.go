package service

import (
	"context"
	"strings"

	"member-portal-be/internal/entity"
	"member-portal-be/internal/pkg/logger"
	"member-portal-be/internal/repository/contract"
	"member-portal-be/internal/repository/specification"
	"member-portal-be/pkg/faq"
)

// faqCatalogue adapts the GORM-backed repository to the engine's Catalogue
// interface. Malformed rows (blank question or answer) are skipped with a
// warning instead of aborting the scoring pass.
type faqCatalogue struct {
	repo   contract.FaqRepository
	logger logger.ILogger
}

func NewFaqCatalogue(repo contract.FaqRepository, log logger.ILogger) faq.Catalogue {
	return &faqCatalogue{repo: repo, logger: log}
}

func (c *faqCatalogue) ListActiveEntries(ctx context.Context) ([]faq.Entry, error) {
	rows, err := c.repo.FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "id", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	entries := make([]faq.Entry, 0, len(rows))
	for _, row := range rows {
		entry, ok := c.toEntry(row)
		if !ok {
			c.logger.Warn("faq-catalogue", "skipping malformed FAQ entry", map[string]interface{}{
				"faq_id": row.Id,
			})
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c *faqCatalogue) GetByID(ctx context.Context, id uint) (*faq.Entry, error) {
	row, err := c.repo.FindOne(ctx, specification.ByID{ID: id}, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	entry, ok := c.toEntry(row)
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (c *faqCatalogue) toEntry(row *entity.Faq) (faq.Entry, bool) {
	if strings.TrimSpace(row.Question) == "" || strings.TrimSpace(row.Answer) == "" {
		return faq.Entry{}, false
	}
	return faq.Entry{
		ID:       row.Id,
		Question: row.Question,
		Answer:   row.Answer,
		Category: row.Category,
		Keywords: row.Keywords,
		Active:   row.IsActive,
	}, true
}
