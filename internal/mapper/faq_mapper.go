package mapper

import (
	"time"

	"member-portal-be/internal/entity"
	"member-portal-be/internal/model"
)

type FaqMapper struct{}

func NewFaqMapper() *FaqMapper {
	return &FaqMapper{}
}

func (m *FaqMapper) ToEntity(f *model.Faq) *entity.Faq {
	if f == nil {
		return nil
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.Faq{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		Keywords:  f.Keywords,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *FaqMapper) ToModel(f *entity.Faq) *model.Faq {
	if f == nil {
		return nil
	}

	var updatedAt time.Time
	if f.UpdatedAt != nil {
		updatedAt = *f.UpdatedAt
	}

	return &model.Faq{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		Keywords:  f.Keywords,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *FaqMapper) ToEntities(models []*model.Faq) []*entity.Faq {
	entities := make([]*entity.Faq, len(models))
	for i, f := range models {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
