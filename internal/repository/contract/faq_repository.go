package contract

import (
	"context"

	"member-portal-be/internal/entity"
	"member-portal-be/internal/repository/specification"
)

type FaqRepository interface {
	Create(ctx context.Context, faq *entity.Faq) error
	Update(ctx context.Context, faq *entity.Faq) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Faq, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Faq, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	ListCategories(ctx context.Context) ([]string, error)
}
