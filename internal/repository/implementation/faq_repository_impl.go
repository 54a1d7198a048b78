package implementation

import (
	"context"
	"errors"

	"member-portal-be/internal/entity"
	"member-portal-be/internal/mapper"
	"member-portal-be/internal/model"
	"member-portal-be/internal/repository/contract"
	"member-portal-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FaqRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FaqMapper
}

func NewFaqRepository(db *gorm.DB) contract.FaqRepository {
	return &FaqRepositoryImpl{
		db:     db,
		mapper: mapper.NewFaqMapper(),
	}
}

func (r *FaqRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FaqRepositoryImpl) Create(ctx context.Context, faq *entity.Faq) error {
	m := r.mapper.ToModel(faq)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.ToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) Update(ctx context.Context, faq *entity.Faq) error {
	m := r.mapper.ToModel(faq)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.ToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Faq{}, id).Error
}

func (r *FaqRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Faq, error) {
	var m model.Faq
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FaqRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Faq, error) {
	var models []*model.Faq
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FaqRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Faq{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FaqRepositoryImpl) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&model.Faq{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
