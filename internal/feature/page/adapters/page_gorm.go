// Package adapters provides the gorm repository for the page feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wordford/internal/feature/page/domain/entity"
	"wordford/internal/feature/page/usecase"
)

type pageGorm struct {
	db *gorm.DB
}

var _ usecase.PageRepository = (*pageGorm)(nil)

// NewPageRepository creates the gorm PageRepository.
func NewPageRepository(db *gorm.DB) *pageGorm {
	return &pageGorm{db: db}
}

func (r *pageGorm) Create(ctx context.Context, page *entity.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *pageGorm) FindByID(ctx context.Context, id uint) (*entity.Page, error) {
	var page entity.Page
	if err := r.db.WithContext(ctx).First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// ListByApp returns the pages of appID in id order. An app without pages yields an empty slice.
func (r *pageGorm) ListByApp(ctx context.Context, appID uint) ([]entity.Page, error) {
	pages := []entity.Page{}
	if err := r.db.WithContext(ctx).
		Where("app_id = ?", appID).
		Order("id ASC").
		Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Page{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPageNotFound
	}
	return nil
}
