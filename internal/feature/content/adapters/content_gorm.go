// Package adapters provides the gorm repository for the content feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wordford/internal/feature/content/domain/entity"
	"wordford/internal/feature/content/usecase"
	"wordford/internal/platform/db"
)

type contentGorm struct {
	db *gorm.DB
}

var _ usecase.ContentRepository = (*contentGorm)(nil)

// NewContentRepository creates the gorm ContentRepository.
func NewContentRepository(db *gorm.DB) *contentGorm {
	return &contentGorm{db: db}
}

func (r *contentGorm) Create(ctx context.Context, c *entity.Content) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *contentGorm) FindByID(ctx context.Context, id uint) (*entity.Content, error) {
	var c entity.Content
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrContentNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *contentGorm) ListByPage(ctx context.Context, pageID uint) ([]entity.Content, error) {
	entries := []entity.Content{}
	if err := r.db.WithContext(ctx).
		Where("page_id = ?", pageID).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *contentGorm) Delete(ctx context.Context, c *entity.Content) error {
	res := r.db.WithContext(ctx).Delete(&entity.Content{}, c.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrContentNotFound
	}
	return nil
}
