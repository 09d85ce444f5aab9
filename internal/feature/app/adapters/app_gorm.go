// Package adapters provides the gorm repository for the app feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wordford/internal/feature/app/domain/entity"
	"wordford/internal/feature/app/usecase"
)

type appGorm struct {
	db *gorm.DB
}

var _ usecase.AppRepository = (*appGorm)(nil)

// NewAppRepository creates the gorm AppRepository.
func NewAppRepository(db *gorm.DB) *appGorm {
	return &appGorm{db: db}
}

func (r *appGorm) Create(ctx context.Context, app *entity.App) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *appGorm) FindByID(ctx context.Context, id uint) (*entity.App, error) {
	var app entity.App
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAppNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *appGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.App{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAppNotFound
	}
	return nil
}
