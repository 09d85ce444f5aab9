// Package adapters provides the gorm repository for the org feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wordford/internal/feature/org/domain/entity"
	"wordford/internal/feature/org/usecase"
)

type orgGorm struct {
	db *gorm.DB
}

var _ usecase.OrgRepository = (*orgGorm)(nil)

// NewOrgRepository creates the gorm OrgRepository.
func NewOrgRepository(db *gorm.DB) *orgGorm {
	return &orgGorm{db: db}
}

func (r *orgGorm) Create(ctx context.Context, org *entity.Org) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *orgGorm) FindByID(ctx context.Context, id uint) (*entity.Org, error) {
	var org entity.Org
	if err := r.db.WithContext(ctx).First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOrgNotFound
		}
		return nil, err
	}
	return &org, nil
}

// Delete returns ErrOrgNotFound when nothing was deleted.
func (r *orgGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Org{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrOrgNotFound
	}
	return nil
}
