// Package usecase implements the business logic for the org feature.
package usecase

import (
	"context"
	"errors"
	"strings"

	"wordford/internal/feature/org/domain/entity"
)

var (
	// ErrOrgNotFound is returned when no org has the requested id.
	ErrOrgNotFound = errors.New("org not found")
	// ErrEmptyName is returned when an org name is blank.
	ErrEmptyName = errors.New("org name is required")
)

// OrgRepository abstracts org persistence.
type OrgRepository interface {
	Create(ctx context.Context, org *entity.Org) error
	FindByID(ctx context.Context, id uint) (*entity.Org, error)
	Delete(ctx context.Context, id uint) error
}

type orgUsecase struct {
	orgs OrgRepository
}

// NewOrgUsecase creates an orgUsecase.
func NewOrgUsecase(orgs OrgRepository) *orgUsecase {
	return &orgUsecase{orgs: orgs}
}

// Create stores a new org owned by ownerID.
func (u *orgUsecase) Create(ctx context.Context, ownerID uint, name string) (*entity.Org, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	org := &entity.Org{Name: name, OwnerID: ownerID}
	if err := u.orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Get returns the org with id.
func (u *orgUsecase) Get(ctx context.Context, id uint) (*entity.Org, error) {
	return u.orgs.FindByID(ctx, id)
}

// Delete removes the org with id. Apps of the org are left in place.
func (u *orgUsecase) Delete(ctx context.Context, id uint) error {
	return u.orgs.Delete(ctx, id)
}
