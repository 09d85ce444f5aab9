// Package usecase implements the business logic for the page feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	appentity "wordford/internal/feature/app/domain/entity"
	appusecase "wordford/internal/feature/app/usecase"
	"wordford/internal/feature/page/domain/entity"
)

var (
	// ErrPageNotFound is returned when no page has the requested id.
	ErrPageNotFound = errors.New("page not found")
	// ErrAppNotFound is returned when creating a page under a missing app.
	ErrAppNotFound = errors.New("app not found")
)

// PageRepository abstracts page persistence.
type PageRepository interface {
	Create(ctx context.Context, page *entity.Page) error
	FindByID(ctx context.Context, id uint) (*entity.Page, error)
	ListByApp(ctx context.Context, appID uint) ([]entity.Page, error)
	Delete(ctx context.Context, id uint) error
}

// AppFinder looks up the parent app.
type AppFinder interface {
	FindByID(ctx context.Context, id uint) (*appentity.App, error)
}

type pageUsecase struct {
	pages PageRepository
	apps  AppFinder
}

// NewPageUsecase creates a pageUsecase.
func NewPageUsecase(pages PageRepository, apps AppFinder) *pageUsecase {
	return &pageUsecase{pages: pages, apps: apps}
}

// Create stores a new page under an existing app.
func (u *pageUsecase) Create(ctx context.Context, appID uint, name string) (*entity.Page, error) {
	if _, err := u.apps.FindByID(ctx, appID); err != nil {
		if errors.Is(err, appusecase.ErrAppNotFound) {
			return nil, ErrAppNotFound
		}
		return nil, fmt.Errorf("failed to find app: %w", err)
	}

	page := &entity.Page{AppID: appID, Name: name}
	if err := u.pages.Create(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// Get returns the page with id.
func (u *pageUsecase) Get(ctx context.Context, id uint) (*entity.Page, error) {
	return u.pages.FindByID(ctx, id)
}

// Delete removes the page with id.
func (u *pageUsecase) Delete(ctx context.Context, id uint) error {
	return u.pages.Delete(ctx, id)
}
