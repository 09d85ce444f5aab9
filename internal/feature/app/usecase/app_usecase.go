// Package usecase implements the business logic for the app feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"wordford/internal/feature/app/domain/entity"
	orgentity "wordford/internal/feature/org/domain/entity"
	orgusecase "wordford/internal/feature/org/usecase"
	pageentity "wordford/internal/feature/page/domain/entity"
)

var (
	// ErrAppNotFound is returned when no app has the requested id.
	ErrAppNotFound = errors.New("app not found")
	// ErrOrgNotFound is returned when creating an app under a missing org.
	ErrOrgNotFound = errors.New("org not found")
)

// AppRepository abstracts app persistence.
type AppRepository interface {
	Create(ctx context.Context, app *entity.App) error
	FindByID(ctx context.Context, id uint) (*entity.App, error)
	Delete(ctx context.Context, id uint) error
}

// OrgFinder looks up the parent org.
type OrgFinder interface {
	FindByID(ctx context.Context, id uint) (*orgentity.Org, error)
}

// PageLister lists the pages of an app.
type PageLister interface {
	ListByApp(ctx context.Context, appID uint) ([]pageentity.Page, error)
}

// CreateAppInput carries the fields of a new app.
type CreateAppInput struct {
	OrgID       uint
	Name        string
	Description string
	URL         string
}

// AppWithPages is an app together with its pages.
type AppWithPages struct {
	App   *entity.App
	Pages []pageentity.Page
}

type appUsecase struct {
	apps  AppRepository
	orgs  OrgFinder
	pages PageLister
}

// NewAppUsecase creates an appUsecase.
func NewAppUsecase(apps AppRepository, orgs OrgFinder, pages PageLister) *appUsecase {
	return &appUsecase{apps: apps, orgs: orgs, pages: pages}
}

// Create stores a new app under an existing org.
func (u *appUsecase) Create(ctx context.Context, in CreateAppInput) (*entity.App, error) {
	if _, err := u.orgs.FindByID(ctx, in.OrgID); err != nil {
		if errors.Is(err, orgusecase.ErrOrgNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, fmt.Errorf("failed to find org: %w", err)
	}

	app := &entity.App{
		OrgID:       in.OrgID,
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
	}
	if err := u.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// GetWithPages returns the app with id and its pages ordered by id.
func (u *appUsecase) GetWithPages(ctx context.Context, id uint) (*AppWithPages, error) {
	app, err := u.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pages, err := u.pages.ListByApp(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	return &AppWithPages{App: app, Pages: pages}, nil
}

// Delete removes the app with id.
func (u *appUsecase) Delete(ctx context.Context, id uint) error {
	return u.apps.Delete(ctx, id)
}
