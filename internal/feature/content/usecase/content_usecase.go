// Package usecase implements the business logic for the content feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	appentity "wordford/internal/feature/app/domain/entity"
	appusecase "wordford/internal/feature/app/usecase"
	"wordford/internal/feature/content/domain/entity"
	pageentity "wordford/internal/feature/page/domain/entity"
	pageusecase "wordford/internal/feature/page/usecase"
)

var (
	// ErrContentNotFound is returned when no content has the requested id.
	ErrContentNotFound = errors.New("content not found")
	// ErrDuplicateName is returned when a page already has content with the name.
	ErrDuplicateName = errors.New("content name is already in use for this page")
	// ErrPageNotFound is returned for a missing page.
	ErrPageNotFound = errors.New("page not found")
)

// ContentRepository abstracts content persistence.
type ContentRepository interface {
	// Create returns ErrDuplicateName when (page_id, name) is taken.
	Create(ctx context.Context, content *entity.Content) error
	FindByID(ctx context.Context, id uint) (*entity.Content, error)
	ListByPage(ctx context.Context, pageID uint) ([]entity.Content, error)
	Delete(ctx context.Context, content *entity.Content) error
}

// PageFinder looks up pages.
type PageFinder interface {
	FindByID(ctx context.Context, id uint) (*pageentity.Page, error)
}

// AppFinder looks up apps.
type AppFinder interface {
	FindByID(ctx context.Context, id uint) (*appentity.App, error)
}

// CreateContentInput carries the fields of a new content entry.
type CreateContentInput struct {
	PageID uint
	Name   string
	Body   string
}

// PageContent is a page rendered as a name to body map.
type PageContent struct {
	// App is nil when the page's app no longer exists.
	App     *appentity.App
	Page    *pageentity.Page
	Content map[string]string
}

type contentUsecase struct {
	content ContentRepository
	pages   PageFinder
	apps    AppFinder
}

// NewContentUsecase creates a contentUsecase.
func NewContentUsecase(content ContentRepository, pages PageFinder, apps AppFinder) *contentUsecase {
	return &contentUsecase{content: content, pages: pages, apps: apps}
}

func (u *contentUsecase) findPage(ctx context.Context, id uint) (*pageentity.Page, error) {
	page, err := u.pages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pageusecase.ErrPageNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to find page: %w", err)
	}
	return page, nil
}

// Create stores a new content entry on an existing page.
func (u *contentUsecase) Create(ctx context.Context, in CreateContentInput) (*entity.Content, error) {
	if _, err := u.findPage(ctx, in.PageID); err != nil {
		return nil, err
	}
	content := &entity.Content{PageID: in.PageID, Name: in.Name, Body: in.Body}
	if err := u.content.Create(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// Get returns the content with id.
func (u *contentUsecase) Get(ctx context.Context, id uint) (*entity.Content, error) {
	return u.content.FindByID(ctx, id)
}

// Delete removes the content with id.
func (u *contentUsecase) Delete(ctx context.Context, id uint) error {
	content, err := u.content.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return u.content.Delete(ctx, content)
}

// PageContent renders the page with pageID. A page without content yields an empty map.
func (u *contentUsecase) PageContent(ctx context.Context, pageID uint) (*PageContent, error) {
	page, err := u.findPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	app, err := u.apps.FindByID(ctx, page.AppID)
	if err != nil && !errors.Is(err, appusecase.ErrAppNotFound) {
		return nil, fmt.Errorf("failed to find app: %w", err)
	}

	entries, err := u.content.ListByPage(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Body
	}
	return &PageContent{App: app, Page: page, Content: m}, nil
}
