// Package dto defines the request and response bodies of the app endpoints.
package dto

import (
	"time"

	"wordford/internal/feature/app/domain/entity"
	"wordford/internal/feature/app/usecase"
	pageentity "wordford/internal/feature/page/domain/entity"
)

// CreateAppReq is the body of PUT /api/apps.
type CreateAppReq struct {
	OrgID       uint   `json:"org_id" binding:"required"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=1024"`
	URL         string `json:"url" binding:"omitempty,url,max=1024"`
}

// AppResponse is the public view of an app.
type AppResponse struct {
	ID          uint      `json:"id"`
	OrgID       uint      `json:"org_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PageSummary is a page listed under its app.
type PageSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppWithPagesResponse is the body of GET /api/apps/:id.
type AppWithPagesResponse struct {
	App   AppResponse   `json:"app"`
	Pages []PageSummary `json:"pages"`
}

// NewAppResponse builds the public view of a.
func NewAppResponse(a *entity.App) AppResponse {
	return AppResponse{
		ID:          a.ID,
		OrgID:       a.OrgID,
		Name:        a.Name,
		Description: a.Description,
		URL:         a.URL,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// NewAppWithPagesResponse builds the body of GET /api/apps/:id.
func NewAppWithPagesResponse(v *usecase.AppWithPages) AppWithPagesResponse {
	return AppWithPagesResponse{App: NewAppResponse(v.App), Pages: NewPageSummaries(v.Pages)}
}

// NewPageSummaries builds the body of GET /api/apps/:id/pages. It is never nil.
func NewPageSummaries(pages []pageentity.Page) []PageSummary {
	out := make([]PageSummary, 0, len(pages))
	for _, p := range pages {
		out = append(out, newPageSummary(p))
	}
	return out
}

func newPageSummary(p pageentity.Page) PageSummary {
	return PageSummary{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}
