// Package dto defines the request and response bodies of the page endpoints.
package dto

import (
	"time"

	"wordford/internal/feature/page/domain/entity"
)

// CreatePageReq is the body of PUT /api/pages.
type CreatePageReq struct {
	AppID uint   `json:"app_id" binding:"required"`
	Name  string `json:"name" binding:"required,max=255"`
}

// PageResponse is the public view of a page.
type PageResponse struct {
	ID        uint      `json:"id"`
	AppID     uint      `json:"app_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPageResponse builds the public view of p.
func NewPageResponse(p *entity.Page) PageResponse {
	return PageResponse{
		ID:        p.ID,
		AppID:     p.AppID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
