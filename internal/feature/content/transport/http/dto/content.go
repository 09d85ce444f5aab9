// Package dto defines the request and response bodies of the content endpoints.
package dto

import (
	"time"

	authdto "wordford/internal/feature/auth/transport/http/dto"
	"wordford/internal/feature/content/domain/entity"
)

// CreateContentReq is the body of PUT /api/content.
type CreateContentReq struct {
	PageID uint   `json:"page_id" binding:"required"`
	Name   string `json:"name" binding:"required,max=255"`
	Body   string `json:"body"`
}

// ContentResponse is the public view of a content entry.
type ContentResponse struct {
	ID        uint      `json:"id"`
	PageID    uint      `json:"page_id"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContentResponse builds the public view of c.
func NewContentResponse(c *entity.Content) ContentResponse {
	return ContentResponse{
		ID:        c.ID,
		PageID:    c.PageID,
		Name:      c.Name,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// PageRef identifies the page of a PageContentResponse.
type PageRef struct {
	ID    uint   `json:"id"`
	AppID uint   `json:"app_id"`
	Name  string `json:"name"`
}

// AppRef identifies the app of a PageContentResponse.
type AppRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PageContentResponse is the body of GET /api/pages/:id/content.
type PageContentResponse struct {
	App     *AppRef               `json:"app,omitempty"`
	Page    PageRef               `json:"page"`
	Content map[string]string     `json:"content"`
	Viewer  *authdto.UserResponse `json:"viewer,omitempty"`
}
