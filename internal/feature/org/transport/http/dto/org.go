// Package dto defines the request and response bodies of the org endpoints.
package dto

import (
	"time"

	"wordford/internal/feature/org/domain/entity"
)

// CreateOrgReq is the body of PUT /api/orgs.
type CreateOrgReq struct {
	Name string `json:"name" binding:"required,max=255"`
}

// OrgResponse is the public view of an org.
type OrgResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOrgResponse builds the public view of o.
func NewOrgResponse(o *entity.Org) OrgResponse {
	return OrgResponse{
		ID:        o.ID,
		Name:      o.Name,
		OwnerID:   o.OwnerID,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
