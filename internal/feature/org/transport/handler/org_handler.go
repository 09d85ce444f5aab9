// Package handler provides the HTTP handlers of the org feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wordford/internal/feature/org/domain/entity"
	"wordford/internal/feature/org/transport/http/dto"
	"wordford/internal/feature/org/usecase"
	platformhandler "wordford/internal/platform/http/handler"
	jwtmw "wordford/internal/platform/jwt"
)

// OrgUsecase defines the org operations used by the handler.
type OrgUsecase interface {
	Create(ctx context.Context, ownerID uint, name string) (*entity.Org, error)
	Get(ctx context.Context, id uint) (*entity.Org, error)
	Delete(ctx context.Context, id uint) error
}

// OrgHandler handles /api/orgs. Every route requires a resolved user.
type OrgHandler struct {
	uc OrgUsecase
}

// NewOrgHandler creates an OrgHandler.
func NewOrgHandler(uc OrgUsecase) *OrgHandler {
	return &OrgHandler{uc: uc}
}

// Create handles PUT /api/orgs.
func (h *OrgHandler) Create(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.CreateOrgReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.uc.Create(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("create org failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrgResponse(org))
}

// Get handles GET /api/orgs/:id.
func (h *OrgHandler) Get(c *gin.Context) {
	id, ok := platformhandler.ParamID(c, "id")
	if !ok {
		return
	}
	org, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get org failed", id, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrgResponse(org))
}

// Delete handles DELETE /api/orgs/:id.
func (h *OrgHandler) Delete(c *gin.Context) {
	id, ok := platformhandler.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete org failed", id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrgHandler) fail(c *gin.Context, msg string, id uint, err error) {
	if errors.Is(err, usecase.ErrOrgNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	slog.Error(msg, "error", err, "org_id", id)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
