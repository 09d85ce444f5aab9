// Package handler provides the HTTP handlers of the page feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wordford/internal/feature/page/domain/entity"
	"wordford/internal/feature/page/transport/http/dto"
	"wordford/internal/feature/page/usecase"
	platformhandler "wordford/internal/platform/http/handler"
)

// PageUsecase defines the page operations used by the handler.
type PageUsecase interface {
	Create(ctx context.Context, appID uint, name string) (*entity.Page, error)
	Get(ctx context.Context, id uint) (*entity.Page, error)
	Delete(ctx context.Context, id uint) error
}

// PageHandler handles /api/pages.
type PageHandler struct {
	uc PageUsecase
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(uc PageUsecase) *PageHandler {
	return &PageHandler{uc: uc}
}

// Create handles PUT /api/pages.
func (h *PageHandler) Create(c *gin.Context) {
	var req dto.CreatePageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.uc.Create(c.Request.Context(), req.AppID, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrAppNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("create page failed", "error", err, "app_id", req.AppID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewPageResponse(page))
}

// Get handles GET /api/pages/:id.
func (h *PageHandler) Get(c *gin.Context) {
	id, ok := platformhandler.ParamID(c, "id")
	if !ok {
		return
	}
	page, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get page failed", id, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page))
}

// Delete handles DELETE /api/pages/:id.
func (h *PageHandler) Delete(c *gin.Context) {
	id, ok := platformhandler.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete page failed", id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PageHandler) fail(c *gin.Context, msg string, id uint, err error) {
	if errors.Is(err, usecase.ErrPageNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	slog.Error(msg, "error", err, "page_id", id)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
