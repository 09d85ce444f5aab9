// Package handler provides the HTTP handlers of the app feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wordford/internal/feature/app/domain/entity"
	"wordford/internal/feature/app/transport/http/dto"
	"wordford/internal/feature/app/usecase"
	platformhandler "wordford/internal/platform/http/handler"
)

// AppUsecase defines the app operations used by the handler.
type AppUsecase interface {
	Create(ctx context.Context, in usecase.CreateAppInput) (*entity.App, error)
	GetWithPages(ctx context.Context, id uint) (*usecase.AppWithPages, error)
	Delete(ctx context.Context, id uint) error
}

// AppHandler handles /api/apps.
type AppHandler struct {
	uc AppUsecase
}

// NewAppHandler creates an AppHandler.
func NewAppHandler(uc AppUsecase) *AppHandler {
	return &AppHandler{uc: uc}
}

// Create handles PUT /api/apps.
func (h *AppHandler) Create(c *gin.Context) {
	var req dto.CreateAppReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.uc.Create(c.Request.Context(), usecase.CreateAppInput{
		OrgID:       req.OrgID,
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrOrgNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("create app failed", "error", err, "org_id", req.OrgID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewAppResponse(app))
}

// Get handles GET /api/apps/:id. It is public; no identity is needed.
func (h *AppHandler) Get(c *gin.Context) {
	id, ok := platformhandler.ParamID(c, "id")
	if !ok {
		return
	}
	view, err := h.uc.GetWithPages(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get app failed", id, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAppWithPagesResponse(view))
}

// Pages handles GET /api/apps/:id/pages. It is public like Get.
func (h *AppHandler) Pages(c *gin.Context) {
	id, ok := platformhandler.ParamID(c, "id")
	if !ok {
		return
	}
	view, err := h.uc.GetWithPages(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "list app pages failed", id, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageSummaries(view.Pages))
}

// Delete handles DELETE /api/apps/:id.
func (h *AppHandler) Delete(c *gin.Context) {
	id, ok := platformhandler.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete app failed", id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppHandler) fail(c *gin.Context, msg string, id uint, err error) {
	if errors.Is(err, usecase.ErrAppNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	slog.Error(msg, "error", err, "app_id", id)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
