// Package handler provides the HTTP handlers of the content feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "wordford/internal/feature/auth/transport/http/dto"
	"wordford/internal/feature/content/domain/entity"
	"wordford/internal/feature/content/transport/http/dto"
	"wordford/internal/feature/content/usecase"
	platformhandler "wordford/internal/platform/http/handler"
	jwtmw "wordford/internal/platform/jwt"
)

// ContentUsecase defines the content operations used by the handler.
type ContentUsecase interface {
	Create(ctx context.Context, in usecase.CreateContentInput) (*entity.Content, error)
	Get(ctx context.Context, id uint) (*entity.Content, error)
	Delete(ctx context.Context, id uint) error
	PageContent(ctx context.Context, pageID uint) (*usecase.PageContent, error)
}

// ContentHandler handles /api/content and the public page content view.
type ContentHandler struct {
	uc ContentUsecase
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(uc ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// Create handles PUT /api/content.
func (h *ContentHandler) Create(c *gin.Context) {
	var req dto.CreateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.uc.Create(c.Request.Context(), usecase.CreateContentInput{
		PageID: req.PageID,
		Name:   req.Name,
		Body:   req.Body,
	})
	switch {
	case errors.Is(err, usecase.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrPageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		slog.Error("create content failed", "error", err, "page_id", req.PageID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	default:
		c.JSON(http.StatusCreated, dto.NewContentResponse(content))
	}
}

// Get handles GET /api/content/:id.
func (h *ContentHandler) Get(c *gin.Context) {
	id, ok := platformhandler.ParamID(c, "id")
	if !ok {
		return
	}
	content, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get content failed", id, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewContentResponse(content))
}

// Delete handles DELETE /api/content/:id.
func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := platformhandler.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete content failed", id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PageContent handles GET /api/pages/:id/content. It runs behind OptionalUser
// and adds the viewer when one resolved.
func (h *ContentHandler) PageContent(c *gin.Context) {
	id, ok := platformhandler.ParamID(c, "id")
	if !ok {
		return
	}
	view, err := h.uc.PageContent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("render page content failed", "error", err, "page_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := dto.PageContentResponse{
		Page:    dto.PageRef{ID: view.Page.ID, AppID: view.Page.AppID, Name: view.Page.Name},
		Content: view.Content,
	}
	if view.App != nil {
		resp.App = &dto.AppRef{ID: view.App.ID, Name: view.App.Name, URL: view.App.URL}
	}
	if user := jwtmw.MaybeUser(c); user != nil {
		viewer := authdto.NewUserResponse(user)
		resp.Viewer = &viewer
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContentHandler) fail(c *gin.Context, msg string, id uint, err error) {
	if errors.Is(err, usecase.ErrContentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	slog.Error(msg, "error", err, "content_id", id)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
