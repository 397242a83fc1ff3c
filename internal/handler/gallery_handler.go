package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alictclasses/alict-backend/internal/model"
	"github.com/alictclasses/alict-backend/internal/response"
	"github.com/alictclasses/alict-backend/internal/service"
	"github.com/alictclasses/alict-backend/internal/validator"
)

// GalleryHandler handles the gallery section: public listing and admin CRUD.
type GalleryHandler struct {
	showcaseService *service.ShowcaseService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(showcaseService *service.ShowcaseService) *GalleryHandler {
	return &GalleryHandler{showcaseService: showcaseService}
}

// ListGallery godoc
// GET /api/v1/public/gallery
// GET /api/v1/admin/gallery
func (h *GalleryHandler) ListGallery(c *gin.Context) {
	items, err := h.showcaseService.ListGallery(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"gallery": items})
}

// CreateGalleryItemRequest is the payload for creating or updating a gallery item.
type CreateGalleryItemRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Description *string `json:"description"`
	ImageURL    string  `json:"image_url" binding:"required,url"`
	Category    string  `json:"category" binding:"required,min=1,max=50"`
	OrderIndex  int     `json:"order_index" binding:"min=0"`
}

// CreateGalleryItem godoc
// POST /api/v1/admin/gallery
func (h *GalleryHandler) CreateGalleryItem(c *gin.Context) {
	var req CreateGalleryItemRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	item := &model.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		OrderIndex:  req.OrderIndex,
	}

	if err := h.showcaseService.CreateGalleryItem(c.Request.Context(), item); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"item": item})
}

// UpdateGalleryItem godoc
// PUT /api/v1/admin/gallery/:id
func (h *GalleryHandler) UpdateGalleryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateGalleryItemRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	item := &model.GalleryItem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		OrderIndex:  req.OrderIndex,
	}

	if err := h.showcaseService.UpdateGalleryItem(c.Request.Context(), item); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"item": item})
}

// DeleteGalleryItem godoc
// DELETE /api/v1/admin/gallery/:id
func (h *GalleryHandler) DeleteGalleryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.showcaseService.DeleteGalleryItem(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "gallery item deleted successfully"})
}
