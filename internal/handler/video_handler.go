package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/alictclasses/alict-backend/internal/model"
	"github.com/alictclasses/alict-backend/internal/response"
	"github.com/alictclasses/alict-backend/internal/service"
	"github.com/alictclasses/alict-backend/internal/validator"
)

// VideoHandler handles admin-facing video management.
type VideoHandler struct {
	contentService *service.ContentService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(contentService *service.ContentService) *VideoHandler {
	return &VideoHandler{contentService: contentService}
}

// ListVideos godoc
// GET /api/v1/admin/videos
// Lists all videos with month and class names resolved inline.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.contentService.ListVideos(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"videos": videos})
}

// CreateVideoRequest is the payload for creating or updating a video.
type CreateVideoRequest struct {
	MonthID      uuid.UUID `json:"month_id" binding:"required"`
	Title        string    `json:"title" binding:"required,min=1,max=200"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url" binding:"required,url"`
	ThumbnailURL string    `json:"thumbnail_url" binding:"omitempty,url"`
	IsFree       bool      `json:"is_free"`
	Price        float64   `json:"price" binding:"min=0"`
	OrderIndex   int       `json:"order_index" binding:"min=0"`
}

// CreateVideo godoc
// POST /api/v1/admin/videos
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	video := &model.Video{
		MonthID:      req.MonthID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		IsFree:       req.IsFree,
		Price:        req.Price,
		OrderIndex:   req.OrderIndex,
	}

	if err := h.contentService.CreateVideo(c.Request.Context(), video); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Unknown month_id
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"video": video})
}

// UpdateVideo godoc
// PUT /api/v1/admin/videos/:id
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateVideoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	video := &model.Video{
		ID:           id,
		MonthID:      req.MonthID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		IsFree:       req.IsFree,
		Price:        req.Price,
		OrderIndex:   req.OrderIndex,
	}

	if err := h.contentService.UpdateVideo(c.Request.Context(), video); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"video": video})
}

// DeleteVideo godoc
// DELETE /api/v1/admin/videos/:id
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.contentService.DeleteVideo(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "video deleted successfully"})
}
