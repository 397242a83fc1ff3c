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

// NoteHandler handles admin-facing note management.
type NoteHandler struct {
	contentService *service.ContentService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(contentService *service.ContentService) *NoteHandler {
	return &NoteHandler{contentService: contentService}
}

// ListNotes godoc
// GET /api/v1/admin/notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.contentService.ListNotes(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notes": notes})
}

// CreateNoteRequest is the payload for creating or updating a note.
type CreateNoteRequest struct {
	MonthID     uuid.UUID `json:"month_id" binding:"required"`
	Title       string    `json:"title" binding:"required,min=1,max=200"`
	Description string    `json:"description"`
	DriveURL    string    `json:"drive_url" binding:"required,url"`
	IsFree      bool      `json:"is_free"`
	Price       float64   `json:"price" binding:"min=0"`
}

// CreateNote godoc
// POST /api/v1/admin/notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req CreateNoteRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	note := &model.Note{
		MonthID:     req.MonthID,
		Title:       req.Title,
		Description: req.Description,
		DriveURL:    req.DriveURL,
		IsFree:      req.IsFree,
		Price:       req.Price,
	}

	if err := h.contentService.CreateNote(c.Request.Context(), note); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Unknown month_id
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"note": note})
}

// UpdateNote godoc
// PUT /api/v1/admin/notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateNoteRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	note := &model.Note{
		ID:          id,
		MonthID:     req.MonthID,
		Title:       req.Title,
		Description: req.Description,
		DriveURL:    req.DriveURL,
		IsFree:      req.IsFree,
		Price:       req.Price,
	}

	if err := h.contentService.UpdateNote(c.Request.Context(), note); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"note": note})
}

// DeleteNote godoc
// DELETE /api/v1/admin/notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.contentService.DeleteNote(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "note deleted successfully"})
}
