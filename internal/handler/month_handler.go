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

// MonthHandler handles admin-facing month management.
type MonthHandler struct {
	contentService *service.ContentService
}

// NewMonthHandler creates a new MonthHandler.
func NewMonthHandler(contentService *service.ContentService) *MonthHandler {
	return &MonthHandler{contentService: contentService}
}

// ListMonths godoc
// GET /api/v1/admin/months
// Lists all months with their owning class names resolved.
func (h *MonthHandler) ListMonths(c *gin.Context) {
	months, err := h.contentService.ListMonths(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"months": months})
}

// CreateMonthRequest is the payload for creating or updating a month.
type CreateMonthRequest struct {
	ClassID     uuid.UUID `json:"class_id" binding:"required"`
	Name        string    `json:"name" binding:"required,min=1,max=50"`
	MonthNumber int       `json:"month_number" binding:"required,min=1"`
	Year        int       `json:"year" binding:"required,min=2000"`
}

// CreateMonth godoc
// POST /api/v1/admin/months
func (h *MonthHandler) CreateMonth(c *gin.Context) {
	var req CreateMonthRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	month := &model.Month{
		ClassID:     req.ClassID,
		Name:        req.Name,
		MonthNumber: req.MonthNumber,
		Year:        req.Year,
	}

	if err := h.contentService.CreateMonth(c.Request.Context(), month); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Unknown class_id
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"month": month})
}

// UpdateMonth godoc
// PUT /api/v1/admin/months/:id
func (h *MonthHandler) UpdateMonth(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateMonthRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	month := &model.Month{
		ID:          id,
		ClassID:     req.ClassID,
		Name:        req.Name,
		MonthNumber: req.MonthNumber,
		Year:        req.Year,
	}

	if err := h.contentService.UpdateMonth(c.Request.Context(), month); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"month": month})
}

// DeleteMonth godoc
// DELETE /api/v1/admin/months/:id
func (h *MonthHandler) DeleteMonth(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.contentService.DeleteMonth(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "month deleted successfully"})
}
