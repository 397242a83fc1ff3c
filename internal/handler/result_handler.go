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

// ResultHandler handles the results section: public listing and admin CRUD.
type ResultHandler struct {
	showcaseService *service.ShowcaseService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(showcaseService *service.ShowcaseService) *ResultHandler {
	return &ResultHandler{showcaseService: showcaseService}
}

// ListResults godoc
// GET /api/v1/public/results
// GET /api/v1/admin/results
func (h *ResultHandler) ListResults(c *gin.Context) {
	results, err := h.showcaseService.ListResults(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// CreateResultRequest is the payload for creating or updating a result.
type CreateResultRequest struct {
	StudentName string  `json:"student_name" binding:"required,min=1,max=100"`
	Achievement string  `json:"achievement" binding:"required,min=1,max=200"`
	Year        int     `json:"year" binding:"required,min=2000"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
	Testimonial *string `json:"testimonial"`
	OrderIndex  int     `json:"order_index" binding:"min=0"`
}

// CreateResult godoc
// POST /api/v1/admin/results
func (h *ResultHandler) CreateResult(c *gin.Context) {
	var req CreateResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result := &model.Result{
		StudentName: req.StudentName,
		Achievement: req.Achievement,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
		Testimonial: req.Testimonial,
		OrderIndex:  req.OrderIndex,
	}

	if err := h.showcaseService.CreateResult(c.Request.Context(), result); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"result": result})
}

// UpdateResult godoc
// PUT /api/v1/admin/results/:id
func (h *ResultHandler) UpdateResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result := &model.Result{
		ID:          id,
		StudentName: req.StudentName,
		Achievement: req.Achievement,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
		Testimonial: req.Testimonial,
		OrderIndex:  req.OrderIndex,
	}

	if err := h.showcaseService.UpdateResult(c.Request.Context(), result); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// DeleteResult godoc
// DELETE /api/v1/admin/results/:id
func (h *ResultHandler) DeleteResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.showcaseService.DeleteResult(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "result deleted successfully"})
}
