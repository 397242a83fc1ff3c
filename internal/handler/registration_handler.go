package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alictclasses/alict-backend/internal/model"
	"github.com/alictclasses/alict-backend/internal/response"
	"github.com/alictclasses/alict-backend/internal/service"
	"github.com/alictclasses/alict-backend/internal/validator"
)

// RegistrationHandler handles the public registration form and the admin
// registrations panel including CSV export.
type RegistrationHandler struct {
	regService *service.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(regService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regService: regService}
}

// SubmitRegistrationRequest is the public registration form payload.
type SubmitRegistrationRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Class       string `json:"class" binding:"required,min=1,max=100"`
	StudentID   string `json:"student_id" binding:"required,min=1,max=50"`
	PhoneNumber string `json:"phone_number" binding:"required,slphone"`
	School      string `json:"school" binding:"required,min=1,max=200"`
}

// SubmitRegistration godoc
// POST /api/v1/public/register
func (h *RegistrationHandler) SubmitRegistration(c *gin.Context) {
	var req SubmitRegistrationRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	reg := &model.StudentRegistration{
		Name:        req.Name,
		Class:       req.Class,
		StudentID:   req.StudentID,
		PhoneNumber: req.PhoneNumber,
		School:      req.School,
	}

	if err := h.regService.Create(c.Request.Context(), reg); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"registration": reg})
}

// ListRegistrations godoc
// GET /api/v1/admin/registrations
func (h *RegistrationHandler) ListRegistrations(c *gin.Context) {
	regs, err := h.regService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"registrations": regs})
}

// ExportRegistrations godoc
// GET /api/v1/admin/registrations/export
// Streams all registrations as a dated CSV attachment.
func (h *RegistrationHandler) ExportRegistrations(c *gin.Context) {
	regs, err := h.regService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	filename := h.regService.ExportFilename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(h.regService.ExportCSV(regs)))
}

// DeleteRegistration godoc
// DELETE /api/v1/admin/registrations/:id
func (h *RegistrationHandler) DeleteRegistration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.regService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "registration deleted successfully"})
}
