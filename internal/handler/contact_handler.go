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

// ContactHandler handles the public contact form and the admin message inbox.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SubmitContactRequest is the public contact form payload.
type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Phone   string `json:"phone" binding:"required,slphone"`
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

// SubmitContact godoc
// POST /api/v1/public/contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req SubmitContactRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.contactService.Create(c.Request.Context(), msg); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "your message has been sent successfully"})
}

// ListMessages godoc
// GET /api/v1/admin/messages
func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// MarkMessageRead godoc
// PATCH /api/v1/admin/messages/:id/read
func (h *ContactHandler) MarkMessageRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.contactService.MarkRead(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "message marked as read"})
}

// DeleteMessage godoc
// DELETE /api/v1/admin/messages/:id
func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "message deleted successfully"})
}
