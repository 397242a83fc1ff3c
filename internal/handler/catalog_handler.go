package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/alictclasses/alict-backend/internal/response"
	"github.com/alictclasses/alict-backend/internal/service"
	"github.com/alictclasses/alict-backend/internal/whatsapp"
)

// Fallbacks when the corresponding site settings have not been configured yet.
const (
	defaultWhatsAppNumber = "+94771234567"
	defaultBankDetails    = "Bank: Commercial Bank\nAccount: 1234567890\nName: Saman Priyakara\n\nPlease send payment receipt to WhatsApp after payment."
)

// CatalogHandler serves the public class catalog and purchase affordances.
type CatalogHandler struct {
	catalogService *service.CatalogService
	classService   *service.ClassService
	settingService *service.SettingService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(
	catalogService *service.CatalogService,
	classService *service.ClassService,
	settingService *service.SettingService,
) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		classService:   classService,
		settingService: settingService,
	}
}

// GetCatalog godoc
// GET /api/v1/public/catalog/:slug
// Returns the aggregated class → months → {videos, notes} tree. A class with
// no months yields an empty month list, not a 404.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.catalogService.LoadCatalog(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": catalog})
}

// ListPublicClasses godoc
// GET /api/v1/public/classes
func (h *CatalogHandler) ListPublicClasses(c *gin.Context) {
	classes, err := h.classService.ListActive(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// GetPurchaseLink godoc
// GET /api/v1/public/classes/:slug/purchase-link
// Builds the WhatsApp deep link a visitor opens to confirm a bank-transfer
// purchase of the class content.
func (h *CatalogHandler) GetPurchaseLink(c *gin.Context) {
	class, err := h.classService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	number := h.settingOrDefault(c, "whatsapp_number", defaultWhatsAppNumber)
	bankDetails := h.settingOrDefault(c, "bank_details", defaultBankDetails)

	response.Success(c, http.StatusOK, gin.H{
		"link": whatsapp.PurchaseLink(number, class.Name, bankDetails),
	})
}

// GetInquiryLink godoc
// GET /api/v1/public/inquiry-link
func (h *CatalogHandler) GetInquiryLink(c *gin.Context) {
	number := h.settingOrDefault(c, "whatsapp_number", defaultWhatsAppNumber)

	response.Success(c, http.StatusOK, gin.H{
		"link": whatsapp.InquiryLink(number),
	})
}

func (h *CatalogHandler) settingOrDefault(c *gin.Context, key, fallback string) string {
	value, err := h.settingService.GetSettingByKey(c.Request.Context(), key)
	if err != nil || value == "" {
		return fallback
	}
	return value
}
