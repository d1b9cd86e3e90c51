package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
	"github.com/ashworthrenovations/ashworth-api/internal/services"
)

// AdminHandler serves the token-protected internal surface
type AdminHandler struct {
	leadService services.LeadServiceInterface
}

func NewAdminHandler(leadService services.LeadServiceInterface) *AdminHandler {
	return &AdminHandler{leadService: leadService}
}

// ListLeads returns stored leads newest first.
// Query params: limit (default 50, max 200), offset, and optional postcode
// and service filters validated by the custom binding rules.
func (h *AdminHandler) ListLeads(c *gin.Context) {
	var query models.LeadListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	leads, err := h.leadService.ListLeads(c.Request.Context(), query)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list leads", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"count": len(leads),
	})
}
