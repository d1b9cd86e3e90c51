package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashworthrenovations/ashworth-api/internal/services"
	apperrors "github.com/ashworthrenovations/ashworth-api/pkg/errors"
)

// SeoHandler serves the artifacts the frontend consumes at build and render
// time: the sitemap entry list, service-area pages with their JSON-LD,
// reviews and the gallery.
type SeoHandler struct {
	service services.SeoServiceInterface
}

func NewSeoHandler(service services.SeoServiceInterface) *SeoHandler {
	return &SeoHandler{service: service}
}

// GetSitemap returns the full sitemap entry list
func (h *SeoHandler) GetSitemap(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"entries": h.service.GetSitemap(c.Request.Context()),
	})
}

// GetLocations returns the service-area table
func (h *SeoHandler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"locations": h.service.GetLocations(c.Request.Context()),
	})
}

// GetLocation returns one service area with canonical URL and schemas
func (h *SeoHandler) GetLocation(c *gin.Context) {
	slug := c.Param("slug")

	page, err := h.service.GetLocationPage(c.Request.Context(), slug)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Location not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load location", err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetReviews returns the filtered review listing.
// Query params: location (outward postcode or "all"), service (category or
// "all"), sort (newest|oldest|highest).
func (h *SeoHandler) GetReviews(c *gin.Context) {
	location := c.DefaultQuery("location", "all")
	service := c.DefaultQuery("service", "all")
	sort := c.DefaultQuery("sort", "newest")

	c.JSON(http.StatusOK, h.service.GetReviews(c.Request.Context(), location, service, sort))
}

// GetGallery returns the gallery listing, optionally filtered by category
func (h *SeoHandler) GetGallery(c *gin.Context) {
	category := c.DefaultQuery("category", "all")

	c.JSON(http.StatusOK, h.service.GetGallery(c.Request.Context(), category))
}
