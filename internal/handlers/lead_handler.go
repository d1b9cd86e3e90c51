package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
	"github.com/ashworthrenovations/ashworth-api/internal/services"
	"github.com/ashworthrenovations/ashworth-api/pkg/logger"
)

// maxPhotoCount bounds how many photo parts one submission may carry.
// Anything past this is silently ignored rather than rejected.
const maxPhotoCount = 10

type LeadHandler struct {
	service services.LeadServiceInterface
}

func NewLeadHandler(service services.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{service: service}
}

// SubmitLead accepts the multipart lead form: fields service, postcode,
// name, phone, email, an optional recaptchaToken, and photo parts keyed
// photo-0..photo-N.
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid multipart form", err)
		return
	}

	submission := &models.LeadSubmission{
		Service:        formValue(form.Value, "service"),
		Postcode:       formValue(form.Value, "postcode"),
		Name:           formValue(form.Value, "name"),
		Phone:          formValue(form.Value, "phone"),
		Email:          formValue(form.Value, "email"),
		RecaptchaToken: formValue(form.Value, "recaptchaToken"),
	}

	photos, err := readPhotos(form)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read photo attachment", err)
		return
	}
	submission.Photos = photos

	result := h.service.SubmitLead(c.Request.Context(), submission)

	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

func formValue(values map[string][]string, key string) string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

// readPhotos collects the photo-N file parts in index order, stopping at the
// first missing index.
func readPhotos(form *multipart.Form) ([]models.PhotoAttachment, error) {
	var photos []models.PhotoAttachment
	for i := 0; i < maxPhotoCount; i++ {
		headers, ok := form.File[fmt.Sprintf("photo-%d", i)]
		if !ok || len(headers) == 0 {
			break
		}
		header := headers[0]

		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", header.Filename, err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", header.Filename, err)
		}

		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = sniffMimeType(header.Filename)
		}

		photos = append(photos, models.PhotoAttachment{
			Name:      header.Filename,
			MimeType:  mimeType,
			SizeBytes: header.Size,
			Data:      data,
		})
	}
	if len(photos) > 0 {
		logger.Debug("Lead submission carries photos", zap.Int("count", len(photos)))
	}
	return photos, nil
}

func sniffMimeType(filename string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".png"):
		return "image/png"
	case strings.HasSuffix(strings.ToLower(filename), ".webp"):
		return "image/webp"
	case strings.HasSuffix(strings.ToLower(filename), ".jpg"),
		strings.HasSuffix(strings.ToLower(filename), ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
