package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ashworthrenovations/ashworth-api/config"
	"github.com/ashworthrenovations/ashworth-api/internal/models"
	"github.com/ashworthrenovations/ashworth-api/internal/repository"
	"github.com/ashworthrenovations/ashworth-api/internal/validation"
	"github.com/ashworthrenovations/ashworth-api/pkg/email"
	"github.com/ashworthrenovations/ashworth-api/pkg/httpclient"
	"github.com/ashworthrenovations/ashworth-api/pkg/logger"
	"github.com/ashworthrenovations/ashworth-api/pkg/metrics"
	"github.com/ashworthrenovations/ashworth-api/pkg/recaptcha"
	"github.com/ashworthrenovations/ashworth-api/pkg/storage"
	"github.com/ashworthrenovations/ashworth-api/pkg/trigger"
)

// LeadService orchestrates lead form submissions: validation in fixed order,
// sanitization, persistence, best-effort photo upload, and notification.
type LeadService struct {
	leadRepo          repository.LeadRepositoryInterface
	emailSender       email.Sender
	storageClient     storage.ClientInterface
	eventSink         EventSink
	config            *config.Config
	httpClient        httpclient.Client
	recaptchaVerifier *recaptcha.Verifier
}

// NewLeadService creates a new lead service instance
func NewLeadService(
	leadRepo repository.LeadRepositoryInterface,
	emailSender email.Sender,
	storageClient storage.ClientInterface,
	eventSink EventSink,
	cfg *config.Config,
	httpClient httpclient.Client,
) *LeadService {
	if eventSink == nil {
		eventSink = NoopEventSink{}
	}
	return &LeadService{
		leadRepo:          leadRepo,
		emailSender:       emailSender,
		storageClient:     storageClient,
		eventSink:         eventSink,
		config:            cfg,
		httpClient:        httpClient,
		recaptchaVerifier: recaptcha.NewVerifier(cfg.ReCAPTCHA.SecretKey, httpClient),
	}
}

// SubmitLead validates and processes one lead submission. Validation failures
// short-circuit in fixed field order and are never retried. Photo problems
// are advisory: they surface as warnings and never fail the submission.
func (s *LeadService) SubmitLead(ctx context.Context, submission *models.LeadSubmission) *models.SubmissionResult {
	start := time.Now()
	defer func() {
		metrics.LeadSubmissionDuration.Observe(metrics.MeasureDuration(start))
	}()

	if s.recaptchaVerifier.Enabled() {
		if err := s.recaptchaVerifier.Verify(submission.RecaptchaToken); err != nil {
			metrics.LeadSubmissions.WithLabelValues("captcha_failed").Inc()
			logger.Warn("ReCAPTCHA verification failed", zap.Error(err))
			return &models.SubmissionResult{
				Success: false,
				Error:   "Captcha verification failed",
			}
		}
	}

	if msg := validateSubmission(submission); msg != "" {
		metrics.LeadSubmissions.WithLabelValues("validation_failed").Inc()
		return &models.SubmissionResult{Success: false, Error: msg}
	}

	// non-blocking attachment checks
	var warnings []string
	if len(submission.Photos) > 0 {
		if result := validation.ValidatePhotos(submission.Photos); !result.Valid {
			warnings = result.Errors
			logger.Warn("Lead photos failed validation",
				zap.Int("photo_count", len(submission.Photos)),
				zap.Strings("problems", warnings))
		}
	}

	lead := &models.Lead{
		Service:  validation.SanitizeText(submission.Service),
		Postcode: validation.SanitizeText(submission.Postcode),
		Name:     validation.SanitizeText(submission.Name),
		Phone:    validation.SanitizeText(submission.Phone),
		Email:    validation.SanitizeText(submission.Email),
	}

	leadID, err := s.leadRepo.Create(ctx, lead)
	if err != nil {
		metrics.LeadSubmissions.WithLabelValues("error").Inc()
		logger.Error("Failed to save lead", zap.Error(err))
		return &models.SubmissionResult{
			Success: false,
			Error:   "Failed to save lead",
		}
	}
	lead.ID = leadID

	photoURLs := s.uploadPhotos(ctx, leadID, submission.Photos, &warnings)
	lead.PhotoURLs = photoURLs

	// transmission failures are surfaced to the caller and never retried
	// here: resubmission is the user's recovery path
	if err := s.emailSender.Send(ctx, s.buildNotification(lead)); err != nil {
		metrics.LeadSubmissions.WithLabelValues("transmission_failed").Inc()
		logger.Error("Failed to send lead notification",
			zap.String("lead_id", leadID), zap.Error(err))
		return &models.SubmissionResult{
			Success:       false,
			LeadID:        leadID,
			Error:         err.Error(),
			PhotoWarnings: warnings,
		}
	}

	trigger.CallAsync(s.config.EventTriggers.LeadCreatedTriggerURL, leadID, s.httpClient)
	s.eventSink.RecordEvent(ctx, "lead_submitted", map[string]string{
		"service":  lead.Service,
		"postcode": lead.Postcode,
	})

	metrics.LeadSubmissions.WithLabelValues("success").Inc()
	logger.Info("Lead submitted",
		zap.String("lead_id", leadID),
		zap.String("service", lead.Service),
		zap.Int("photos", len(photoURLs)))

	return &models.SubmissionResult{
		Success:       true,
		LeadID:        leadID,
		PhotoWarnings: warnings,
	}
}

// validateSubmission applies the required-field rules in fixed order and
// returns the first failure message, or "" when all five fields pass.
func validateSubmission(sub *models.LeadSubmission) string {
	if !validation.ValidService(sub.Service) {
		return fmt.Sprintf("Invalid service: %s", sub.Service)
	}
	if !validation.ValidPostcode(sub.Postcode) {
		return "Invalid postcode format"
	}
	if !validation.ValidName(sub.Name) {
		return "Name is required"
	}
	if !validation.ValidPhone(sub.Phone) {
		return "Invalid phone number format"
	}
	if !validation.ValidEmail(sub.Email) {
		return "Invalid email format"
	}
	return ""
}

// uploadPhotos stores valid attachments and records the rest as warnings.
// Uploads are best-effort; a storage failure never fails the submission.
func (s *LeadService) uploadPhotos(ctx context.Context, leadID string, photos []models.PhotoAttachment, warnings *[]string) []string {
	if s.storageClient == nil || len(photos) == 0 {
		return nil
	}

	var urls []string
	for _, photo := range photos {
		if result := validation.ValidatePhotos([]models.PhotoAttachment{photo}); !result.Valid {
			metrics.LeadPhotoUploads.WithLabelValues("skipped").Inc()
			continue
		}

		key := s.storageClient.GenerateKey(leadID, photo.Name)
		url, err := s.storageClient.UploadPhoto(ctx, photo.Data, key, photo.MimeType)
		if err != nil {
			metrics.LeadPhotoUploads.WithLabelValues("error").Inc()
			logger.Error("Failed to upload lead photo",
				zap.String("lead_id", leadID),
				zap.String("file", photo.Name),
				zap.Error(err))
			*warnings = append(*warnings, fmt.Sprintf("%s: Upload failed", photo.Name))
			continue
		}

		metrics.LeadPhotoUploads.WithLabelValues("success").Inc()
		if err := s.leadRepo.AttachPhotoURL(ctx, leadID, url); err != nil {
			logger.Error("Failed to attach photo URL to lead",
				zap.String("lead_id", leadID), zap.Error(err))
		}
		urls = append(urls, url)
	}
	return urls
}

func (s *LeadService) buildNotification(lead *models.Lead) email.Message {
	body := fmt.Sprintf(
		"New lead received\n\nService: %s\nPostcode: %s\nName: %s\nPhone: %s\nEmail: %s\nPhotos: %d\n",
		lead.Service, lead.Postcode, lead.Name, lead.Phone, lead.Email, len(lead.PhotoURLs))
	for _, url := range lead.PhotoURLs {
		body += fmt.Sprintf("  %s\n", url)
	}
	return email.Message{
		To:      s.config.SendGrid.LeadsEmail,
		ToName:  s.config.Site.BusinessName,
		Subject: fmt.Sprintf("New %s lead - %s", lead.Service, lead.Postcode),
		Body:    body,
	}
}

// ListLeads returns stored leads for the admin surface
func (s *LeadService) ListLeads(ctx context.Context, q models.LeadListQuery) ([]*models.Lead, error) {
	return s.leadRepo.List(ctx, q)
}
