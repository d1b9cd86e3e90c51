package services

import (
	"context"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
)

// LeadServiceInterface defines the interface for lead submission operations
type LeadServiceInterface interface {
	SubmitLead(ctx context.Context, submission *models.LeadSubmission) *models.SubmissionResult
	ListLeads(ctx context.Context, q models.LeadListQuery) ([]*models.Lead, error)
}

// SeoServiceInterface defines the interface for SEO artifact operations
type SeoServiceInterface interface {
	GetSitemap(ctx context.Context) []models.SitemapEntry
	GetLocations(ctx context.Context) []models.Location
	GetLocationPage(ctx context.Context, slug string) (*LocationPage, error)
	GetReviews(ctx context.Context, location, service, sort string) *ReviewsPage
	GetGallery(ctx context.Context, category string) *GalleryPage
}

// EventSink records analytics events emitted on lead submission. Injected so
// tests can substitute a recording fake; production wires a no-op or an
// HTTP forwarder depending on configuration.
type EventSink interface {
	RecordEvent(ctx context.Context, name string, properties map[string]string)
}

// NoopEventSink discards all events
type NoopEventSink struct{}

// RecordEvent implements EventSink
func (NoopEventSink) RecordEvent(ctx context.Context, name string, properties map[string]string) {}
