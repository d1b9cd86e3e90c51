package services

import (
	"context"

	"github.com/ashworthrenovations/ashworth-api/config"
	"github.com/ashworthrenovations/ashworth-api/internal/content"
	"github.com/ashworthrenovations/ashworth-api/internal/models"
	"github.com/ashworthrenovations/ashworth-api/internal/seo"
	apperrors "github.com/ashworthrenovations/ashworth-api/pkg/errors"
	"github.com/ashworthrenovations/ashworth-api/pkg/metrics"
	"github.com/ashworthrenovations/ashworth-api/pkg/slug"
)

// LocationPage bundles everything the frontend needs to render one service
// area page: the record, its canonical URL and its JSON-LD objects.
type LocationPage struct {
	Location  models.Location `json:"location"`
	Canonical string          `json:"canonical"`
	Schemas   []any           `json:"schemas"`
}

// ReviewsPage is the filtered, sorted review listing with its JSON-LD
type ReviewsPage struct {
	Reviews   []models.Review        `json:"reviews"`
	Canonical string                 `json:"canonical"`
	Rating    models.AggregateRating `json:"aggregateRating"`
	Schemas   []models.ReviewSchema  `json:"schemas"`
}

// GalleryPage is the gallery listing with its ImageGallery JSON-LD
type GalleryPage struct {
	Images    []models.GalleryImage `json:"images"`
	Canonical string                `json:"canonical"`
	Schema    models.ImageGallery   `json:"schema"`
}

// ArtifactCache is the read side of the warmed SEO cache
type ArtifactCache interface {
	GetSitemap() []models.SitemapEntry
	GetLocationSchemas(slug string) ([]any, bool)
	IsReady() bool
}

// SeoService builds and serves SEO artifacts from the static content tables.
// It doubles as the artifact source behind the warmed cache.
type SeoService struct {
	builder *seo.Builder
	cache   ArtifactCache
	baseURL string
}

// NewSeoService creates a new SEO service instance. The cache is attached
// afterwards via SetCache because the cache wraps this service as its source.
func NewSeoService(cfg *config.Config) *SeoService {
	return &SeoService{
		builder: seo.NewBuilder(cfg.Site.BaseURL, cfg.Site.BusinessName, cfg.Site.BusinessType),
		baseURL: cfg.Site.BaseURL,
	}
}

// SetCache attaches the warmed artifact cache
func (s *SeoService) SetCache(cache ArtifactCache) {
	s.cache = cache
}

// Sitemap builds the full entry list from the content tables.
// Implements cache.ArtifactSource.
func (s *SeoService) Sitemap() []models.SitemapEntry {
	entries := seo.BuildSitemap(s.baseURL, seo.SitemapInput{
		StaticPages:          content.StaticPages(),
		ServicePages:         content.ServicePages(),
		LocationsIndex:       content.LocationsIndexPage(),
		LocationLastModified: content.LocationPageDate(),
		Locations:            content.Locations(),
	})
	metrics.SitemapBuilds.WithLabelValues("success").Inc()
	return entries
}

// LocationSchemas builds the four JSON-LD objects for a location page.
// Implements cache.ArtifactSource.
func (s *SeoService) LocationSchemas(areaSlug string) ([]any, bool) {
	loc, ok := content.LocationBySlug(areaSlug)
	if !ok {
		metrics.SchemaBuilds.WithLabelValues("location", "not_found").Inc()
		return nil, false
	}

	url := seo.CanonicalURL(s.baseURL, "/locations/"+loc.Slug)
	value, count := content.AggregateRating(content.Reviews())
	schemas := s.builder.BuildLocationSchemas(loc, url, s.builder.AggregateRating(value, count))
	metrics.SchemaBuilds.WithLabelValues("location", "success").Inc()
	return schemas, true
}

// GetSitemap serves the sitemap entry list, cached when a cache is attached
func (s *SeoService) GetSitemap(ctx context.Context) []models.SitemapEntry {
	if s.cache != nil {
		return s.cache.GetSitemap()
	}
	return s.Sitemap()
}

// GetLocations returns the full service-area table
func (s *SeoService) GetLocations(ctx context.Context) []models.Location {
	return content.Locations()
}

// GetLocationPage returns one service area with its canonical URL and
// schemas. The slug is normalized first so "Crystal Palace" and
// "crystal-palace" resolve to the same page.
func (s *SeoService) GetLocationPage(ctx context.Context, areaSlug string) (*LocationPage, error) {
	areaSlug = slug.FromAreaName(areaSlug)

	loc, ok := content.LocationBySlug(areaSlug)
	if !ok {
		return nil, apperrors.NotFoundError("location " + areaSlug)
	}

	var schemas []any
	if s.cache != nil {
		schemas, _ = s.cache.GetLocationSchemas(areaSlug)
	}
	if schemas == nil {
		schemas, _ = s.LocationSchemas(areaSlug)
	}

	return &LocationPage{
		Location:  loc,
		Canonical: seo.CanonicalURL(s.baseURL, "/locations/"+areaSlug),
		Schemas:   schemas,
	}, nil
}

// GetReviews returns the filtered, sorted review listing. location is an
// outward postcode or "all"; service is a category name or "all"; sort is
// "newest", "oldest" or "highest".
func (s *SeoService) GetReviews(ctx context.Context, location, service, sort string) *ReviewsPage {
	reviews := content.Reviews()
	if location != "" {
		reviews = content.FilterByLocation(reviews, location)
	}
	if service != "" {
		reviews = content.FilterByService(reviews, service)
	}

	switch sort {
	case "highest":
		reviews = content.SortByRating(reviews)
	case "oldest":
		reviews = content.SortByDate(reviews, "oldest")
	default:
		reviews = content.SortByDate(reviews, "newest")
	}

	value, count := content.AggregateRating(content.Reviews())
	metrics.SchemaBuilds.WithLabelValues("reviews", "success").Inc()
	return &ReviewsPage{
		Reviews:   reviews,
		Canonical: seo.CanonicalURL(s.baseURL, "/reviews"),
		Rating:    s.builder.AggregateRating(value, count),
		Schemas:   s.builder.BuildReviewSchemas(reviews),
	}
}

// GetGallery returns the gallery listing, optionally limited to one category
func (s *SeoService) GetGallery(ctx context.Context, category string) *GalleryPage {
	var images []models.GalleryImage
	if category == "" || category == "all" {
		images = content.Gallery()
	} else {
		images = content.GalleryByCategory(category)
	}

	metrics.SchemaBuilds.WithLabelValues("gallery", "success").Inc()
	return &GalleryPage{
		Images:    images,
		Canonical: seo.CanonicalURL(s.baseURL, "/gallery"),
		Schema:    s.builder.BuildImageGallerySchema("Project gallery", images),
	}
}
