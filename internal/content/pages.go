package content

import (
	"time"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
)

// Page is one static entry in the sitemap table. Path is site-relative
// ("" means the homepage) and is joined onto the configured base URL.
type Page struct {
	Path            string
	LastModified    time.Time
	ChangeFrequency models.ChangeFrequency
	Priority        float64
}

// Content release dates. Bumped when the corresponding pages are edited.
var (
	siteLaunch     = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	galleryRefresh = time.Date(2026, time.May, 18, 0, 0, 0, 0, time.UTC)
	reviewsRefresh = time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC)
)

// staticPages are the fixed pages that precede service detail pages in the
// sitemap. Order here is emission order.
var staticPages = []Page{
	{Path: "", LastModified: reviewsRefresh, ChangeFrequency: models.FreqWeekly, Priority: 1.0},
	{Path: "/about", LastModified: siteLaunch, ChangeFrequency: models.FreqMonthly, Priority: 0.7},
	{Path: "/contact", LastModified: siteLaunch, ChangeFrequency: models.FreqMonthly, Priority: 0.8},
	{Path: "/gallery", LastModified: galleryRefresh, ChangeFrequency: models.FreqWeekly, Priority: 0.9},
	{Path: "/reviews", LastModified: reviewsRefresh, ChangeFrequency: models.FreqWeekly, Priority: 0.9},
	{Path: "/services", LastModified: siteLaunch, ChangeFrequency: models.FreqMonthly, Priority: 0.8},
	{Path: "/blog", LastModified: reviewsRefresh, ChangeFrequency: models.FreqWeekly, Priority: 0.6},
}

// servicePages are the service detail pages, emitted after the static set.
var servicePages = []Page{
	{Path: "/services/bathroom-renovation", LastModified: siteLaunch, ChangeFrequency: models.FreqMonthly, Priority: 0.8},
	{Path: "/services/house-extensions", LastModified: siteLaunch, ChangeFrequency: models.FreqMonthly, Priority: 0.8},
}

// locationsIndexPage sits between the service pages and the per-location set.
var locationsIndexPage = Page{
	Path: "/locations", LastModified: siteLaunch, ChangeFrequency: models.FreqMonthly, Priority: 0.8,
}

// StaticPages returns a copy of the fixed page table in sitemap order
func StaticPages() []Page {
	out := make([]Page, len(staticPages))
	copy(out, staticPages)
	return out
}

// ServicePages returns a copy of the service detail page table
func ServicePages() []Page {
	out := make([]Page, len(servicePages))
	copy(out, servicePages)
	return out
}

// LocationsIndexPage returns the locations index entry
func LocationsIndexPage() Page {
	return locationsIndexPage
}

// LocationPageDate is the last-modified stamp used for per-location pages
func LocationPageDate() time.Time {
	return siteLaunch
}
