package seo

import (
	"time"

	"github.com/ashworthrenovations/ashworth-api/internal/content"
	"github.com/ashworthrenovations/ashworth-api/internal/models"
)

// SitemapInput carries the page tables the sitemap is composed from.
// StaticPages must lead with the homepage entry.
type SitemapInput struct {
	StaticPages          []content.Page
	ServicePages         []content.Page
	LocationsIndex       content.Page
	LocationLastModified time.Time
	Locations            []models.Location
}

// BuildSitemap composes the full entry list in fixed order: homepage and the
// static pages, then service detail pages, the locations index, and one entry
// per location in input order. Duplicate URLs are dropped, keeping the first
// occurrence, so pathological location data can never emit the same URL twice.
func BuildSitemap(baseURL string, in SitemapInput) []models.SitemapEntry {
	entries := make([]models.SitemapEntry, 0,
		len(in.StaticPages)+len(in.ServicePages)+1+len(in.Locations))
	seen := make(map[string]bool)

	add := func(url string, lastMod time.Time, freq models.ChangeFrequency, priority float64) {
		if seen[url] {
			return
		}
		seen[url] = true
		entries = append(entries, models.SitemapEntry{
			URL:             url,
			LastModified:    lastMod,
			ChangeFrequency: freq,
			Priority:        priority,
		})
	}
	addPage := func(p content.Page) {
		add(CanonicalURL(baseURL, p.Path), p.LastModified, p.ChangeFrequency, p.Priority)
	}

	for _, p := range in.StaticPages {
		addPage(p)
	}
	for _, p := range in.ServicePages {
		addPage(p)
	}
	addPage(in.LocationsIndex)

	for _, loc := range in.Locations {
		add(
			CanonicalURL(baseURL, "/locations/"+loc.Slug),
			in.LocationLastModified,
			models.FreqMonthly,
			0.8,
		)
	}
	return entries
}
