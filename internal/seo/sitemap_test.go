package seo_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashworthrenovations/ashworth-api/internal/content"
	"github.com/ashworthrenovations/ashworth-api/internal/models"
	"github.com/ashworthrenovations/ashworth-api/internal/seo"
)

func sitemapInput(locations []models.Location) seo.SitemapInput {
	return seo.SitemapInput{
		StaticPages:          content.StaticPages(),
		ServicePages:         content.ServicePages(),
		LocationsIndex:       content.LocationsIndexPage(),
		LocationLastModified: content.LocationPageDate(),
		Locations:            locations,
	}
}

func generateLocations(n int) []models.Location {
	locs := make([]models.Location, n)
	for i := range locs {
		locs[i] = models.Location{
			Slug: fmt.Sprintf("area-%03d", i),
			Name: fmt.Sprintf("Area %d", i),
		}
	}
	return locs
}

func TestBuildSitemapComposition(t *testing.T) {
	locs := content.Locations()
	entries := seo.BuildSitemap(testBase, sitemapInput(locs))

	require.NotEmpty(t, entries)
	assert.Equal(t, testBase+"/", entries[0].URL, "homepage must lead")
	assert.Equal(t, 1.0, entries[0].Priority)
	assert.Equal(t, models.FreqWeekly, entries[0].ChangeFrequency)

	// tail is one entry per location in input order
	tail := entries[len(entries)-len(locs):]
	for i, loc := range locs {
		assert.Equal(t, testBase+"/locations/"+loc.Slug, tail[i].URL)
		assert.Equal(t, models.FreqMonthly, tail[i].ChangeFrequency)
		assert.Equal(t, 0.8, tail[i].Priority)
	}
}

func TestBuildSitemapScalesWithLocations(t *testing.T) {
	for _, n := range []int{1, 2, 7, 25, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			locs := generateLocations(n)
			entries := seo.BuildSitemap(testBase, sitemapInput(locs))

			locationEntries := 0
			for _, e := range entries {
				if strings.HasPrefix(e.URL, testBase+"/locations/") {
					locationEntries++
				}
			}
			assert.Equal(t, n, locationEntries)
			assert.Equal(t, testBase+"/", entries[0].URL)
		})
	}
}

func TestBuildSitemapZeroLocations(t *testing.T) {
	entries := seo.BuildSitemap(testBase, sitemapInput(nil))
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.URL, testBase+"/locations/"), "unexpected %s", e.URL)
	}
	// the locations index itself still appears
	found := false
	for _, e := range entries {
		if e.URL == testBase+"/locations" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildSitemapEntryInvariants(t *testing.T) {
	entries := seo.BuildSitemap(testBase, sitemapInput(content.Locations()))
	now := time.Now()
	seen := make(map[string]bool)

	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.URL, "https://"), "non-https URL %s", e.URL)
		assert.True(t, strings.HasPrefix(e.URL, testBase), "foreign domain %s", e.URL)
		assert.False(t, seen[e.URL], "duplicate URL %s", e.URL)
		seen[e.URL] = true

		assert.GreaterOrEqual(t, e.Priority, 0.0)
		assert.LessOrEqual(t, e.Priority, 1.0)
		assert.True(t, models.ValidChangeFrequencies[e.ChangeFrequency])
		assert.False(t, e.LastModified.IsZero())
		assert.False(t, e.LastModified.After(now))
	}
}

func TestBuildSitemapDeduplicatesPathologicalLocations(t *testing.T) {
	locs := []models.Location{
		{Slug: "streatham", Name: "Streatham"},
		{Slug: "streatham", Name: "Streatham Again"},
		{Slug: "tooting", Name: "Tooting"},
	}
	entries := seo.BuildSitemap(testBase, sitemapInput(locs))

	count := 0
	for _, e := range entries {
		if e.URL == testBase+"/locations/streatham" {
			count++
		}
	}
	assert.Equal(t, 1, count, "duplicate slugs must collapse to one entry")
}
