package content_test

import (
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashworthrenovations/ashworth-api/internal/content"
	"github.com/ashworthrenovations/ashworth-api/internal/models"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	srcPattern  = regexp.MustCompile(`^/[a-z0-9/.-]+\.(jpg|jpeg|png|webp)$`)
)

func TestLocationAuthoringRules(t *testing.T) {
	locs := content.Locations()
	require.NotEmpty(t, locs)

	seenSlugs := make(map[string]bool)
	for _, loc := range locs {
		t.Run(loc.Slug, func(t *testing.T) {
			assert.Regexp(t, slugPattern, loc.Slug)
			assert.False(t, seenSlugs[loc.Slug], "duplicate slug")
			seenSlugs[loc.Slug] = true

			assert.NotEmpty(t, loc.Name)
			assert.NotEmpty(t, loc.Postcode)
			assert.NotEmpty(t, loc.Description)
			assert.Contains(t, []models.Zone{
				models.ZoneGold, models.ZoneRenovation,
				models.ZoneVillage, models.ZoneFoundation,
			}, loc.Zone)

			assert.Len(t, loc.LocalStreets, 3, "expected exactly three local streets")
			assert.GreaterOrEqual(t, len(loc.Landmarks), 1)
			assert.LessOrEqual(t, len(loc.Landmarks), 2)
			assert.GreaterOrEqual(t, len(loc.LSIKeywords), 3)
			assert.GreaterOrEqual(t, len(loc.Keywords), 1)

			require.NotEmpty(t, loc.RecentProjects)
			for _, p := range loc.RecentProjects {
				assert.GreaterOrEqual(t, p.Year, 2020)
				assert.LessOrEqual(t, p.Year, time.Now().Year())
				assert.NotEmpty(t, p.Description)
			}

			words := len(strings.Fields(loc.DetailedDescription))
			assert.GreaterOrEqual(t, words, 150, "detailed description too short")
			assert.LessOrEqual(t, words, 200, "detailed description too long")

			assert.NotZero(t, loc.Coordinates.Lat)
			assert.NotZero(t, loc.Coordinates.Lng)
		})
	}
}

func TestLocationBySlug(t *testing.T) {
	loc, ok := content.LocationBySlug("streatham")
	require.True(t, ok)
	assert.Equal(t, "Streatham", loc.Name)
	assert.Equal(t, "SW16", loc.Postcode)

	_, ok = content.LocationBySlug("atlantis")
	assert.False(t, ok)
}

func TestReviewAuthoringRules(t *testing.T) {
	revs := content.Reviews()
	require.NotEmpty(t, revs)

	seenIDs := make(map[string]bool)
	for _, r := range revs {
		assert.False(t, seenIDs[r.ID], "duplicate review id %s", r.ID)
		seenIDs[r.ID] = true

		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 10)
		assert.NotEmpty(t, r.Text)
		assert.NotEmpty(t, r.Author)
		assert.NotEmpty(t, r.Postcode)

		_, err := time.Parse("2006-01-02", r.Date)
		assert.NoError(t, err, "review %s has a malformed date", r.ID)
	}
}

func TestGalleryAuthoringRules(t *testing.T) {
	images := content.Gallery()
	require.NotEmpty(t, images)

	for _, img := range images {
		t.Run(img.ID, func(t *testing.T) {
			assert.Regexp(t, srcPattern, img.Src)
			assert.Equal(t, strings.ToLower(img.Src), img.Src)

			assert.GreaterOrEqual(t, len(img.Alt), 20)
			assert.LessOrEqual(t, len(img.Alt), 150)
			assert.True(t, unicode.IsUpper(rune(img.Alt[0])), "alt text must start uppercase")
			assert.False(t, strings.HasPrefix(strings.ToLower(img.Alt), "image of"))
			assert.False(t, strings.HasPrefix(strings.ToLower(img.Alt), "picture of"))

			// alt text must carry a location or service keyword
			lower := strings.ToLower(img.Alt)
			hasKeyword := false
			for _, kw := range []string{
				"bathroom", "extension", "shower", "bath", "tiling",
				"streatham", "tooting", "mitcham", "balham",
				"thornton heath", "crystal palace", "showroom", "south london",
			} {
				if strings.Contains(lower, kw) {
					hasKeyword = true
					break
				}
			}
			assert.True(t, hasKeyword, "alt text lacks a location or service keyword: %q", img.Alt)

			assert.Contains(t, []string{
				models.GalleryCategoryShowroom, models.GalleryCategoryTrust,
				models.GalleryCategoryTransformation, models.GalleryCategoryCraftsmanship,
			}, img.Category)
			assert.Greater(t, img.Width, 0)
			assert.Greater(t, img.Height, 0)
		})
	}
}

func TestGalleryByCategory(t *testing.T) {
	images := content.GalleryByCategory(models.GalleryCategoryTransformation)
	require.NotEmpty(t, images)
	for _, img := range images {
		assert.Equal(t, models.GalleryCategoryTransformation, img.Category)
	}

	// matching folds case, like the review filters
	assert.Equal(t, images, content.GalleryByCategory("transformation"))

	assert.Empty(t, content.GalleryByCategory("Nonexistent"))
}

func TestFilterByLocation(t *testing.T) {
	revs := content.Reviews()

	all := content.FilterByLocation(revs, "all")
	assert.Equal(t, revs, all)

	sw16 := content.FilterByLocation(revs, "SW16")
	require.NotEmpty(t, sw16)
	for _, r := range sw16 {
		assert.True(t, strings.HasPrefix(r.Postcode, "SW16"))
	}

	// case-insensitive
	assert.Equal(t, sw16, content.FilterByLocation(revs, "sw16"))

	assert.Empty(t, content.FilterByLocation(revs, "ZZ99"))
}

func TestFilterByService(t *testing.T) {
	revs := content.Reviews()

	all := content.FilterByService(revs, "all")
	assert.Equal(t, revs, all)

	bathrooms := content.FilterByService(revs, "bathroom")
	extensions := content.FilterByService(revs, "extension")
	require.NotEmpty(t, bathrooms)
	require.NotEmpty(t, extensions)
	assert.Equal(t, len(revs), len(bathrooms)+len(extensions))

	for _, r := range bathrooms {
		assert.Contains(t, strings.ToLower(r.Service), "bathroom")
	}

	// keyword mapping is case-insensitive
	assert.Equal(t, bathrooms, content.FilterByService(revs, "Bathroom"))
}

func TestFilterByService_MixedKeywordsMatchBothCategories(t *testing.T) {
	mixed := []models.Review{{
		ID:   "rev-x",
		Text: "New bathroom fitted as part of the rear extension project",
	}}

	// A review mentioning both trades belongs to both categories, and the
	// result must be identical on every call.
	for i := 0; i < 200; i++ {
		assert.Len(t, content.FilterByService(mixed, "bathroom"), 1)
		assert.Len(t, content.FilterByService(mixed, "extension"), 1)
		assert.Empty(t, content.FilterByService(mixed, "roofing"))
	}
}

func TestFiltersDoNotMutateInput(t *testing.T) {
	revs := content.Reviews()
	snapshot := make([]models.Review, len(revs))
	copy(snapshot, revs)

	content.FilterByLocation(revs, "SW16")
	content.FilterByService(revs, "bathroom")
	content.SortByDate(revs, "oldest")
	content.SortByRating(revs)

	assert.Equal(t, snapshot, revs, "pure helpers must never mutate their input")
}

func TestSortByDate(t *testing.T) {
	revs := content.Reviews()

	newest := content.SortByDate(revs, "newest")
	require.Len(t, newest, len(revs))
	for i := 1; i < len(newest); i++ {
		prev, _ := time.Parse("2006-01-02", newest[i-1].Date)
		cur, _ := time.Parse("2006-01-02", newest[i].Date)
		assert.False(t, cur.After(prev), "dates must be non-increasing")
	}

	oldest := content.SortByDate(revs, "oldest")
	for i := 1; i < len(oldest); i++ {
		prev, _ := time.Parse("2006-01-02", oldest[i-1].Date)
		cur, _ := time.Parse("2006-01-02", oldest[i].Date)
		assert.False(t, cur.Before(prev), "dates must be non-decreasing")
	}
}

func TestSortByRating(t *testing.T) {
	sorted := content.SortByRating(content.Reviews())
	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].Rating, sorted[i].Rating)
	}
}

func TestSortStability(t *testing.T) {
	a := models.Review{ID: "a", Rating: 9, Date: "2026-01-01"}
	b := models.Review{ID: "b", Rating: 9, Date: "2026-01-01"}
	c := models.Review{ID: "c", Rating: 9, Date: "2026-01-01"}
	in := []models.Review{a, b, c}

	byRating := content.SortByRating(in)
	assert.Equal(t, []string{"a", "b", "c"}, []string{byRating[0].ID, byRating[1].ID, byRating[2].ID})

	byDate := content.SortByDate(in, "newest")
	assert.Equal(t, []string{"a", "b", "c"}, []string{byDate[0].ID, byDate[1].ID, byDate[2].ID})
}

func TestAggregateRating(t *testing.T) {
	value, count := content.AggregateRating(content.Reviews())
	assert.Equal(t, len(content.Reviews()), count)
	assert.GreaterOrEqual(t, value, 1.0)
	assert.LessOrEqual(t, value, 10.0)

	value, count = content.AggregateRating(nil)
	assert.Zero(t, value)
	assert.Zero(t, count)
}

func TestPagesTable(t *testing.T) {
	static := content.StaticPages()
	require.NotEmpty(t, static)
	assert.Equal(t, "", static[0].Path, "homepage must lead the table")
	assert.Equal(t, 1.0, static[0].Priority)

	now := time.Now()
	check := func(p content.Page) {
		assert.True(t, models.ValidChangeFrequencies[p.ChangeFrequency], "bad changefreq on %q", p.Path)
		assert.Greater(t, p.Priority, 0.0)
		assert.LessOrEqual(t, p.Priority, 1.0)
		assert.False(t, p.LastModified.After(now), "lastModified in the future on %q", p.Path)
		assert.True(t, p.LastModified.After(now.AddDate(-3, 0, 0)), "lastModified too stale on %q", p.Path)
	}
	for _, p := range static {
		check(p)
	}
	for _, p := range content.ServicePages() {
		check(p)
	}
	check(content.LocationsIndexPage())
}
