package content

import (
	"sort"
	"strings"
	"time"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
)

// reviews is the customer review table. Ratings are on a 1-10 scale.
var reviews = []models.Review{
	{
		ID:     "rev-001",
		Rating: 10,
		Text: "Ashworth gutted and rebuilt our bathroom in three weeks flat. The tiling " +
			"is immaculate and they left the house spotless every evening.",
		Author:      "Sarah M.",
		Location:    "Streatham",
		Postcode:    "SW16 1DB",
		Service:     "Bathroom renovation",
		Date:        "2026-06-14",
		Verified:    true,
		JobLocation: "Gleneagle Road",
	},
	{
		ID:     "rev-002",
		Rating: 9,
		Text: "Our side-return extension came in on budget and only a week over the " +
			"original schedule, which for building work feels like a miracle. Clear " +
			"communication throughout.",
		Author:      "James and Priya K.",
		Location:    "Tooting",
		Postcode:    "SW17 8QT",
		Service:     "House extension",
		Date:        "2026-04-02",
		Verified:    true,
		JobLocation: "Franciscan Road",
	},
	{
		ID:     "rev-003",
		Rating: 10,
		Text: "Second project with this team. The new ensuite is better than the drawings " +
			"promised and the underfloor heating works a treat.",
		Author:   "Derek O.",
		Location: "Balham",
		Postcode: "SW12 9HW",
		Service:  "Bathroom renovation",
		Date:     "2026-02-20",
		Verified: true,
	},
	{
		ID:     "rev-004",
		Rating: 8,
		Text: "Solid work on our garage conversion. One snag with a door frame was fixed " +
			"within two days of us reporting it. Would use again.",
		Author:      "Tunde A.",
		Location:    "Mitcham",
		Postcode:    "CR4 3LB",
		Service:     "House extension",
		Date:        "2025-11-08",
		Verified:    true,
		JobLocation: "Church Road",
	},
	{
		ID:     "rev-005",
		Rating: 10,
		Text: "After a terrible experience with a previous builder we were nervous, but " +
			"the staged payments and daily updates put us at ease. The bathroom is " +
			"beautiful.",
		Author:   "Margaret H.",
		Location: "Thornton Heath",
		Postcode: "CR7 7JG",
		Service:  "Bathroom renovation",
		Date:     "2025-09-27",
		Verified: true,
	},
	{
		ID:     "rev-006",
		Rating: 9,
		Text: "They restored the original floorboards and cornicing while fitting a " +
			"completely modern shower room. Exactly the balance we wanted.",
		Author:      "Eleanor W.",
		Location:    "Crystal Palace",
		Postcode:    "SE19 2TJ",
		Service:     "Bathroom renovation",
		Date:        "2026-07-05",
		Verified:    true,
		JobLocation: "Auckland Road",
	},
	{
		ID:     "rev-007",
		Rating: 9,
		Text: "Split-level extension on a sloping garden that two other firms turned " +
			"down. Clever engineering and a tidy site throughout.",
		Author:   "Rob C.",
		Location: "Crystal Palace",
		Postcode: "SE19 1LG",
		Service:  "House extension",
		Date:     "2025-08-15",
		Verified: false,
	},
	{
		ID:     "rev-008",
		Rating: 10,
		Text: "From quote to handover everything happened when they said it would. The " +
			"wet room drains perfectly and looks superb.",
		Author:   "Amina S.",
		Location: "Streatham",
		Postcode: "SW16 4RW",
		Service:  "Bathroom renovation",
		Date:     "2025-12-19",
		Verified: true,
	},
}

// serviceKeywords maps lowercase keywords to a service category. A review
// matches a category when its service or text contains any mapped keyword.
var serviceKeywords = map[string]string{
	"bathroom":   "bathroom",
	"wet room":   "bathroom",
	"ensuite":    "bathroom",
	"shower":     "bathroom",
	"extension":  "extension",
	"conversion": "extension",
	"loft":       "extension",
}

// Reviews returns a copy of the review table
func Reviews() []models.Review {
	out := make([]models.Review, len(reviews))
	copy(out, reviews)
	return out
}

// FilterByLocation returns the reviews whose postcode starts with the given
// outward code. The sentinel "all" returns every review. Never mutates input.
func FilterByLocation(in []models.Review, postcode string) []models.Review {
	if strings.EqualFold(postcode, "all") {
		out := make([]models.Review, len(in))
		copy(out, in)
		return out
	}
	prefix := strings.ToUpper(strings.TrimSpace(postcode))
	out := make([]models.Review, 0, len(in))
	for _, r := range in {
		if strings.HasPrefix(strings.ToUpper(r.Postcode), prefix) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByService returns the reviews matching a service category. Matching is
// a case-insensitive keyword lookup against the review's service field, falling
// back to the review text. The sentinel "all" returns every review.
func FilterByService(in []models.Review, service string) []models.Review {
	if strings.EqualFold(service, "all") {
		out := make([]models.Review, len(in))
		copy(out, in)
		return out
	}
	want := strings.ToLower(strings.TrimSpace(service))
	out := make([]models.Review, 0, len(in))
	for _, r := range in {
		if matchesServiceCategory(r, want) {
			out = append(out, r)
		}
	}
	return out
}

// matchesServiceCategory reports whether any keyword mapped to the given
// category appears in the review's service field, falling back to the text.
// A review mentioning keywords from several categories matches each of them.
func matchesServiceCategory(r models.Review, category string) bool {
	haystack := strings.ToLower(r.Service)
	if haystack == "" {
		haystack = strings.ToLower(r.Text)
	}
	for keyword, mapped := range serviceKeywords {
		if mapped == category && strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

// SortByDate returns a new slice sorted by the parsed date field. Order is
// "newest" (default) or "oldest". Unparseable dates sort last. Stable.
func SortByDate(in []models.Review, order string) []models.Review {
	out := make([]models.Review, len(in))
	copy(out, in)
	oldest := order == "oldest"
	sort.SliceStable(out, func(i, j int) bool {
		ti, iok := parseReviewDate(out[i].Date)
		tj, jok := parseReviewDate(out[j].Date)
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		if oldest {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})
	return out
}

// SortByRating returns a new slice sorted descending by rating. Stable.
func SortByRating(in []models.Review) []models.Review {
	out := make([]models.Review, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out
}

// AggregateRating computes the mean rating and count over the review table.
// Returns zeros when the table is empty.
func AggregateRating(in []models.Review) (ratingValue float64, reviewCount int) {
	if len(in) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range in {
		sum += r.Rating
	}
	value := float64(sum) / float64(len(in))
	// one decimal place, matching how ratings are displayed
	return float64(int(value*10+0.5)) / 10, len(in)
}

func parseReviewDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
