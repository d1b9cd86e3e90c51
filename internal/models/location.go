package models

// Zone is the marketing tier a service area belongs to
type Zone string

const (
	ZoneGold       Zone = "gold"
	ZoneRenovation Zone = "renovation"
	ZoneVillage    Zone = "village"
	ZoneFoundation Zone = "foundation"
)

// Coordinates is a WGS84 point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RecentProject is a completed job referenced on a location page
type RecentProject struct {
	Description string `json:"description"`
	Year        int    `json:"year"`
}

// Location is a static service-area record. Loaded once at startup and never
// mutated; authoring constraints (3 local streets, 1-2 landmarks, at least
// one recent project, 150-200 word detailed description, 3+ LSI keywords)
// are enforced by the content package tests.
type Location struct {
	Slug                string          `json:"slug"`
	Name                string          `json:"name"`
	Postcode            string          `json:"postcode"`
	Zone                Zone            `json:"zone"`
	Region              string          `json:"region"`
	Description         string          `json:"description"`
	Keywords            []string        `json:"keywords"`
	Coordinates         Coordinates     `json:"coordinates"`
	Nearby              []string        `json:"nearby"`
	DetailedDescription string          `json:"detailedDescription"`
	LocalStreets        []string        `json:"localStreets"`
	Landmarks           []string        `json:"landmarks"`
	RecentProjects      []RecentProject `json:"recentProjects"`
	LSIKeywords         []string        `json:"lsiKeywords"`
}
