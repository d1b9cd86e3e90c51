package models

// Gallery image categories
const (
	GalleryCategoryShowroom       = "Showroom"
	GalleryCategoryTrust          = "Trust"
	GalleryCategoryTransformation = "Transformation"
	GalleryCategoryCraftsmanship  = "Craftsmanship"
)

// GalleryImage is a static gallery record. Alt text rules (20-150 chars,
// uppercase start, keyword present, no "image of" prefix) are authoring
// constraints checked by the content package tests.
type GalleryImage struct {
	ID       string `json:"id"`
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Category string `json:"category"`
	Location string `json:"location,omitempty"`
	Service  string `json:"service,omitempty"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Priority bool   `json:"priority,omitempty"`
}
