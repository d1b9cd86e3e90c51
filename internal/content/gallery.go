package content

import (
	"strings"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
)

// gallery is the project photo table. Alt text follows the authoring rules
// checked in content_test.go: 20-150 chars, uppercase start, a location or
// service keyword, no "image of" prefix.
var gallery = []models.GalleryImage{
	{
		ID:       "streatham-bathroom-walk-in-shower",
		Src:      "/images/gallery/streatham-bathroom-walk-in-shower.jpg",
		Alt:      "Finished walk-in shower with marble-effect tiling in a Streatham family bathroom",
		Category: models.GalleryCategoryTransformation,
		Location: "Streatham",
		Service:  "Bathroom renovation",
		Width:    1600,
		Height:   1200,
		Priority: true,
	},
	{
		ID:       "tooting-rear-extension-crittall",
		Src:      "/images/gallery/tooting-rear-extension-crittall.jpg",
		Alt:      "Rear kitchen extension with Crittall-style doors on a Tooting terrace",
		Category: models.GalleryCategoryTransformation,
		Location: "Tooting",
		Service:  "House extension",
		Width:    1600,
		Height:   1067,
		Priority: true,
	},
	{
		ID:       "balham-ensuite-brass-fittings",
		Src:      "/images/gallery/balham-ensuite-brass-fittings.jpg",
		Alt:      "Boutique ensuite with brushed brass fittings and microcement walls in Balham",
		Category: models.GalleryCategoryShowroom,
		Location: "Balham",
		Service:  "Bathroom renovation",
		Width:    1200,
		Height:   1600,
	},
	{
		ID:       "mitcham-bathroom-before-after",
		Src:      "/images/gallery/mitcham-bathroom-before-after.jpg",
		Alt:      "Before and after of a complete bathroom strip-out and refit in Mitcham",
		Category: models.GalleryCategoryTransformation,
		Location: "Mitcham",
		Service:  "Bathroom renovation",
		Width:    1600,
		Height:   900,
	},
	{
		ID:       "crystal-palace-freestanding-bath",
		Src:      "/images/gallery/crystal-palace-freestanding-bath.jpg",
		Alt:      "Freestanding bath beneath a sash window in a Crystal Palace Victorian villa",
		Category: models.GalleryCategoryCraftsmanship,
		Location: "Crystal Palace",
		Service:  "Bathroom renovation",
		Width:    1200,
		Height:   1500,
	},
	{
		ID:       "tiling-detail-herringbone",
		Src:      "/images/gallery/tiling-detail-herringbone.jpg",
		Alt:      "Hand-set herringbone tiling detail from a bathroom renovation in progress",
		Category: models.GalleryCategoryCraftsmanship,
		Service:  "Bathroom renovation",
		Width:    1400,
		Height:   1400,
	},
	{
		ID:       "team-on-site-thornton-heath",
		Src:      "/images/gallery/team-on-site-thornton-heath.jpg",
		Alt:      "Ashworth team on site during a rear extension build in Thornton Heath",
		Category: models.GalleryCategoryTrust,
		Location: "Thornton Heath",
		Service:  "House extension",
		Width:    1600,
		Height:   1200,
	},
	{
		ID:       "showroom-display-sanitaryware",
		Src:      "/images/gallery/showroom-display-sanitaryware.jpg",
		Alt:      "Sanitaryware and bathroom fixture display at our South London showroom",
		Category: models.GalleryCategoryShowroom,
		Width:    1600,
		Height:   1067,
	},
}

// Gallery returns a copy of the gallery table
func Gallery() []models.GalleryImage {
	out := make([]models.GalleryImage, len(gallery))
	copy(out, gallery)
	return out
}

// GalleryByCategory returns the images in the given category, preserving
// table order. Matching folds case, like the review filters. Never mutates
// the source table.
func GalleryByCategory(category string) []models.GalleryImage {
	out := make([]models.GalleryImage, 0, len(gallery))
	for _, img := range gallery {
		if strings.EqualFold(img.Category, category) {
			out = append(out, img)
		}
	}
	return out
}
