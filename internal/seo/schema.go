package seo

import (
	"fmt"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
)

// Rating scale used across AggregateRating and Review objects
const (
	DefaultBestRating  = 10.0
	DefaultWorstRating = 1.0
)

// Builder produces the JSON-LD objects for a configured business identity.
type Builder struct {
	baseURL      string
	businessName string
	businessType string
}

// NewBuilder returns a schema builder for the given site identity.
// businessType is a schema.org type, e.g. "HomeAndConstructionBusiness".
func NewBuilder(baseURL, businessName, businessType string) *Builder {
	return &Builder{
		baseURL:      baseURL,
		businessName: businessName,
		businessType: businessType,
	}
}

// BuildLocationSchemas returns the four objects a location page embeds, in
// fixed order: LocalBusiness, Service, BreadcrumbList, FAQPage.
func (b *Builder) BuildLocationSchemas(loc models.Location, url string, rating models.AggregateRating) []any {
	return []any{
		b.buildLocalBusiness(loc, url, rating),
		b.buildService(loc),
		b.buildBreadcrumbs(loc, url),
		b.buildFAQPage(loc),
	}
}

func (b *Builder) buildLocalBusiness(loc models.Location, url string, rating models.AggregateRating) models.LocalBusiness {
	geo := models.GeoCoordinates{
		Type:      "GeoCoordinates",
		Latitude:  loc.Coordinates.Lat,
		Longitude: loc.Coordinates.Lng,
	}
	// nested rating never repeats the @context of its parent
	rating.Context = ""
	return models.LocalBusiness{
		Context:     models.SchemaContext,
		Type:        b.businessType,
		ID:          url,
		Name:        fmt.Sprintf("%s - %s", b.businessName, loc.Name),
		Description: loc.Description,
		URL:         url,
		Address: models.PostalAddress{
			Type:            "PostalAddress",
			AddressLocality: loc.Name,
			AddressRegion:   loc.Region,
			PostalCode:      loc.Postcode,
			AddressCountry:  "GB",
		},
		Geo: geo,
		AreaServed: models.GeoCircle{
			Type:        "GeoCircle",
			GeoMidpoint: geo,
			GeoRadius:   "6000",
		},
		AggregateRating: &rating,
	}
}

func (b *Builder) buildService(loc models.Location) models.ServiceSchema {
	return models.ServiceSchema{
		Context: models.SchemaContext,
		Type:    "Service",
		Name:    fmt.Sprintf("Home renovation in %s", loc.Name),
		Description: fmt.Sprintf(
			"Bathroom renovations and house extensions for homes in %s and the %s area.",
			loc.Name, loc.Postcode),
		Provider: models.ItemReviewed{Type: b.businessType, Name: b.businessName},
		AreaServed: models.AreaServed{
			Type: "Place",
			Name: loc.Name,
		},
		HasOfferCatalog: models.OfferCatalog{
			Type: "OfferCatalog",
			Name: "Renovation services",
			ItemListElement: []models.Offer{
				{
					Type: "Offer",
					ItemOffered: models.OfferedService{
						Type: "Service",
						Name: "Bathroom renovation",
						Description: "Complete bathroom design and installation, from " +
							"strip-out to finished tiling, plumbing and electrics.",
					},
				},
				{
					Type: "Offer",
					ItemOffered: models.OfferedService{
						Type: "Service",
						Name: "House extension",
						Description: "Single and double storey extensions managed end " +
							"to end: drawings, structural work, building control and finish.",
					},
				},
			},
		},
	}
}

func (b *Builder) buildBreadcrumbs(loc models.Location, url string) models.BreadcrumbList {
	return models.BreadcrumbList{
		Context: models.SchemaContext,
		Type:    "BreadcrumbList",
		ItemListElement: []models.ListItem{
			{Type: "ListItem", Position: 1, Name: "Home", Item: CanonicalURL(b.baseURL, "")},
			{Type: "ListItem", Position: 2, Name: "Service Areas", Item: CanonicalURL(b.baseURL, "/locations")},
			{Type: "ListItem", Position: 3, Name: loc.Name, Item: url},
		},
	}
}

func (b *Builder) buildFAQPage(loc models.Location) models.FAQPage {
	questions := []models.Question{
		{
			Type: "Question",
			Name: fmt.Sprintf("Do you cover %s?", loc.Name),
			AcceptedAnswer: models.Answer{
				Type: "Answer",
				Text: fmt.Sprintf(
					"Yes. %s is one of our core service areas and we work across the "+
						"whole %s postcode, including %s.",
					loc.Name, loc.Postcode, joinStreets(loc.LocalStreets)),
			},
		},
		{
			Type: "Question",
			Name: fmt.Sprintf("How much does a bathroom renovation cost in %s?", loc.Name),
			AcceptedAnswer: models.Answer{
				Type: "Answer",
				Text: "Most full bathroom renovations fall between 7,000 and 15,000 " +
					"pounds depending on size and specification. Every quote is fixed " +
					"and itemised before work starts.",
			},
		},
		{
			Type: "Question",
			Name: "How long does a house extension take?",
			AcceptedAnswer: models.Answer{
				Type: "Answer",
				Text: fmt.Sprintf(
					"A typical single storey rear extension in %s takes ten to fourteen "+
						"weeks on site once drawings and approvals are in place.", loc.Name),
			},
		},
		{
			Type: "Question",
			Name: "Are you insured and is the work guaranteed?",
			AcceptedAnswer: models.Answer{
				Type: "Answer",
				Text: "We carry full public liability insurance and every project comes " +
					"with a written workmanship guarantee.",
			},
		},
	}
	return models.FAQPage{
		Context:    models.SchemaContext,
		Type:       "FAQPage",
		MainEntity: questions,
	}
}

func joinStreets(streets []string) string {
	switch len(streets) {
	case 0:
		return "the surrounding streets"
	case 1:
		return streets[0]
	case 2:
		return streets[0] + " and " + streets[1]
	default:
		out := ""
		for _, s := range streets[:len(streets)-1] {
			if out != "" {
				out += ", "
			}
			out += s
		}
		return out + " and " + streets[len(streets)-1]
	}
}

// BuildAggregateRatingSchema builds an AggregateRating, clamping the value
// into [worstRating, bestRating] and the count to at least one so the object
// always satisfies the schema.org contract.
func BuildAggregateRatingSchema(ratingValue float64, reviewCount int, bestRating, worstRating float64, itemName, itemType string) models.AggregateRating {
	if bestRating < worstRating {
		bestRating, worstRating = worstRating, bestRating
	}
	if ratingValue < worstRating {
		ratingValue = worstRating
	}
	if ratingValue > bestRating {
		ratingValue = bestRating
	}
	if reviewCount < 1 {
		reviewCount = 1
	}
	return models.AggregateRating{
		Context:     models.SchemaContext,
		Type:        "AggregateRating",
		RatingValue: ratingValue,
		ReviewCount: reviewCount,
		BestRating:  bestRating,
		WorstRating: worstRating,
		ItemReviewed: &models.ItemReviewed{
			Type: itemType,
			Name: itemName,
		},
	}
}

// AggregateRating builds the site-wide rating object on the default 1-10
// scale for the configured business.
func (b *Builder) AggregateRating(ratingValue float64, reviewCount int) models.AggregateRating {
	return BuildAggregateRatingSchema(
		ratingValue, reviewCount,
		DefaultBestRating, DefaultWorstRating,
		b.businessName, b.businessType,
	)
}

// BuildImageGallerySchema maps the gallery table into one ImageGallery
// object. Output length always equals input length; contentUrl carries the
// full base domain.
func (b *Builder) BuildImageGallerySchema(name string, images []models.GalleryImage) models.ImageGallery {
	objects := make([]models.ImageObject, 0, len(images))
	for _, img := range images {
		objects = append(objects, models.ImageObject{
			Type:       "ImageObject",
			Name:       img.ID,
			Caption:    img.Alt,
			ContentURL: b.baseURL + img.Src,
			Width:      img.Width,
			Height:     img.Height,
		})
	}
	return models.ImageGallery{
		Context: models.SchemaContext,
		Type:    "ImageGallery",
		Name:    name,
		Image:   objects,
	}
}

// BuildReviewSchemas maps reviews into Review objects, one per input, each
// with a unique @id derived from the review id. Review bodies pass through
// verbatim; JSON escaping happens at serialization.
func (b *Builder) BuildReviewSchemas(reviews []models.Review) []models.ReviewSchema {
	out := make([]models.ReviewSchema, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, models.ReviewSchema{
			Context: models.SchemaContext,
			Type:    "Review",
			ID:      CanonicalURL(b.baseURL, "/reviews") + "#" + r.ID,
			ReviewRating: models.ReviewRating{
				Type:        "Rating",
				RatingValue: float64(r.Rating),
				BestRating:  DefaultBestRating,
				WorstRating: DefaultWorstRating,
			},
			Author:        models.Person{Type: "Person", Name: r.Author},
			DatePublished: r.Date,
			ReviewBody:    r.Text,
			ItemReviewed: models.ItemReviewed{
				Type: b.businessType,
				Name: b.businessName,
			},
		})
	}
	return out
}
