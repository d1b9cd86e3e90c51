package models

// Schema.org JSON-LD types. These marshal directly into the <script
// type="application/ld+json"> blocks the frontend embeds; field names and
// "@"-prefixed keys therefore follow schema.org exactly, not Go conventions.

// SchemaContext is the @context value for every emitted object
const SchemaContext = "https://schema.org"

// PostalAddress is a schema.org PostalAddress
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

// GeoCoordinates is a schema.org GeoCoordinates
type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoCircle describes the served area around a location
type GeoCircle struct {
	Type        string         `json:"@type"`
	GeoMidpoint GeoCoordinates `json:"geoMidpoint"`
	GeoRadius   string         `json:"geoRadius,omitempty"`
}

// AggregateRating is a schema.org AggregateRating
type AggregateRating struct {
	Context      string        `json:"@context,omitempty"`
	Type         string        `json:"@type"`
	RatingValue  float64       `json:"ratingValue"`
	ReviewCount  int           `json:"reviewCount"`
	BestRating   float64       `json:"bestRating"`
	WorstRating  float64       `json:"worstRating"`
	ItemReviewed *ItemReviewed `json:"itemReviewed,omitempty"`
}

// ItemReviewed names the thing an AggregateRating applies to
type ItemReviewed struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// LocalBusiness is the location-page LocalBusiness object
type LocalBusiness struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	ID              string           `json:"@id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	URL             string           `json:"url"`
	Telephone       string           `json:"telephone,omitempty"`
	Address         PostalAddress    `json:"address"`
	Geo             GeoCoordinates   `json:"geo"`
	AreaServed      GeoCircle        `json:"areaServed"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
}

// AreaServed is a named place a Service covers
type AreaServed struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// OfferedService is the itemOffered inside an Offer
type OfferedService struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Offer is one entry of an OfferCatalog
type Offer struct {
	Type        string         `json:"@type"`
	ItemOffered OfferedService `json:"itemOffered"`
}

// OfferCatalog is a schema.org OfferCatalog
type OfferCatalog struct {
	Type            string  `json:"@type"`
	Name            string  `json:"name"`
	ItemListElement []Offer `json:"itemListElement"`
}

// ServiceSchema is the location-page Service object
type ServiceSchema struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	Provider        ItemReviewed `json:"provider"`
	AreaServed      AreaServed   `json:"areaServed"`
	HasOfferCatalog OfferCatalog `json:"hasOfferCatalog"`
}

// ListItem is one breadcrumb entry, 1-indexed by Position
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbList is a schema.org BreadcrumbList
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// Answer is a schema.org Answer
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Question is a schema.org Question with its accepted answer
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// FAQPage is a schema.org FAQPage
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// ImageObject is one gallery image in JSON-LD form
type ImageObject struct {
	Type       string `json:"@type"`
	Name       string `json:"name"`
	Caption    string `json:"caption"`
	ContentURL string `json:"contentUrl"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// ImageGallery is a schema.org ImageGallery
type ImageGallery struct {
	Context string        `json:"@context"`
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	Image   []ImageObject `json:"image"`
}

// ReviewRating is the reviewRating of a Review object
type ReviewRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	BestRating  float64 `json:"bestRating"`
	WorstRating float64 `json:"worstRating"`
}

// Person is a schema.org Person
type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// ReviewSchema is one customer review in JSON-LD form
type ReviewSchema struct {
	Context       string       `json:"@context"`
	Type          string       `json:"@type"`
	ID            string       `json:"@id"`
	ReviewRating  ReviewRating `json:"reviewRating"`
	Author        Person       `json:"author"`
	DatePublished string       `json:"datePublished"`
	ReviewBody    string       `json:"reviewBody"`
	ItemReviewed  ItemReviewed `json:"itemReviewed"`
}
