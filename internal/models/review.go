package models

// Review is a static customer review record. Ratings are on a 1-10 scale;
// Date is ISO-8601 (YYYY-MM-DD).
type Review struct {
	ID          string `json:"id"`
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
	Author      string `json:"author"`
	Location    string `json:"location"`
	Postcode    string `json:"postcode"`
	Service     string `json:"service,omitempty"`
	Date        string `json:"date"`
	Verified    bool   `json:"verified"`
	JobLocation string `json:"jobLocation,omitempty"`
}
