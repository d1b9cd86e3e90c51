package models

import "time"

// ChangeFrequency is the sitemap <changefreq> hint
type ChangeFrequency string

const (
	FreqAlways  ChangeFrequency = "always"
	FreqHourly  ChangeFrequency = "hourly"
	FreqDaily   ChangeFrequency = "daily"
	FreqWeekly  ChangeFrequency = "weekly"
	FreqMonthly ChangeFrequency = "monthly"
	FreqYearly  ChangeFrequency = "yearly"
	FreqNever   ChangeFrequency = "never"
)

// ValidChangeFrequencies is the closed set the sitemap protocol allows
var ValidChangeFrequencies = map[ChangeFrequency]bool{
	FreqAlways:  true,
	FreqHourly:  true,
	FreqDaily:   true,
	FreqWeekly:  true,
	FreqMonthly: true,
	FreqYearly:  true,
	FreqNever:   true,
}

// SitemapEntry is one sitemap.xml URL record. The frontend serializes these
// to XML; this API only guarantees the entry list contract (absolute https
// URLs on one domain, unique, priority in [0,1]).
type SitemapEntry struct {
	URL             string          `json:"url"`
	LastModified    time.Time       `json:"lastModified"`
	ChangeFrequency ChangeFrequency `json:"changeFrequency"`
	Priority        float64         `json:"priority"`
}
