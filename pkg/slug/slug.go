package slug

import (
	"regexp"
	"strings"
)

var nonAlphaRegex = regexp.MustCompile(`[^a-z0-9 -]+`)
var spaceRegex = regexp.MustCompile(`[ ]+`)

// FromAreaName generates a URL-friendly slug from a service-area name.
// Example: "Thornton Heath" -> "thornton-heath".
func FromAreaName(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))

	// Ampersands read as "and" in URLs
	slug = strings.ReplaceAll(slug, "&", "and")

	slug = nonAlphaRegex.ReplaceAllString(slug, "")
	slug = spaceRegex.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	return slug
}
