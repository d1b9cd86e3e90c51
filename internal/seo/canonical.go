// Package seo builds the search-engine artifacts the frontend embeds:
// sitemap entries, canonical URLs and Schema.org JSON-LD objects. Every
// builder here is deterministic given its inputs, so concurrent calls need
// no locking.
package seo

import "strings"

// CanonicalURL joins a site-relative path onto the base URL and normalizes
// it: https scheme, one domain, no trailing slash except the homepage root,
// no query string or fragment.
func CanonicalURL(baseURL, path string) string {
	base := strings.TrimRight(baseURL, "/")

	// strip query and fragment before normalizing
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return base + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
