// Package validation holds the pure field predicates for the lead form.
// Each rule is a named function so the rule set is testable on its own and
// shared between the binding layer and the submission service.
package validation

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
)

// MaxPhotoSizeBytes is the inclusive per-file attachment limit (5 MiB)
const MaxPhotoSizeBytes = 5 * 1024 * 1024

var (
	// UK postcode, outward + inward, optional space: "SW16 1AB", "cr4 3nd"
	postcodeRegex = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d{1,2}[A-Z]?\s?\d[A-Z]{2}$`)

	// UK phone after whitespace stripping: 0 plus 10 digits, or +44 plus 10 digits
	phoneRegex = regexp.MustCompile(`^(\+44|0)\d{10}$`)

	// Deliberately loose: local@domain.tld with no whitespace. Deliverability
	// is confirmed by replying to the lead, not by the form.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	whitespaceRegex = regexp.MustCompile(`\s+`)

	scriptTagRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>|<script\b[^>]*/?>`)
)

// allowedPhotoTypes are the only attachment mime types the form accepts
var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidService reports whether v is exactly one of the three form options.
// Case variants fail: the form submits canonical values, so anything else
// is a tampered request.
func ValidService(v string) bool {
	return v == models.ServiceBathroom || v == models.ServiceExtension || v == models.ServiceOther
}

// ValidPostcode reports whether v looks like a UK postcode. Purely
// syntactic; it does not verify the postcode exists. The pattern is
// anchored, so surrounding whitespace fails.
func ValidPostcode(v string) bool {
	return v != "" && postcodeRegex.MatchString(v)
}

// ValidName reports whether v is non-blank after trimming
func ValidName(v string) bool {
	return strings.TrimSpace(v) != ""
}

// ValidPhone reports whether v is a UK landline (0...) or mobile/
// international (+44...) number, ignoring any interior whitespace.
func ValidPhone(v string) bool {
	stripped := whitespaceRegex.ReplaceAllString(v, "")
	return phoneRegex.MatchString(stripped)
}

// ValidEmail reports whether v matches a basic local@domain.tld shape
func ValidEmail(v string) bool {
	return emailRegex.MatchString(v)
}

// ValidatePhotos checks every attachment against the type and size rules.
// The two checks are independent: one file can contribute two errors.
// An empty list is valid; photos are optional.
func ValidatePhotos(files []models.PhotoAttachment) models.ValidationResult {
	var errs []string

	for _, f := range files {
		if !allowedPhotoTypes[f.MimeType] {
			errs = append(errs, fmt.Sprintf("%s: Invalid file type", f.Name))
		}
		if f.SizeBytes > MaxPhotoSizeBytes {
			errs = append(errs, fmt.Sprintf("%s: File too large", f.Name))
		}
	}

	return models.ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// SanitizeText strips script tags and HTML-escapes the remainder so no
// markup survives into the stored lead or the notification email.
func SanitizeText(v string) string {
	cleaned := scriptTagRegex.ReplaceAllString(v, "")
	return html.EscapeString(strings.TrimSpace(cleaned))
}
