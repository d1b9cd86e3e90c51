package models

import "time"

// Service types accepted by the lead form. The form presents exactly these
// three options; anything else is rejected as tampering.
const (
	ServiceBathroom  = "Bathroom"
	ServiceExtension = "Extension"
	ServiceOther     = "Other"
)

// PhotoAttachment is one uploaded photo from the lead form
type PhotoAttachment struct {
	Name      string
	MimeType  string
	SizeBytes int64
	Data      []byte
}

// LeadSubmission represents a raw lead form submission as received from the
// multipart form boundary, before validation and sanitization.
type LeadSubmission struct {
	Service        string
	Postcode       string
	Name           string
	Phone          string
	Email          string
	RecaptchaToken string
	Photos         []PhotoAttachment
}

// ValidationResult collects per-rule failures for a field group.
// One entry per failing rule; a single file can contribute two entries.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// SubmissionResult is the outcome of a lead submission.
// Error is set only when Success is false. PhotoWarnings carries advisory
// per-file attachment problems that did not block the submission.
type SubmissionResult struct {
	Success       bool     `json:"success"`
	LeadID        string   `json:"leadId,omitempty"`
	Error         string   `json:"error,omitempty"`
	PhotoWarnings []string `json:"photoWarnings,omitempty"`
}

// LeadListQuery filters the internal lead listing. Postcode and Service use
// the custom binding rules registered at startup, so a malformed filter is
// rejected at the boundary instead of silently matching nothing.
type LeadListQuery struct {
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
	Postcode string `form:"postcode" binding:"omitempty,ukpostcode"`
	Service  string `form:"service" binding:"omitempty,leadservice"`
}

// Lead is a sanitized, stored lead record
type Lead struct {
	ID        string    `json:"id"`
	Service   string    `json:"service"`
	Postcode  string    `json:"postcode"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	PhotoURLs []string  `json:"photoUrls,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
