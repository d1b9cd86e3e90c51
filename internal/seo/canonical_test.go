package seo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashworthrenovations/ashworth-api/internal/seo"
)

const testBase = "https://ashworthrenovations.co.uk"

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"homepage root keeps trailing slash", "", testBase + "/"},
		{"root slash collapses to homepage", "/", testBase + "/"},
		{"plain path", "/about", testBase + "/about"},
		{"trailing slash stripped", "/about/", testBase + "/about"},
		{"missing leading slash added", "about", testBase + "/about"},
		{"query string stripped", "/reviews?location=SW16", testBase + "/reviews"},
		{"fragment stripped", "/gallery#top", testBase + "/gallery"},
		{"nested path", "/locations/streatham", testBase + "/locations/streatham"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seo.CanonicalURL(testBase, tt.path))
		})
	}
}

func TestCanonicalURLNormalizesBase(t *testing.T) {
	assert.Equal(t, testBase+"/about", seo.CanonicalURL(testBase+"/", "/about"))
}
