package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAreaName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "Streatham", "streatham"},
		{"two words", "Thornton Heath", "thornton-heath"},
		{"ampersand", "Crystal Palace & Penge", "crystal-palace-and-penge"},
		{"extra whitespace", "  Tooting  ", "tooting"},
		{"punctuation stripped", "St. Leonard's", "st-leonards"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromAreaName(tt.input))
		})
	}
}
