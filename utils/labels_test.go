package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"synonym list keeps first", "french_fries, chips", "french_fries"},
		{"mixed case", "Pizza", "pizza"},
		{"trims whitespace", "  Apple  ", "apple"},
		{"no comma returns whole label", "hamburger", "hamburger"},
		{"multiple commas", "ice_cream, gelato, sorbet", "ice_cream"},
		{"empty input", "", ""},
		{"leading comma", ",banana", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLabel(tt.raw))
		})
	}
}
