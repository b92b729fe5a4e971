package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Getting Started", "getting-started"},
		{"Hello, World!", "hello-world"},
		{"Über uns", "uber-uns"},
		{"Café au lait", "cafe-au-lait"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"multiple---hyphens", "multiple-hyphens"},
		{"UPPER case", "upper-case"},
		{"version 2.0", "version-2-0"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.title), "Slugify(%q)", tt.title)
	}
}

func TestHasExtension(t *testing.T) {
	extensions := []string{"md", "rst"}

	assert.True(t, HasExtension("page.md", extensions))
	assert.True(t, HasExtension("page.MD", extensions))
	assert.True(t, HasExtension("page.rst", extensions))
	assert.False(t, HasExtension("page.txt", extensions))
	assert.False(t, HasExtension("page", extensions))
	assert.True(t, HasExtension("anything.xyz", []string{"*"}))
}
