package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardizePath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"guide/install", "/guide/install"},
		{"/guide/install", "/guide/install"},
		{"guide//install", "/guide/install"},
		{"guide\\install", "/guide/install"},
		{"///guide", "/guide"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StandardizePath(tt.input), "StandardizePath(%q)", tt.input)
	}
}
