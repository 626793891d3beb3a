package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMobile(t *testing.T) {
	tests := []struct {
		mobile string
		want   bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"7123456789", true},
		{"8999999999", true},
		{"5876543210", false}, // first digit below 6
		{"0876543210", false},
		{"987654321", false},   // nine digits
		{"98765432100", false}, // eleven digits
		{"98765x3210", false},
		{"+919876543210", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidMobile(tt.mobile), "mobile %q", tt.mobile)
	}
}
