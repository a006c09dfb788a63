package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{999.999, "$1,000.00"},
		{1500, "$1,500.00"},
		{109500, "$109,500.00"},
		{1234567.891, "$1,234,567.89"},
		{-500, "-$500.00"},
		{0.05, "$0.05"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatUSD(tt.amount), "amount %v", tt.amount)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "30.0%", FormatPercent(0.3))
	assert.Equal(t, "1.5%", FormatPercent(0.015))
}
