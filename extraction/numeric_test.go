package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"currency with separators", "$1,250.00", 1250},
		{"parentheses are negative", "(500)", -500},
		{"parenthesized currency", "($1,000.50)", -1000.5},
		{"text", "abc", 0},
		{"empty", "", 0},
		{"plain", "42", 42},
		{"leading dot", ".5", 0.5},
		{"euro with spaces", "€ 2 000", 2000},
		{"non breaking space", "1\u00a0500", 1500},
		{"explicit minus", "-12.5", -12.5},
		{"percent is not a number", "28%", 0},
		{"mixed text", "12 units", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNumber(tt.input))
		})
	}
}

func TestParseNumber_Idempotent(t *testing.T) {
	for _, input := range []string{"$1,250.00", "(500)", "abc", "0.1"} {
		first := ParseNumber(input)
		assert.Equal(t, first, ParseNumber(FormatNumber(first)), input)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, -1.01, Round2(-1.005))
	assert.Equal(t, 125000.0, Round2(125000))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "10", FormatNumber(10))
	assert.Equal(t, "2.5", FormatNumber(2.50))
	assert.Equal(t, "3.91", FormatNumber(3.9149))
}
