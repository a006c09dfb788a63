package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	numberNoise  = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "", "\t", "", "\u00a0", "")
	plainDecimal = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)$`)
)

// ParseNumber coerces a spreadsheet cell to a number.
// Currency symbols, thousands separators and whitespace are ignored and a
// value wrapped in parentheses is negative. Unparseable input yields 0.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = numberNoise.Replace(s)
	if !plainDecimal.MatchString(s) {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if negative && v > 0 {
		v = -v
	}
	return v
}

// Round2 rounds half away from zero to two decimals.
// Going through a decimal avoids 1.005 becoming 1.00.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatNumber renders a rounded number without trailing zeros ("10", "2.5")
func FormatNumber(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', -1, 64)
}
