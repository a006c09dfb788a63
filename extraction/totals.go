package extraction

import (
	"math"
	"regexp"
	"strings"

	"led-proposal-engine/models"
	"led-proposal-engine/utils"
)

// DefaultBondRate is the performance bond fee as a fraction of the subtotal
// when the run is not given the rate of the loaded rates config
const DefaultBondRate = 0.015

// bondTolerance is the relative difference from the expected bond that triggers a warning
const bondTolerance = 0.01

var hasLetter = regexp.MustCompile(`[A-Za-z]`)

// ReconcileTotals scans every row for subtotal, tax, bond and total labels.
// Subtotal, tax and bond rows accumulate; among "total" rows the largest
// value is kept so a grand total is not replaced by a smaller total further
// down. A missing total falls back to subtotal+tax+bond.
func ReconcileTotals(run *Run, grid models.SheetGrid, header models.HeaderDetectionResult) models.PricingTotals {
	var totals models.PricingTotals
	var totalValues []float64

	for r, row := range grid {
		if header.Found && r == header.RowIndex {
			continue
		}
		labelCol, label := labelCell(row)
		if label == "" {
			continue
		}
		label = strings.ToLower(label)

		kind := totalsKind(label)
		if kind == "" {
			continue
		}
		value := rowAmount(row, header, labelCol)
		if value < 0 {
			run.Warnf("ignored negative %s amount %s on row %d", kind, utils.FormatUSD(value), r+1)
			continue
		}

		switch kind {
		case "subtotal":
			totals.Subtotal += value
		case "tax":
			totals.Tax += value
		case "bond":
			totals.Bond += value
		case "total":
			if value > 0 {
				totalValues = append(totalValues, value)
			}
			if value > totals.Total {
				totals.Total = value
			}
		}
	}

	if distinct := distinctValues(totalValues); len(distinct) > 1 {
		run.Warnf("found %d total rows with differing amounts; using the largest (%s)",
			len(totalValues), utils.FormatUSD(totals.Total))
	}

	if totals.Total == 0 {
		totals.Total = totals.Subtotal + totals.Tax + totals.Bond
	}

	if msg, ok := CheckBond(totals, run.bondRate); !ok {
		run.Warn(msg)
	}

	totals.Subtotal = Round2(totals.Subtotal)
	totals.Tax = Round2(totals.Tax)
	totals.Bond = Round2(totals.Bond)
	totals.Total = Round2(totals.Total)
	return totals
}

// CheckBond compares a scanned bond with rate times the subtotal.
// It reports a mismatch of more than 1% but never changes the figures.
func CheckBond(totals models.PricingTotals, rate float64) (string, bool) {
	if totals.Bond == 0 {
		return "", true
	}
	expected := totals.Subtotal * rate
	if math.Abs(totals.Bond-expected) <= expected*bondTolerance {
		return "", true
	}
	return "bond amount " + utils.FormatUSD(totals.Bond) +
		" does not match the expected " + utils.FormatUSD(expected) +
		" (" + utils.FormatPercent(rate) + " of subtotal " + utils.FormatUSD(totals.Subtotal) + ")", false
}

// totalsKind classifies a lowercased label; "" means the row is not a totals row
func totalsKind(label string) string {
	switch {
	case strings.Contains(label, "subtotal"), strings.Contains(label, "sub total"), strings.Contains(label, "sub-total"):
		return "subtotal"
	case strings.Contains(label, "tax"):
		return "tax"
	case strings.Contains(label, "bond"):
		return "bond"
	case strings.Contains(label, "total"):
		return "total"
	}
	return ""
}

// labelCell returns the first cell of the row that reads as text
func labelCell(row []string) (int, string) {
	for i, cell := range row {
		if hasLetter.MatchString(cell) && ParseNumber(cell) == 0 {
			return i, cell
		}
	}
	return -1, ""
}

// rowAmount reads the amount of a totals row: the selling price column when it
// holds a number, otherwise the last non-zero number right of the label.
func rowAmount(row []string, header models.HeaderDetectionResult, labelCol int) float64 {
	if header.Found {
		if col, ok := header.Columns.Column(models.FieldSellingPrice); ok && col != labelCol {
			if v := ParseNumber(cellAt(row, col)); v != 0 {
				return v
			}
		}
	}
	for i := len(row) - 1; i > labelCol; i-- {
		if v := ParseNumber(row[i]); v != 0 {
			return v
		}
	}
	return 0
}

func distinctValues(values []float64) []float64 {
	var out []float64
	for _, v := range values {
		seen := false
		for _, o := range out {
			if math.Abs(o-v) < 0.005 {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, v)
		}
	}
	return out
}
