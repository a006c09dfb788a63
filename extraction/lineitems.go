package extraction

import (
	"regexp"
	"strings"

	"led-proposal-engine/models"
)

// displayKeywords are the display types this business sells, matched as substrings
var displayKeywords = []string{"display", "ribbon", "scoreboard", "screen", "led", "lcd"}

// ledWords are ordinary words that contain "led" without naming an LED product
var ledWords = []string{"scheduled", "installed", "bundled", "handled", "controlled", "cancelled", "labeled", "labelled"}

var (
	pitchPattern      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*mm\b`)
	dimensionPattern  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:'|"|ft|in)?\s*h?\s*[x×]\s*(\d+(?:\.\d+)?)\s*(?:'|"|ft|in)?\s*w?`)
	brightnessPattern = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*nits?\b`)
)

// ExtractLineItems returns the billable displays listed below the header row, in row order
func ExtractLineItems(run *Run, grid models.SheetGrid, header models.HeaderDetectionResult) []models.LineItem {
	if !header.Found {
		return nil
	}

	priceCol, ok := header.Columns.Column(models.FieldSellingPrice)
	if !ok {
		run.Warn("header row has no selling price column; no line items can be read")
		return nil
	}
	nameCol, ok := header.Columns.Column(models.FieldDisplayName)
	if !ok {
		nameCol = 0
		run.Warn("header row has no name/description column; using the first column for display names")
	}

	var items []models.LineItem
	for r := header.RowIndex + 1; r < len(grid); r++ {
		row := grid[r]
		name := strings.TrimSpace(cellAt(row, nameCol))
		price := ParseNumber(cellAt(row, priceCol))
		if !IsLineItem(name, price) {
			continue
		}
		items = append(items, buildLineItem(row, header.Columns, name, price))
	}
	return items
}

// IsLineItem applies the admission filter of a line item row: a named,
// positively priced row that is not a totals row and names a display type.
// The lexical check keeps financial summary rows out even when they carry a price.
func IsLineItem(name string, price float64) bool {
	if name == "" || price <= 0 {
		return false
	}
	if strings.Contains(strings.ToLower(name), "total") {
		return false
	}
	return hasDisplayKeyword(name)
}

func hasDisplayKeyword(name string) bool {
	lower := strings.ToLower(name)
	for _, w := range ledWords {
		lower = strings.ReplaceAll(lower, w, " ")
	}
	for _, k := range displayKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func buildLineItem(row []string, columns models.ColumnMap, name string, price float64) models.LineItem {
	item := models.LineItem{
		Name:         name,
		SellingPrice: Round2(price),
		Quantity:     1,
	}

	if col, ok := columns.Column(models.FieldQuantity); ok {
		if qty := int(ParseNumber(cellAt(row, col))); qty > 1 {
			item.Quantity = qty
		}
	}

	item.Pitch = ParsePitch(fieldOrName(row, columns, models.FieldPitch, name))
	item.Brightness = ParseBrightness(fieldOrName(row, columns, models.FieldBrightness, name))
	item.Dimensions = dimensionsFromColumns(row, columns)
	if item.Dimensions == nil {
		item.Dimensions = ParseDimensions(name)
	}
	return item
}

// fieldOrName returns the dedicated column text for a field, or the item name when the column is absent or blank
func fieldOrName(row []string, columns models.ColumnMap, field models.Field, name string) string {
	if col, ok := columns.Column(field); ok {
		if v := strings.TrimSpace(cellAt(row, col)); v != "" {
			return v
		}
	}
	return name
}

func dimensionsFromColumns(row []string, columns models.ColumnMap) *models.Dimensions {
	hCol, hasH := columns.Column(models.FieldHeight)
	wCol, hasW := columns.Column(models.FieldWidth)
	if !hasH || !hasW {
		return nil
	}
	h := ParseNumber(cellAt(row, hCol))
	w := ParseNumber(cellAt(row, wCol))
	if h <= 0 || w <= 0 {
		return nil
	}
	return &models.Dimensions{Height: Round2(h), Width: Round2(w)}
}

// ParsePitch finds a pixel pitch such as "10mm" or "3.9 mm". A bare number is taken as millimetres.
func ParsePitch(text string) *string {
	if m := pitchPattern.FindStringSubmatch(text); m != nil {
		v := FormatNumber(ParseNumber(m[1]))
		return &v
	}
	if n := ParseNumber(text); n > 0 {
		v := FormatNumber(n)
		return &v
	}
	return nil
}

// ParseDimensions finds "<height> x <width>" with optional foot/inch and h/w markers
func ParseDimensions(text string) *models.Dimensions {
	m := dimensionPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	h := ParseNumber(m[1])
	w := ParseNumber(m[2])
	if h <= 0 || w <= 0 {
		return nil
	}
	return &models.Dimensions{Height: Round2(h), Width: Round2(w)}
}

// ParseBrightness finds a brightness such as "5000 nits" or "1,500 nit". A bare number is taken as nits.
func ParseBrightness(text string) *string {
	if m := brightnessPattern.FindStringSubmatch(text); m != nil {
		v := FormatNumber(ParseNumber(m[1]))
		return &v
	}
	if n := ParseNumber(text); n > 0 {
		v := FormatNumber(n)
		return &v
	}
	return nil
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
