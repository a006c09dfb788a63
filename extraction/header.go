package extraction

import (
	"strings"

	"led-proposal-engine/models"
)

// HeaderScanLimit bounds header detection to the top of the sheet
const HeaderScanLimit = 30

// headerKeywords must appear at least twice in one row for it to be a header
var headerKeywords = []string{"selling price", "cost", "margin"}

type fieldPattern struct {
	field    models.Field
	patterns []string
}

// columnPatterns is ordered: the first field matching a cell takes it
var columnPatterns = []fieldPattern{
	{models.FieldDisplayName, []string{"display name", "description", "line item", "item", "product", "display", "name"}},
	{models.FieldSellingPrice, []string{"selling price", "sale price", "sell price", "price"}},
	{models.FieldCost, []string{"cost"}},
	{models.FieldMargin, []string{"margin"}},
	{models.FieldPitch, []string{"pitch"}},
	{models.FieldHeight, []string{"height"}},
	{models.FieldWidth, []string{"width"}},
	{models.FieldQuantity, []string{"quantity", "qty"}},
	{models.FieldBrightness, []string{"brightness", "nits"}},
}

// LocateHeader finds the header row within the first HeaderScanLimit rows
func LocateHeader(grid models.SheetGrid) models.HeaderDetectionResult {
	limit := len(grid)
	if limit > HeaderScanLimit {
		limit = HeaderScanLimit
	}

	for r := 0; r < limit; r++ {
		if headerHits(grid[r]) >= 2 {
			return models.HeaderDetectionResult{
				Found:    true,
				RowIndex: r,
				Columns:  MapColumns(grid[r]),
			}
		}
	}

	return models.HeaderDetectionResult{Found: false, RowIndex: -1, Columns: models.ColumnMap{}}
}

// headerHits counts how many distinct header keywords occur in the row.
// A cell contributes at most one keyword, so a title such as
// "Cost & Margin Analysis" is a single hit.
func headerHits(row []string) int {
	seen := make(map[string]bool, len(headerKeywords))
	for _, cell := range row {
		label := strings.ToLower(cell)
		for _, keyword := range headerKeywords {
			if seen[keyword] || !strings.Contains(label, keyword) {
				continue
			}
			seen[keyword] = true
			break
		}
	}
	return len(seen)
}

// MapColumns builds the field → column map of a header row
func MapColumns(row []string) models.ColumnMap {
	columns := models.ColumnMap{}
	for col, cell := range row {
		label := strings.ToLower(strings.TrimSpace(cell))
		if label == "" {
			continue
		}
		if field, ok := matchField(label); ok {
			if _, taken := columns[field]; !taken {
				columns[field] = col
			}
		}
	}
	return columns
}

func matchField(label string) (models.Field, bool) {
	for _, fp := range columnPatterns {
		for _, pattern := range fp.patterns {
			if strings.Contains(label, pattern) {
				return fp.field, true
			}
		}
	}
	return "", false
}
