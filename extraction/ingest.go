package extraction

import (
	"encoding/csv"
	"fmt"
	"strings"

	"led-proposal-engine/models"
)

// Ingest parses every sheet source into a Workbook.
// A sheet that cannot be parsed, is empty or reuses a name is skipped with a
// warning. It fails only when no sheet survives.
func Ingest(run *Run, sources []models.SheetSource) (*models.Workbook, error) {
	wb := &models.Workbook{}
	for i, src := range sources {
		name := strings.TrimSpace(src.Name)
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}

		grid, err := ParseSheet(src.Content)
		if err != nil {
			run.Warnf("sheet %q skipped: %v", name, err)
			continue
		}
		if isBlank(grid) {
			run.Warnf("sheet %q skipped: no data", name)
			continue
		}
		if !wb.Add(name, grid) {
			run.Warnf("sheet %q skipped: duplicate sheet name", name)
		}
	}

	if wb.Len() == 0 {
		return nil, ErrNoUsableSheets
	}
	return wb, nil
}

// ParseSheet parses newline-delimited rows of comma-separated values.
// Quoted fields may contain commas, newlines and doubled quotes; every
// field is trimmed of surrounding whitespace. Quotes are read leniently:
// an inch mark inside an unquoted cell stays part of the cell and an
// unterminated quote runs to the end of the sheet.
func ParseSheet(content string) (models.SheetGrid, error) {
	content = strings.TrimPrefix(content, "\ufeff")

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	grid := make(models.SheetGrid, 0, len(records))
	for _, record := range records {
		row := make([]string, len(record))
		for i, field := range record {
			row[i] = strings.TrimSpace(field)
		}
		grid = append(grid, row)
	}
	return grid, nil
}

func isBlank(grid models.SheetGrid) bool {
	for _, row := range grid {
		for _, cell := range row {
			if cell != "" {
				return false
			}
		}
	}
	return true
}
