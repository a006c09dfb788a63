package extraction

import (
	"strings"

	"led-proposal-engine/models"
)

// priorityKeywords mark sheet names that usually hold the real cost table
var priorityKeywords = []string{"margin", "analysis", "cost sheet", "proposal", "bid"}

// SelectSheet picks the sheet holding the cost table.
// The first sheet whose name carries a priority keyword wins, then the first
// sheet with a detectable header row, then simply the first sheet.
func SelectSheet(run *Run, wb *models.Workbook) (string, models.SheetGrid) {
	if wb == nil || wb.Len() == 0 {
		return "", nil
	}

	for _, sheet := range wb.Sheets {
		name := strings.ToLower(sheet.Name)
		for _, keyword := range priorityKeywords {
			if strings.Contains(name, keyword) {
				return sheet.Name, sheet.Grid
			}
		}
	}

	for _, sheet := range wb.Sheets {
		if run.header(sheet.Name, sheet.Grid).Found {
			return sheet.Name, sheet.Grid
		}
	}

	first := wb.Sheets[0]
	return first.Name, first.Grid
}
