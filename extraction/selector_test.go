package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"led-proposal-engine/models"
)

func workbookOf(sheets ...models.NamedSheet) *models.Workbook {
	wb := &models.Workbook{}
	for _, s := range sheets {
		wb.Add(s.Name, s.Grid)
	}
	return wb
}

var headerGrid = models.SheetGrid{{"Description", "Selling Price", "Cost"}}

func TestSelectSheet_PriorityName(t *testing.T) {
	wb := workbookOf(
		models.NamedSheet{Name: "Summary", Grid: headerGrid},
		models.NamedSheet{Name: "Final BID", Grid: models.SheetGrid{{"x"}}},
		models.NamedSheet{Name: "Margin Analysis", Grid: headerGrid},
	)

	name, grid := SelectSheet(NewRun(), wb)
	assert.Equal(t, "Final BID", name)
	assert.Equal(t, models.SheetGrid{{"x"}}, grid)
}

func TestSelectSheet_HeaderFallback(t *testing.T) {
	wb := workbookOf(
		models.NamedSheet{Name: "Notes", Grid: models.SheetGrid{{"hello"}}},
		models.NamedSheet{Name: "Pricing", Grid: headerGrid},
	)

	name, _ := SelectSheet(NewRun(), wb)
	assert.Equal(t, "Pricing", name)
}

func TestSelectSheet_FirstSheetFallback(t *testing.T) {
	wb := workbookOf(
		models.NamedSheet{Name: "One", Grid: models.SheetGrid{{"a"}}},
		models.NamedSheet{Name: "Two", Grid: models.SheetGrid{{"b"}}},
	)

	name, _ := SelectSheet(NewRun(), wb)
	assert.Equal(t, "One", name)
}

func TestSelectSheet_EmptyWorkbook(t *testing.T) {
	name, grid := SelectSheet(NewRun(), &models.Workbook{})
	assert.Empty(t, name)
	assert.Nil(t, grid)
}

func TestRun_HeaderScannedOncePerRun(t *testing.T) {
	run := NewRun()
	grid := models.SheetGrid{{"Selling Price", "Cost"}}
	first := run.header("S", grid)

	// A changed grid under the same name is not rescanned within the run
	second := run.header("S", models.SheetGrid{{"nothing"}})
	assert.Equal(t, first, second)

	// A fresh run starts with no bookkeeping
	assert.False(t, NewRun().header("S", models.SheetGrid{{"nothing"}}).Found)
}
