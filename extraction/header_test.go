package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"led-proposal-engine/models"
)

func blankGrid(rows int) models.SheetGrid {
	grid := make(models.SheetGrid, rows)
	for i := range grid {
		grid[i] = []string{"", "", ""}
	}
	return grid
}

func TestLocateHeader_RequiresTwoKeywords(t *testing.T) {
	grid := blankGrid(40)
	grid[4] = []string{"Item", "Selling Price", "Notes"}
	grid[34] = []string{"Item", "Selling Price", "Cost", "Margin"}

	res := LocateHeader(grid)

	assert.False(t, res.Found)
	assert.Equal(t, -1, res.RowIndex)
	assert.Empty(t, res.Columns)
}

func TestLocateHeader_LastScannedRow(t *testing.T) {
	grid := blankGrid(40)
	grid[HeaderScanLimit-1] = []string{"Description", "Cost", "Margin %"}

	res := LocateHeader(grid)
	require.True(t, res.Found)
	assert.Equal(t, HeaderScanLimit-1, res.RowIndex)

	grid = blankGrid(40)
	grid[HeaderScanLimit] = []string{"Description", "Cost", "Margin %"}
	assert.False(t, LocateHeader(grid).Found)
}

func TestLocateHeader_CaseInsensitive(t *testing.T) {
	grid := models.SheetGrid{
		{"COST ANALYSIS"},
		{"DESCRIPTION", "SELLING PRICE", "COST"},
	}
	res := LocateHeader(grid)
	require.True(t, res.Found)
	assert.Equal(t, 1, res.RowIndex)
}

func TestLocateHeader_TitleCellCountsOnce(t *testing.T) {
	grid := models.SheetGrid{
		{"Cost & Margin Analysis"},
		{"Description", "Selling Price", "Cost", "Margin"},
		{"LED Wall", "$5,000", "$3,500", "30%"},
	}

	res := LocateHeader(grid)
	require.True(t, res.Found)
	assert.Equal(t, 1, res.RowIndex)
	col, ok := res.Columns.Column(models.FieldSellingPrice)
	require.True(t, ok)
	assert.Equal(t, 1, col)

	assert.Equal(t, 1, headerHits([]string{"Selling Price / Cost / Margin"}))
	assert.Equal(t, 2, headerHits([]string{"Cost", "Cost", "Margin %"}))
}

func TestMapColumns(t *testing.T) {
	columns := MapColumns([]string{
		"Line Item", "Pitch (mm)", "Height", "Width", "Qty", "Brightness",
		"Unit Cost", "Selling Price", "Sale Price", "Margin", "",
	})

	expected := models.ColumnMap{
		models.FieldDisplayName:  0,
		models.FieldPitch:        1,
		models.FieldHeight:       2,
		models.FieldWidth:        3,
		models.FieldQuantity:     4,
		models.FieldBrightness:   5,
		models.FieldCost:         6,
		models.FieldSellingPrice: 7,
		models.FieldMargin:       9,
	}
	assert.Equal(t, expected, columns)
}

func TestMapColumns_FirstFieldWinsPerCell(t *testing.T) {
	// "Display Price" reads as a name column before it reads as a price
	columns := MapColumns([]string{"Display Price", "Price"})

	col, ok := columns.Column(models.FieldDisplayName)
	require.True(t, ok)
	assert.Equal(t, 0, col)

	col, ok = columns.Column(models.FieldSellingPrice)
	require.True(t, ok)
	assert.Equal(t, 1, col)
}
