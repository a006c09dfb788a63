package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"led-proposal-engine/models"
)

func strPtr(s string) *string { return &s }

func TestAssemble_EmptyItemsIsFatal(t *testing.T) {
	_, err := Assemble(nil, models.PricingTotals{Total: 10}, []string{"w"})
	assert.ErrorIs(t, err, ErrNoLineItems)
}

func TestAssemble_QuoteIsImmutable(t *testing.T) {
	items := []models.LineItem{{
		Name:         "LED Wall",
		SellingPrice: 10,
		Pitch:        strPtr("4"),
		Dimensions:   &models.Dimensions{Height: 1, Width: 2},
		Quantity:     1,
	}}
	warnings := []string{"first"}

	quote, err := Assemble(items, models.PricingTotals{Total: 10}, warnings)
	require.NoError(t, err)

	// Mutating the inputs and the returned copies leaves the quote untouched
	items[0].Name = "changed"
	*items[0].Pitch = "99"
	warnings[0] = "changed"
	displays := quote.Displays()
	displays[0].Dimensions.Width = 500

	again := quote.Displays()
	assert.Equal(t, "LED Wall", again[0].Name)
	assert.Equal(t, "4", *again[0].Pitch)
	assert.Equal(t, 2.0, again[0].Dimensions.Width)
	assert.Equal(t, []string{"first"}, quote.Warnings())
}

func TestSummarize(t *testing.T) {
	quote := models.NewQuoteData([]models.LineItem{
		{Name: "LED Wall", SellingPrice: 10, Pitch: strPtr("4"), Brightness: strPtr("800"), Quantity: 3},
		{Name: "LCD", SellingPrice: 5, Quantity: 1},
	}, models.PricingTotals{Subtotal: 15, Total: 15}, []string{"note"})
	overview := models.WorkbookOverview{SheetCount: 1, SheetNames: []string{"Bid"}, SelectedSheet: "Bid", HeaderFound: true, HeaderRow: 2}

	summary := Summarize(quote, overview)

	assert.Equal(t, overview, summary.Workbook)
	assert.Equal(t, quote.Pricing(), summary.Totals)
	assert.Equal(t, []string{"note"}, summary.Warnings)
	require.Len(t, summary.Items, 2)
	assert.Equal(t, models.ItemSpec{Name: "LED Wall", SellingPrice: 10, Quantity: 3, Pitch: "4", Brightness: "800"}, summary.Items[0])
	assert.Equal(t, models.ItemSpec{Name: "LCD", SellingPrice: 5, Quantity: 1}, summary.Items[1])

	assert.Equal(t, summary, Summarize(quote, overview), "projection is pure")
}
