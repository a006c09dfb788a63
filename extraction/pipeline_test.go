package extraction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"led-proposal-engine/models"
)

const overviewSheet = `Project Overview
Client,Riverside Stadium
Prepared,2024-03-01
`

const costAnalysisSheet = `Cost Analysis,,,
Riverside Stadium,,,
Description,Selling Price,Cost,Margin
"10mm Outdoor Ribbon Board, 40'h x 20'w, 5000 nits","$125,000.00","$90,000.00",28%
,,,
Subtotal,"$100,000.00",,
Tax,"$8,000.00",,
Performance Bond,"$1,500.00",,
Total,"$109,500.00",,
`

func TestExtract_TwoSheetWorkbook(t *testing.T) {
	res, err := Extract([]models.SheetSource{
		{Name: "Overview", Content: overviewSheet},
		{Name: "Cost Analysis", Content: costAnalysisSheet},
	})
	require.NoError(t, err)

	assert.Equal(t, "Cost Analysis", res.SheetName)
	assert.Equal(t, 2, res.Header.RowIndex)

	displays := res.Quote.Displays()
	require.Len(t, displays, 1)
	item := displays[0]
	assert.Equal(t, "10mm Outdoor Ribbon Board, 40'h x 20'w, 5000 nits", item.Name)
	assert.Equal(t, 125000.0, item.SellingPrice)
	assert.Equal(t, 1, item.Quantity)
	require.NotNil(t, item.Pitch)
	assert.Equal(t, "10", *item.Pitch)
	require.NotNil(t, item.Dimensions)
	assert.Equal(t, models.Dimensions{Height: 40, Width: 20}, *item.Dimensions)
	require.NotNil(t, item.Brightness)
	assert.Equal(t, "5000", *item.Brightness)

	assert.Equal(t, models.PricingTotals{Subtotal: 100000, Tax: 8000, Bond: 1500, Total: 109500}, res.Quote.Pricing())
	assert.Empty(t, res.Quote.Warnings())

	assert.Equal(t, models.WorkbookOverview{
		SheetCount:    2,
		SheetNames:    []string{"Overview", "Cost Analysis"},
		SelectedSheet: "Cost Analysis",
		HeaderFound:   true,
		HeaderRow:     3,
	}, res.Summary.Workbook)
}

func TestExtract_NoLineItems(t *testing.T) {
	_, err := Extract([]models.SheetSource{
		{Name: "Bid", Content: "Description,Selling Price,Cost\nSubtotal Bid Amount,\"$10,000\",\n"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoLineItems)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "Bid", extractionErr.Sheet)
	assert.Equal(t, "line items", extractionErr.Stage)
}

func TestExtract_NoUsableSheets(t *testing.T) {
	_, err := Extract([]models.SheetSource{{Name: "Blank", Content: ""}})
	assert.ErrorIs(t, err, ErrNoUsableSheets)
}

func TestExtract_ConcurrentRunsDoNotShareState(t *testing.T) {
	sources := []models.SheetSource{{Name: "Cost Analysis", Content: costAnalysisSheet}}
	done := make(chan []string, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			res, err := Extract(sources)
			if err != nil {
				done <- []string{err.Error()}
				return
			}
			done <- res.Quote.Warnings()
		}()
	}
	for i := 0; i < cap(done); i++ {
		assert.Empty(t, <-done)
	}
}
