package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"led-proposal-engine/models"
)

func TestIsLineItem(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected bool
	}{
		{"Subtotal Bid Amount", 100000, false},
		{"Bid Amount", 5000, false},
		{"Total LED Package", 5000, false},
		{"LED Video Wall", 1, true},
		{"Main Scoreboards", 250000, true},
		{"Concourse LCD", 900, true},
		{"LED Screen", 0, false},
		{"LED Screen", -10, false},
		{"", 100, false},
		{"Installed hardware", 100, false},
		{"Ribbon board fascia", 100, true},
		{"Outdoor Ribbonboard 10mm", 5000, true},
		{"Lobby Touchscreen", 5000, true},
		{"MicroLED wall", 5000, true},
		{"Videoscreen 6mm", 5000, true},
		{"Scheduled maintenance", 5000, false},
		{"Installed LED screen", 5000, true},
		{"Bundled controller", 5000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLineItem(tt.name, tt.price))
		})
	}
}

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		input    string
		expected *models.Dimensions
	}{
		{"40'h x 20'w", &models.Dimensions{Height: 40, Width: 20}},
		{"Board 10 X 30", &models.Dimensions{Height: 10, Width: 30}},
		{"12ft x 24.5ft", &models.Dimensions{Height: 12, Width: 24.5}},
		{"6×10", &models.Dimensions{Height: 6, Width: 10}},
		{`8" x 4"`, &models.Dimensions{Height: 8, Width: 4}},
		{"no size given", nil},
		{"3.9mm", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDimensions(tt.input))
		})
	}
}

func TestParsePitchAndBrightness(t *testing.T) {
	pitch := ParsePitch("Indoor 3.9 mm fine pitch")
	require.NotNil(t, pitch)
	assert.Equal(t, "3.9", *pitch)

	pitch = ParsePitch("6")
	require.NotNil(t, pitch)
	assert.Equal(t, "6", *pitch)

	assert.Nil(t, ParsePitch("P-series"))

	brightness := ParseBrightness("1,500 nit indoor")
	require.NotNil(t, brightness)
	assert.Equal(t, "1500", *brightness)

	assert.Nil(t, ParseBrightness("High"))
}

func TestExtractLineItems_ColumnsAndNameFallbacks(t *testing.T) {
	grid := models.SheetGrid{
		{"Display", "Qty", "Pitch", "Height", "Width", "Selling Price", "Cost"},
		{"North LED Ribbon 2x100", "2", "", "", "", "$40,000", "$30,000"},
		{"South Scoreboard 16mm 6000 nits", "0", "10mm", "12", "30", "$85,000.456", "$60,000"},
		{"Subtotal Bid Amount", "", "", "", "", "$125,000", ""},
		{"Freight", "", "", "", "", "$2,000", ""},
	}
	header := LocateHeader(grid)
	require.True(t, header.Found)

	run := NewRun()
	items := ExtractLineItems(run, grid, header)
	require.Len(t, items, 2)
	assert.Empty(t, run.Warnings())

	north := items[0]
	assert.Equal(t, "North LED Ribbon 2x100", north.Name)
	assert.Equal(t, 40000.0, north.SellingPrice)
	assert.Equal(t, 2, north.Quantity)
	assert.Nil(t, north.Pitch)
	assert.Nil(t, north.Brightness)
	assert.Equal(t, &models.Dimensions{Height: 2, Width: 100}, north.Dimensions)

	south := items[1]
	assert.Equal(t, 85000.46, south.SellingPrice)
	assert.Equal(t, 1, south.Quantity)
	require.NotNil(t, south.Pitch)
	assert.Equal(t, "10", *south.Pitch, "pitch column beats the name")
	require.NotNil(t, south.Brightness)
	assert.Equal(t, "6000", *south.Brightness)
	assert.Equal(t, &models.Dimensions{Height: 12, Width: 30}, south.Dimensions)
}

func TestExtractLineItems_MissingColumns(t *testing.T) {
	t.Run("no header", func(t *testing.T) {
		run := NewRun()
		assert.Nil(t, ExtractLineItems(run, models.SheetGrid{{"LED", "5"}}, LocateHeader(nil)))
		assert.Empty(t, run.Warnings())
	})

	t.Run("no selling price column", func(t *testing.T) {
		grid := models.SheetGrid{
			{"Description", "Cost", "Margin"},
			{"LED Wall", "$5", "20%"},
		}
		run := NewRun()
		assert.Nil(t, ExtractLineItems(run, grid, LocateHeader(grid)))
		require.Len(t, run.Warnings(), 1)
		assert.Contains(t, run.Warnings()[0], "selling price")
	})

	t.Run("no name column", func(t *testing.T) {
		grid := models.SheetGrid{
			{"", "Selling Price", "Cost"},
			{"LED Wall", "$5", "$3"},
		}
		run := NewRun()
		items := ExtractLineItems(run, grid, LocateHeader(grid))
		require.Len(t, items, 1)
		assert.Equal(t, "LED Wall", items[0].Name)
		require.Len(t, run.Warnings(), 1)
		assert.Contains(t, run.Warnings()[0], "first column")
	})
}
