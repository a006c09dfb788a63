package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"led-proposal-engine/models"
)

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine("")
	require.NoError(t, err)
	return engine
}

func TestLoadRates_Defaults(t *testing.T) {
	config, source, err := LoadRates("")
	require.NoError(t, err)
	assert.Equal(t, "built-in defaults", source)
	assert.Equal(t, "USD", config.Currency)
	assert.Equal(t, 0.015, config.BondRate)
}

func TestLoadRates_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	data := []byte(`{"currency":"USD","bondRate":0.02,
		"defaults":{"environment":"indoor","productCategory":"lcd","mountingType":"wall","steelType":"std","margin":0.25},
		"basePricePerSqFt":{"lcd":{"indoor":50}},
		"structural":{"mountingPct":{"wall":0.1},"steelRatePerSqFt":{"std":5}}}`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	config, source, err := LoadRates(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 0.02, config.BondRate)

	_, _, err = LoadRates(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read rates config")
}

func TestParseRates_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c map[string]interface{})
		errMsg string
	}{
		{"missing currency", func(c map[string]interface{}) { delete(c, "currency") }, "currency is required"},
		{"bond rate out of range", func(c map[string]interface{}) { c["bondRate"] = 1.5 }, "bondRate"},
		{"unknown default category", func(c map[string]interface{}) {
			c["defaults"].(map[string]interface{})["productCategory"] = "hologram"
		}, "hologram"},
		{"unsorted pitch table", func(c map[string]interface{}) {
			c["pitchAdjustments"] = []interface{}{
				map[string]interface{}{"maxPitchMm": 10, "multiplier": 1},
				map[string]interface{}{"maxPitchMm": 4, "multiplier": 1.3},
			}
		}, "sorted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := decodeDefaults(t)
			tt.mutate(config)
			_, err := ParseRates(encode(t, config))
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}

	_, err := ParseRates([]byte("{not json"))
	assert.ErrorContains(t, err, "failed to parse rates config")
}

func TestParameters_Defaults(t *testing.T) {
	engine := defaultEngine(t)

	params, warnings := engine.Parameters(models.QuoteRequest{Width: 20, Height: 10, ClientName: " Riverside "})

	assert.Empty(t, warnings)
	assert.Equal(t, "Riverside", params.ClientName)
	assert.Equal(t, 10.0, params.PixelPitchMM)
	assert.Equal(t, "indoor", params.Environment)
	assert.Equal(t, "video_wall", params.ProductType)
	assert.Equal(t, "wall", params.MountingType)
	assert.Equal(t, "standard", params.SteelType)
	assert.Equal(t, "front", params.ServiceType)
	assert.Equal(t, 0.3, params.DesiredMargin)
	assert.Equal(t, 95.0, params.BasePricePerSqFt)
	assert.Equal(t, 0.0, params.Rates.RearServicePct)
	assert.Equal(t, 0.015, params.Rates.BondRate)
}

func TestParameters_LookupsAndFallbacks(t *testing.T) {
	engine := defaultEngine(t)

	params, warnings := engine.Parameters(models.QuoteRequest{
		Width: 8, Height: 30, ClientName: "Arena",
		PixelPitch: 3.9, Environment: "outdoor", ProductCategory: "Video Wall",
		ServiceAccess: "rear", SteelType: "galvanized", MountingType: "hover",
		Margin: 0.25, Curved: true,
	})

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"hover"`)
	assert.Equal(t, "wall", params.MountingType)
	assert.Equal(t, "video_wall", params.ProductType)
	assert.Equal(t, 162.5, params.BasePricePerSqFt, "125 outdoor x 1.3 for a 3.9mm pitch")
	assert.Equal(t, 16.0, params.Rates.SteelRatePerSqFt)
	assert.Equal(t, 0.1, params.Rates.RearServicePct)
	assert.Equal(t, 0.25, params.DesiredMargin)
	assert.True(t, params.Curved)
}

func TestPitchMultiplier(t *testing.T) {
	engine := defaultEngine(t)

	assert.Equal(t, 1.6, engine.pitchMultiplier(1.5))
	assert.Equal(t, 1.3, engine.pitchMultiplier(4))
	assert.Equal(t, 1.0, engine.pitchMultiplier(10))
	assert.Equal(t, 0.9, engine.pitchMultiplier(16))
	assert.Equal(t, 0.9, engine.pitchMultiplier(5000))
}

func TestParametersFromQuote(t *testing.T) {
	engine := defaultEngine(t)
	pitch := "10"
	quote := models.NewQuoteData([]models.LineItem{
		{Name: "Concourse LCD", SellingPrice: 5000, Quantity: 4, Dimensions: &models.Dimensions{Height: 2, Width: 3}},
		{Name: "10mm Outdoor Ribbon Board", SellingPrice: 125000, Quantity: 1, Pitch: &pitch, Dimensions: &models.Dimensions{Height: 40, Width: 20}},
	}, models.PricingTotals{Subtotal: 100000, Tax: 8000, Bond: 1500, Total: 109500}, nil)

	params, warnings := engine.ParametersFromQuote(quote, models.ExtractRequest{ClientName: "Riverside", DesiredMargin: 0.2})

	assert.Empty(t, warnings)
	assert.Equal(t, 20.0, params.WidthFt)
	assert.Equal(t, 40.0, params.HeightFt)
	assert.Equal(t, "ribbon", params.ProductType)
	assert.Equal(t, "outdoor", params.Environment)
	assert.Equal(t, 10.0, params.PixelPitchMM)
	assert.Equal(t, 150.0, params.BasePricePerSqFt)
	assert.Equal(t, 0.2, params.DesiredMargin)
	assert.Equal(t, 109500.0, params.QuotedTotal)
}

func TestParametersFromQuote_NoDimensions(t *testing.T) {
	engine := defaultEngine(t)
	quote := models.NewQuoteData([]models.LineItem{{Name: "LED Scoreboard", SellingPrice: 10, Quantity: 1}}, models.PricingTotals{}, nil)

	params, warnings := engine.ParametersFromQuote(quote, models.ExtractRequest{ClientName: "X"})

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no display dimensions")
	assert.Equal(t, "scoreboard", params.ProductType)
	assert.Zero(t, params.WidthFt*params.HeightFt)
	assert.Equal(t, 0.3, params.DesiredMargin)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "video_wall", normalizeKey(" Video Wall "))
	assert.Equal(t, "video_wall", normalizeKey("video-wall"))
	assert.Equal(t, "", normalizeKey("  "))
}
