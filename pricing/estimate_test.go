package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"led-proposal-engine/models"
)

func decodeDefaults(t *testing.T) map[string]interface{} {
	t.Helper()
	var config map[string]interface{}
	require.NoError(t, json.Unmarshal(defaultRates, &config))
	return config
}

func encode(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestEstimate_DefaultIndoorWall(t *testing.T) {
	engine := defaultEngine(t)
	params, _ := engine.Parameters(models.QuoteRequest{Width: 20, Height: 10, ClientName: "Riverside"})

	b := Estimate(params)

	assert.Equal(t, 200.0, b.ScreenArea)
	assert.InDelta(t, 19950.0, b.Section(SectionHardware), 0.001)
	assert.InDelta(t, 4395.0, b.Section(SectionStructural), 0.001)
	assert.InDelta(t, 9344.75, b.Section(SectionLabor), 0.001)
	assert.InDelta(t, 1650.0, b.Section(SectionShipping), 0.001)
	assert.InDelta(t, 4498.0, b.Section(SectionPMEngineering), 0.001)
	assert.InDelta(t, 39837.75, b.TotalCost, 0.001)
	assert.InDelta(t, 56911.07, b.SellPrice, 0.001)
	assert.InDelta(t, 853.67, b.Bond, 0.001)
	assert.InDelta(t, 57764.74, b.FinalPrice, 0.001)
	assert.InDelta(t, 17073.32, b.GrossProfit, 0.001)
}

func TestEstimate_CurvedAndRearServiceCostMore(t *testing.T) {
	engine := defaultEngine(t)
	flat, _ := engine.Parameters(models.QuoteRequest{Width: 20, Height: 10, ClientName: "A"})
	curved, _ := engine.Parameters(models.QuoteRequest{Width: 20, Height: 10, ClientName: "A", Curved: true, ServiceAccess: "rear"})

	base := Estimate(flat)
	more := Estimate(curved)

	assert.InDelta(t, base.Section(SectionHardware)*1.15, more.Section(SectionHardware), 0.01)
	assert.Greater(t, more.Section(SectionLabor), base.Section(SectionLabor))
	assert.Equal(t, base.Section(SectionShipping), more.Section(SectionShipping))
}

func TestEstimate_MarginOnlyMovesPriceSide(t *testing.T) {
	engine := defaultEngine(t)
	low, _ := engine.Parameters(models.QuoteRequest{Width: 12, Height: 6, ClientName: "A", Margin: 0.2})
	high, _ := engine.Parameters(models.QuoteRequest{Width: 12, Height: 6, ClientName: "A", Margin: 0.4})

	a, b := Estimate(low), Estimate(high)

	assert.Equal(t, a.Sections, b.Sections)
	assert.Equal(t, a.TotalCost, b.TotalCost)
	assert.Greater(t, b.SellPrice, a.SellPrice)
	assert.InDelta(t, b.SellPrice*0.4, b.GrossProfit, 0.02)
}

func TestClientEstimate(t *testing.T) {
	b := models.CostBreakdown{ScreenArea: 200, TotalCost: 100, FinalPrice: 150, GrossProfit: 45, SellPrice: 145, Bond: 5}

	est := ClientEstimate(b, "outdoor")

	assert.Equal(t, models.Estimate{ScreenArea: 200, Environment: "outdoor", TotalCost: 100, FinalPrice: 150, GrossProfit: 45}, est)
}
