package proposal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"led-proposal-engine/models"
)

func strPtr(s string) *string { return &s }

func sampleInput() Input {
	return Input{
		Brand:       Brand{Name: "Brightline Displays", Accent: "#0A7C3E"},
		ClientName:  "Riverside Stadium",
		ProjectName: "North End Scoreboard",
		Date:        time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Displays: []models.LineItem{{
			Name:         "10mm Outdoor Scoreboard",
			SellingPrice: 100000,
			Pitch:        strPtr("10"),
			Dimensions:   &models.Dimensions{Height: 20, Width: 40},
			Brightness:   strPtr("7500"),
			Quantity:     1,
		}},
		Pricing: PricingFromTotals(models.PricingTotals{Subtotal: 100000, Tax: 8000, Bond: 1500, Total: 109500}),
	}
}

func TestBuildDocument(t *testing.T) {
	doc, err := BuildDocument(sampleInput())
	require.NoError(t, err)

	assert.Equal(t, "Proposal for Riverside Stadium", doc.Title)
	assert.Equal(t, "Brightline Displays Proposal", doc.FooterLabel)

	var kinds []BlockKind
	var pricing *Table
	for _, b := range doc.Blocks {
		kinds = append(kinds, b.Kind)
		if b.Kind == BlockTable && b.Table.Class == "pricing" {
			pricing = b.Table
		}
	}
	assert.Equal(t, BlockHeading, kinds[0])
	assert.Contains(t, kinds, BlockPageBreak)
	assert.Equal(t, BlockSignature, kinds[len(kinds)-1])

	require.NotNil(t, pricing)
	assert.Equal(t, [][]string{
		{"Subtotal", "$100,000.00"},
		{"Sales tax", "$8,000.00"},
		{"Performance bond", "$1,500.00"},
	}, pricing.Rows)
	assert.Equal(t, []string{"Total", "$109,500.00"}, pricing.Footer)
}

func TestBuildDocument_Errors(t *testing.T) {
	in := sampleInput()
	in.Displays = nil
	_, err := BuildDocument(in)
	assert.Error(t, err)

	in = sampleInput()
	in.Pricing = nil
	_, err = BuildDocument(in)
	assert.Error(t, err)
}

func TestBuildDocument_SpecTable(t *testing.T) {
	doc, err := BuildDocument(sampleInput())
	require.NoError(t, err)

	var spec *Table
	for _, b := range doc.Blocks {
		if b.Kind == BlockTable && b.Table.Class == "spec" {
			spec = b.Table
			break
		}
	}
	require.NotNil(t, spec)
	assert.Equal(t, [][]string{
		{"Pixel pitch", "10 mm"},
		{"Dimensions", "20 ft H x 40 ft W"},
		{"Display area", "800 sq ft"},
		{"Brightness", "7500 nits"},
		{"Quantity", "1"},
	}, spec.Rows)
}

func TestRenderHTML_ClientSafe(t *testing.T) {
	breakdown := models.CostBreakdown{
		ScreenArea:  200,
		TotalCost:   39837.75,
		Margin:      0.3,
		SellPrice:   56911.07,
		Bond:        853.67,
		FinalPrice:  57764.74,
		GrossProfit: 17073.32,
	}
	params := models.CostParameters{
		WidthFt: 20, HeightFt: 10, PixelPitchMM: 10,
		Environment: "indoor", ProductType: "video_wall",
	}

	in := sampleInput()
	in.Displays = []models.LineItem{DisplayFromParameters(params)}
	in.Pricing = PricingFromBreakdown(breakdown)
	in.Notes = "Install during the **off season**."

	doc, err := BuildDocument(in)
	require.NoError(t, err)
	page, err := RenderHTML(doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "Indoor Video Wall display")
	assert.Contains(t, page, "$56,911.07")
	assert.Contains(t, page, "$57,764.74")
	assert.Contains(t, page, "<strong>off season</strong>")
	assert.Contains(t, page, "#0A7C3E")

	assert.NotContains(t, page, "$39,837.75", "total cost must stay internal")
	assert.NotContains(t, page, "$17,073.32", "gross profit must stay internal")
	assert.NotContains(t, page, "30.0%")
}

func TestRenderHTML_Defaults(t *testing.T) {
	in := sampleInput()
	in.Brand.Accent = "red;}body{display:none"
	in.Brand.Logo = "data:image/png;base64,iVBORw0KGgo="

	doc, err := BuildDocument(in)
	require.NoError(t, err)
	page, err := RenderHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, page, defaultAccent)
	assert.NotContains(t, page, "display:none")
	assert.Contains(t, page, `src="data:image/png;base64,iVBORw0KGgo="`)
	assert.Contains(t, page, "<tfoot>")
	assert.Contains(t, page, "Accepted for Riverside Stadium")
}

func TestDisplayFromParameters(t *testing.T) {
	d := DisplayFromParameters(models.CostParameters{
		WidthFt: 12, HeightFt: 6, PixelPitchMM: 3.9,
		Environment: "outdoor", ProductType: "lcd", Curved: true,
	})
	assert.Equal(t, "Curved Outdoor LCD display", d.Name)
	require.NotNil(t, d.Pitch)
	assert.Equal(t, "3.9", *d.Pitch)
	assert.Equal(t, 72.0, d.Dimensions.Area())
}

func TestFooterTemplate(t *testing.T) {
	footer := FooterTemplate("Smith & Sons Proposal")
	assert.Contains(t, footer, "Smith &amp; Sons Proposal — Page ")
	assert.Contains(t, footer, `<span class="pageNumber"></span>`)
	assert.Contains(t, footer, `<span class="totalPages"></span>`)
}

func TestDetectChromePath(t *testing.T) {
	path := t.TempDir() + "/chrome"
	require.NoError(t, writeFile(path))
	assert.Equal(t, path, DetectChromePath(path))
}
