package extraction

import (
	"led-proposal-engine/models"
)

// Assemble merges extracted line items, totals and warnings into an immutable QuoteData.
// An empty item list is fatal: nothing may be generated from zero displays.
func Assemble(items []models.LineItem, totals models.PricingTotals, warnings []string) (models.QuoteData, error) {
	if len(items) == 0 {
		return models.QuoteData{}, ErrNoLineItems
	}
	return models.NewQuoteData(items, totals, warnings), nil
}

// Summarize projects a QuoteData into the machine-readable summary.
// It has no side effects.
func Summarize(quote models.QuoteData, overview models.WorkbookOverview) models.QuoteSummary {
	displays := quote.Displays()
	items := make([]models.ItemSpec, 0, len(displays))
	for _, d := range displays {
		spec := models.ItemSpec{
			Name:         d.Name,
			SellingPrice: d.SellingPrice,
			Quantity:     d.Quantity,
			Dimensions:   d.Dimensions,
		}
		if d.Pitch != nil {
			spec.Pitch = *d.Pitch
		}
		if d.Brightness != nil {
			spec.Brightness = *d.Brightness
		}
		items = append(items, spec)
	}

	return models.QuoteSummary{
		Workbook: overview,
		Totals:   quote.Pricing(),
		Items:    items,
		Warnings: quote.Warnings(),
	}
}
