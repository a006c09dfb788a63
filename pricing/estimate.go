package pricing

import (
	"github.com/shopspring/decimal"

	"led-proposal-engine/models"
)

// Section names shared with the audit workbook
const (
	SectionHardware      = "Hardware"
	SectionStructural    = "Structural"
	SectionLabor         = "Labor"
	SectionShipping      = "Shipping"
	SectionPMEngineering = "PM_Engineering"
)

// Estimate evaluates the pricing computation in Go. It performs the same
// operations in the same order as the audit workbook formulas, so the two
// agree to the cent.
func Estimate(p models.CostParameters) models.CostBreakdown {
	r := p.Rates
	curved := 0.0
	if p.Curved {
		curved = 1
	}

	area := p.WidthFt * p.HeightFt
	displayCost := area * p.BasePricePerSqFt
	curvedPremium := displayCost * r.CurvedPremiumPct * curved
	spareParts := (displayCost + curvedPremium) * r.SparePartsPct
	hardware := displayCost + curvedPremium + spareParts

	structural := hardware*r.MountingPct + area*r.SteelRatePerSqFt

	installLabor := area * r.InstallHoursPerSqFt * r.LaborRate
	labor := installLabor +
		hardware*r.ElectricalPct +
		structural*r.StructuralLaborPct +
		installLabor*r.RearServicePct

	shipping := p.WidthFt*p.HeightFt*r.ShippingRatePerSqFt + r.CratingFee

	pmEngineering := hardware*r.PMPct + r.EngineeringFee + r.PermitFee

	totalCost := hardware + structural + labor + shipping + pmEngineering
	sellPrice := totalCost / (1 - p.DesiredMargin)
	bond := sellPrice * r.BondRate

	return models.CostBreakdown{
		ScreenArea: roundCents(area),
		Sections: []models.CostSection{
			{Section: SectionHardware, Total: roundCents(hardware)},
			{Section: SectionStructural, Total: roundCents(structural)},
			{Section: SectionLabor, Total: roundCents(labor)},
			{Section: SectionShipping, Total: roundCents(shipping)},
			{Section: SectionPMEngineering, Total: roundCents(pmEngineering)},
		},
		TotalCost:   roundCents(totalCost),
		Margin:      p.DesiredMargin,
		SellPrice:   roundCents(sellPrice),
		Bond:        roundCents(bond),
		FinalPrice:  roundCents(sellPrice + bond),
		GrossProfit: roundCents(sellPrice - totalCost),
	}
}

// ClientEstimate projects a breakdown to the figures a client may see
func ClientEstimate(b models.CostBreakdown, environment string) models.Estimate {
	return models.Estimate{
		ScreenArea:  b.ScreenArea,
		Environment: environment,
		TotalCost:   b.TotalCost,
		FinalPrice:  b.FinalPrice,
		GrossProfit: b.GrossProfit,
	}
}

func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
