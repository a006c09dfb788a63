package pricing

import (
	"fmt"
	"log"
	"strings"

	"led-proposal-engine/models"
)

// Engine resolves quote inputs against the rates configuration
type Engine struct {
	config *RatesConfig
}

// NewEngine creates a pricing engine from a rates config file.
// An empty path loads the built-in defaults.
func NewEngine(configPath string) (*Engine, error) {
	config, source, err := LoadRates(configPath)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ PricingEngine: Successfully loaded rates config from %s", source)
	return &Engine{config: config}, nil
}

// NewEngineFromConfig wraps an already validated config
func NewEngineFromConfig(config *RatesConfig) *Engine {
	return &Engine{config: config}
}

// Config returns the rates configuration in use
func (e *Engine) Config() *RatesConfig {
	return e.config
}

// Parameters turns a calculator request into cost parameters.
// Optional fields are defaulted and unknown lookups fall back to the
// defaults with a warning.
func (e *Engine) Parameters(req models.QuoteRequest) (models.CostParameters, []string) {
	var warnings []string
	d := e.config.Defaults

	params := models.CostParameters{
		ClientName:    strings.TrimSpace(req.ClientName),
		ProjectName:   strings.TrimSpace(req.ProjectName),
		WidthFt:       req.Width,
		HeightFt:      req.Height,
		PixelPitchMM:  req.PixelPitch,
		Environment:   normalizeKey(req.Environment),
		ProductType:   normalizeKey(req.ProductCategory),
		MountingType:  normalizeKey(req.MountingType),
		SteelType:     normalizeKey(req.SteelType),
		ServiceType:   normalizeKey(req.ServiceAccess),
		Curved:        req.Curved,
		DesiredMargin: req.Margin,
	}

	if params.PixelPitchMM <= 0 {
		params.PixelPitchMM = d.PixelPitchMM
	}
	if params.Environment == "" {
		params.Environment = d.Environment
	}
	if params.ProductType == "" {
		params.ProductType = d.ProductCategory
	}
	if params.MountingType == "" {
		params.MountingType = d.MountingType
	}
	if params.SteelType == "" {
		params.SteelType = d.SteelType
	}
	if params.ServiceType == "" {
		params.ServiceType = d.ServiceAccess
	}
	if params.DesiredMargin <= 0 {
		params.DesiredMargin = d.Margin
	}

	warnings = append(warnings, e.resolve(&params)...)
	return params, warnings
}

// ParametersFromQuote derives cost parameters from an extracted quote so the
// audit workbook can rebuild its pricing. The largest display (by area) sets
// the dimensions, pitch, category and environment.
func (e *Engine) ParametersFromQuote(quote models.QuoteData, req models.ExtractRequest) (models.CostParameters, []string) {
	var warnings []string
	d := e.config.Defaults

	params := models.CostParameters{
		ClientName:    strings.TrimSpace(req.ClientName),
		ProjectName:   strings.TrimSpace(req.ProjectName),
		PixelPitchMM:  d.PixelPitchMM,
		Environment:   d.Environment,
		ProductType:   d.ProductCategory,
		MountingType:  d.MountingType,
		SteelType:     d.SteelType,
		ServiceType:   d.ServiceAccess,
		DesiredMargin: req.DesiredMargin,
		QuotedTotal:   quote.Pricing().Total,
	}
	if params.DesiredMargin <= 0 {
		params.DesiredMargin = d.Margin
	}

	displays := quote.Displays()
	lead, ok := largestDisplay(displays)
	if !ok {
		warnings = append(warnings, "no display dimensions found; area based costs in the audit workbook are zero")
		if len(displays) > 0 {
			lead = displays[0]
		}
	} else {
		params.WidthFt = lead.Dimensions.Width
		params.HeightFt = lead.Dimensions.Height
	}

	name := strings.ToLower(lead.Name)
	params.ProductType = e.categoryFromName(name)
	switch {
	case strings.Contains(name, "outdoor"):
		params.Environment = "outdoor"
	case strings.Contains(name, "indoor"):
		params.Environment = "indoor"
	}
	if lead.Pitch != nil {
		var pitch float64
		if _, err := fmt.Sscanf(*lead.Pitch, "%g", &pitch); err == nil && pitch > 0 {
			params.PixelPitchMM = pitch
		}
	}

	warnings = append(warnings, e.resolve(&params)...)
	return params, warnings
}

// resolve looks up the base price and the rate card for already defaulted parameters
func (e *Engine) resolve(params *models.CostParameters) []string {
	var warnings []string
	c := e.config
	d := c.Defaults

	envs, ok := c.BasePricePerSqFt[params.ProductType]
	if !ok {
		warnings = append(warnings, fmt.Sprintf("unknown product category %q; priced as %q", params.ProductType, d.ProductCategory))
		params.ProductType = d.ProductCategory
		envs = c.BasePricePerSqFt[params.ProductType]
	}
	base, ok := envs[params.Environment]
	if !ok {
		warnings = append(warnings, fmt.Sprintf("unknown environment %q; priced as %q", params.Environment, d.Environment))
		params.Environment = d.Environment
		base = c.BasePricePerSqFt[params.ProductType][params.Environment]
	}
	params.BasePricePerSqFt = roundCents(base * e.pitchMultiplier(params.PixelPitchMM))

	mountingPct, ok := c.Structural.MountingPct[params.MountingType]
	if !ok {
		warnings = append(warnings, fmt.Sprintf("unknown mounting type %q; priced as %q", params.MountingType, d.MountingType))
		params.MountingType = d.MountingType
		mountingPct = c.Structural.MountingPct[params.MountingType]
	}
	steelRate, ok := c.Structural.SteelRatePerSqFt[params.SteelType]
	if !ok {
		warnings = append(warnings, fmt.Sprintf("unknown steel type %q; priced as %q", params.SteelType, d.SteelType))
		params.SteelType = d.SteelType
		steelRate = c.Structural.SteelRatePerSqFt[params.SteelType]
	}

	rearPct := 0.0
	if params.ServiceType == "rear" {
		rearPct = c.Labor.RearServiceSurchargePct
	}

	params.Rates = models.RateCard{
		CurvedPremiumPct:    c.Hardware.CurvedPremiumPct,
		SparePartsPct:       c.Hardware.SparePartsPct,
		MountingPct:         mountingPct,
		SteelRatePerSqFt:    steelRate,
		InstallHoursPerSqFt: c.Labor.InstallHoursPerSqFt,
		LaborRate:           c.Labor.HourlyRate,
		ElectricalPct:       c.Labor.ElectricalPct,
		StructuralLaborPct:  c.Labor.StructuralLaborPct,
		RearServicePct:      rearPct,
		ShippingRatePerSqFt: c.Shipping.RatePerSqFt,
		CratingFee:          c.Shipping.CratingFee,
		PMPct:               c.PMEngineering.PMPct,
		EngineeringFee:      c.PMEngineering.EngineeringFee,
		PermitFee:           c.PMEngineering.PermitFee,
		BondRate:            c.BondRate,
	}
	return warnings
}

// pitchMultiplier returns the multiplier of the first adjustment covering the pitch
func (e *Engine) pitchMultiplier(pitchMM float64) float64 {
	adjustments := e.config.PitchAdjustments
	if len(adjustments) == 0 {
		return 1
	}
	for _, adj := range adjustments {
		if pitchMM <= adj.MaxPitchMM {
			return adj.Multiplier
		}
	}
	return adjustments[len(adjustments)-1].Multiplier
}

// categoryFromName infers the product category from display keywords in a lowercased name
func (e *Engine) categoryFromName(name string) string {
	for _, category := range []string{"scoreboard", "ribbon", "lcd"} {
		if strings.Contains(name, category) {
			if _, ok := e.config.BasePricePerSqFt[category]; ok {
				return category
			}
		}
	}
	return e.config.Defaults.ProductCategory
}

func largestDisplay(displays []models.LineItem) (models.LineItem, bool) {
	var lead models.LineItem
	found := false
	for _, d := range displays {
		if d.Dimensions == nil {
			continue
		}
		if !found || d.Dimensions.Area() > lead.Dimensions.Area() {
			lead = d
			found = true
		}
	}
	return lead, found
}

// normalizeKey lowercases a config key and joins words with underscores ("Video Wall" -> "video_wall")
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")
}
