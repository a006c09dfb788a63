package models

// CostSection is the total of one section of the pricing computation
type CostSection struct {
	Section string  `json:"section"` // Hardware, Structural, Labor, Shipping, PM_Engineering
	Total   float64 `json:"total"`
}

// CostBreakdown is the complete pricing calculation result.
// It is internal: only Estimate is ever returned to clients.
type CostBreakdown struct {
	ScreenArea  float64       `json:"screenArea"`
	Sections    []CostSection `json:"sections"`
	TotalCost   float64       `json:"totalCost"`
	Margin      float64       `json:"margin"`
	SellPrice   float64       `json:"sellPrice"`
	Bond        float64       `json:"bond"`
	FinalPrice  float64       `json:"finalPrice"`
	GrossProfit float64       `json:"grossProfit"`
}

// Section returns the total of the named section
func (b CostBreakdown) Section(name string) float64 {
	for _, s := range b.Sections {
		if s.Section == name {
			return s.Total
		}
	}
	return 0
}
