package models

// Dimensions of a display face, in the unit used by the source sheet (feet)
type Dimensions struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// Area returns height × width
func (d Dimensions) Area() float64 {
	return d.Height * d.Width
}

// LineItem is one billable display extracted from a cost sheet
type LineItem struct {
	Name         string      `json:"name"`
	SellingPrice float64     `json:"sellingPrice"`
	Pitch        *string     `json:"pitch"`      // e.g. "10" for 10mm
	Dimensions   *Dimensions `json:"dimensions"` // nil when not found
	Brightness   *string     `json:"brightness"` // e.g. "5000" for 5000 nits
	Quantity     int         `json:"quantity"`   // at least 1
}

// PricingTotals are the financial totals found on a cost sheet
type PricingTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Bond     float64 `json:"bond"`
	Total    float64 `json:"total"`
}

// QuoteData is the assembled result of one extraction run.
// It cannot be modified once built; accessors return copies.
type QuoteData struct {
	displays []LineItem
	pricing  PricingTotals
	warnings []string
}

// NewQuoteData copies its inputs into a new QuoteData
func NewQuoteData(displays []LineItem, pricing PricingTotals, warnings []string) QuoteData {
	q := QuoteData{pricing: pricing}
	q.displays = make([]LineItem, len(displays))
	for i, d := range displays {
		q.displays[i] = copyLineItem(d)
	}
	q.warnings = append([]string{}, warnings...)
	return q
}

// Displays returns a copy of the extracted line items in row order
func (q QuoteData) Displays() []LineItem {
	out := make([]LineItem, len(q.displays))
	for i, d := range q.displays {
		out[i] = copyLineItem(d)
	}
	return out
}

// Pricing returns the reconciled totals
func (q QuoteData) Pricing() PricingTotals {
	return q.pricing
}

// Warnings returns a copy of the advisory warnings
func (q QuoteData) Warnings() []string {
	return append([]string{}, q.warnings...)
}

func copyLineItem(d LineItem) LineItem {
	c := d
	if d.Pitch != nil {
		v := *d.Pitch
		c.Pitch = &v
	}
	if d.Dimensions != nil {
		v := *d.Dimensions
		c.Dimensions = &v
	}
	if d.Brightness != nil {
		v := *d.Brightness
		c.Brightness = &v
	}
	return c
}

// WorkbookOverview describes the source workbook for downstream consumers
type WorkbookOverview struct {
	SheetCount    int      `json:"sheetCount"`
	SheetNames    []string `json:"sheetNames"`
	SelectedSheet string   `json:"selectedSheet"`
	HeaderFound   bool     `json:"headerFound"`
	HeaderRow     int      `json:"headerRow"` // 1-based, 0 when not found
}

// ItemSpec is the machine-readable projection of a line item
type ItemSpec struct {
	Name         string      `json:"name"`
	SellingPrice float64     `json:"sellingPrice"`
	Quantity     int         `json:"quantity"`
	Pitch        string      `json:"pitch,omitempty"`
	Dimensions   *Dimensions `json:"dimensions,omitempty"`
	Brightness   string      `json:"brightness,omitempty"`
}

// QuoteSummary is the projection of a QuoteData handed to automated consumers
type QuoteSummary struct {
	Workbook WorkbookOverview `json:"workbook"`
	Totals   PricingTotals    `json:"totals"`
	Items    []ItemSpec       `json:"items"`
	Warnings []string         `json:"warnings"`
}
