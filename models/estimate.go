package models

// QuoteRequest represents the request body for the calculator-driven path
// Example: {
//   "width": 20,
//   "height": 10,
//   "clientName": "Riverside Stadium",
//   "pixelPitch": 10,
//   "environment": "outdoor",
//   "productCategory": "scoreboard",
//   "margin": 0.3,
//   "serviceAccess": "front",
//   "steelType": "galvanized"
// }
type QuoteRequest struct {
	Width           float64 `json:"width" validate:"gt=0"`  // feet
	Height          float64 `json:"height" validate:"gt=0"` // feet
	ClientName      string  `json:"clientName" validate:"required"`
	ProjectName     string  `json:"projectName,omitempty"`
	PixelPitch      float64 `json:"pixelPitch,omitempty" validate:"gte=0"` // mm, defaulted
	Environment     string  `json:"environment,omitempty" validate:"omitempty,oneof=indoor outdoor"`
	ProductCategory string  `json:"productCategory,omitempty"`
	Margin          float64 `json:"margin,omitempty" validate:"gte=0,lt=1"`
	ServiceAccess   string  `json:"serviceAccess,omitempty" validate:"omitempty,oneof=front rear"`
	SteelType       string  `json:"steelType,omitempty"`
	MountingType    string  `json:"mountingType,omitempty"`
	Curved          bool    `json:"curved,omitempty"`
	Notes           string  `json:"notes,omitempty"` // free-form markdown, may be machine generated
}

// ExtractRequest represents the request body for the spreadsheet-driven path
type ExtractRequest struct {
	ClientName    string        `json:"clientName" validate:"required"`
	ProjectName   string        `json:"projectName,omitempty"`
	DesiredMargin float64       `json:"desiredMargin,omitempty" validate:"gte=0,lt=1"`
	Notes         string        `json:"notes,omitempty"`
	Sheets        []SheetSource `json:"sheets" validate:"required,min=1,dive"`
}

// CostParameters are the raw inputs of the pricing computation.
// All lookups against the rates config have already been resolved.
type CostParameters struct {
	ClientName       string  `json:"clientName"`
	ProjectName      string  `json:"projectName"`
	WidthFt          float64 `json:"widthFt"`
	HeightFt         float64 `json:"heightFt"`
	PixelPitchMM     float64 `json:"pixelPitchMm"`
	Environment      string  `json:"environment"`
	ProductType      string  `json:"productType"`
	MountingType     string  `json:"mountingType"`
	SteelType        string  `json:"steelType"`
	ServiceType      string  `json:"serviceType"`
	Curved           bool    `json:"curved"`
	DesiredMargin    float64 `json:"desiredMargin"`
	BasePricePerSqFt float64 `json:"basePricePerSqFt"`
	// QuotedTotal is the total found on a source spreadsheet, 0 on the calculator path
	QuotedTotal float64  `json:"quotedTotal"`
	Rates       RateCard `json:"rates"`
}

// RateCard holds the business coefficients resolved for one quote
type RateCard struct {
	CurvedPremiumPct    float64 `json:"curvedPremiumPct"`
	SparePartsPct       float64 `json:"sparePartsPct"`
	MountingPct         float64 `json:"mountingPct"`
	SteelRatePerSqFt    float64 `json:"steelRatePerSqFt"`
	InstallHoursPerSqFt float64 `json:"installHoursPerSqFt"`
	LaborRate           float64 `json:"laborRate"` // per hour
	ElectricalPct       float64 `json:"electricalPct"`
	StructuralLaborPct  float64 `json:"structuralLaborPct"`
	RearServicePct      float64 `json:"rearServicePct"` // 0 for front service
	ShippingRatePerSqFt float64 `json:"shippingRatePerSqFt"`
	CratingFee          float64 `json:"cratingFee"`
	PMPct               float64 `json:"pmPct"`
	EngineeringFee      float64 `json:"engineeringFee"`
	PermitFee           float64 `json:"permitFee"`
	BondRate            float64 `json:"bondRate"`
}

// Estimate is the client-safe echo of a priced quote
type Estimate struct {
	ScreenArea  float64 `json:"screenArea"`
	Environment string  `json:"environment"`
	TotalCost   float64 `json:"totalCost"`
	FinalPrice  float64 `json:"finalPrice"`
	GrossProfit float64 `json:"grossProfit"`
}
