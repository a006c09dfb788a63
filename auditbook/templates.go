package auditbook

import (
	"fmt"
	"strconv"

	"led-proposal-engine/models"
)

// rawDataPassphrase protects the raw trace sheet from accidental edits
const rawDataPassphrase = "audit-trace"

func hardwareSheet(p models.CostParameters) SheetSpec {
	return SheetSpec{Name: SheetHardware, Rows: []RowSpec{
		number("width", "Screen width (ft)", p.WidthFt, FormatNumber, ""),
		number("height", "Screen height (ft)", p.HeightFt, FormatNumber, ""),
		formula("area", "Screen area", "{width}*{height}", FormatArea, "width x height"),
		number("basePrice", "Base price per sq ft", p.BasePricePerSqFt, FormatCurrency,
			fmt.Sprintf("%s %s at %smm", p.ProductType, p.Environment, strconv.FormatFloat(p.PixelPitchMM, 'f', -1, 64))),
		formula("displayCost", "Display hardware", "{area}*{basePrice}", FormatCurrency, ""),
		number("curved", "Curved (1 = yes)", boolNumber(p.Curved), FormatNumber, ""),
		number("curvedPremiumPct", "Curved premium", p.Rates.CurvedPremiumPct, FormatPercent, "applies to curved displays only"),
		formula("curvedPremium", "Curved premium amount", "{displayCost}*{curvedPremiumPct}*{curved}", FormatCurrency, ""),
		number("sparePartsPct", "Spare parts", p.Rates.SparePartsPct, FormatPercent, ""),
		formula("spareParts", "Spare parts amount", "({displayCost}+{curvedPremium})*{sparePartsPct}", FormatCurrency, ""),
		formula("total", "Hardware total", "{displayCost}+{curvedPremium}+{spareParts}", FormatCurrency, ""),
	}}
}

func structuralSheet(p models.CostParameters) SheetSpec {
	return SheetSpec{Name: SheetStructural, Rows: []RowSpec{
		text("mountingType", "Mounting type", p.MountingType),
		number("mountingPct", "Mounting structure", p.Rates.MountingPct, FormatPercent, "of hardware total"),
		formula("mountingCost", "Mounting structure amount", "{Hardware.total}*{mountingPct}", FormatCurrency, ""),
		text("steelType", "Steel type", p.SteelType),
		number("steelRate", "Steel per sq ft", p.Rates.SteelRatePerSqFt, FormatCurrency, ""),
		formula("steelCost", "Steel amount", "{Hardware.area}*{steelRate}", FormatCurrency, ""),
		formula("total", "Structural total", "{mountingCost}+{steelCost}", FormatCurrency, ""),
	}}
}

func laborSheet(p models.CostParameters) SheetSpec {
	return SheetSpec{Name: SheetLabor, Rows: []RowSpec{
		number("installHoursPerSqFt", "Install hours per sq ft", p.Rates.InstallHoursPerSqFt, FormatNumber, ""),
		formula("installHours", "Install hours", "{Hardware.area}*{installHoursPerSqFt}", FormatNumber, ""),
		number("laborRate", "Labor rate per hour", p.Rates.LaborRate, FormatCurrency, ""),
		formula("installLabor", "Installation labor", "{installHours}*{laborRate}", FormatCurrency, ""),
		number("electricalPct", "Electrical", p.Rates.ElectricalPct, FormatPercent, "of hardware total"),
		formula("electrical", "Electrical amount", "{Hardware.total}*{electricalPct}", FormatCurrency, ""),
		number("structuralLaborPct", "Structural labor", p.Rates.StructuralLaborPct, FormatPercent, "of structural total"),
		formula("structuralLabor", "Structural labor amount", "{Structural.total}*{structuralLaborPct}", FormatCurrency, ""),
		number("rearServicePct", "Rear service surcharge", p.Rates.RearServicePct, FormatPercent, p.ServiceType+" service"),
		formula("rearService", "Rear service amount", "{installLabor}*{rearServicePct}", FormatCurrency, ""),
		formula("total", "Labor total", "{installLabor}+{electrical}+{structuralLabor}+{rearService}", FormatCurrency, ""),
	}}
}

func shippingSheet(p models.CostParameters) SheetSpec {
	return SheetSpec{Name: SheetShipping, Rows: []RowSpec{
		number("width", "Screen width (ft)", p.WidthFt, FormatNumber, ""),
		number("height", "Screen height (ft)", p.HeightFt, FormatNumber, ""),
		formula("area", "Crated area", "{width}*{height}", FormatArea, ""),
		number("rate", "Freight per sq ft", p.Rates.ShippingRatePerSqFt, FormatCurrency, ""),
		formula("freight", "Freight amount", "{area}*{rate}", FormatCurrency, ""),
		number("cratingFee", "Crating", p.Rates.CratingFee, FormatCurrency, ""),
		formula("total", "Shipping total", "{freight}+{cratingFee}", FormatCurrency, ""),
	}}
}

func pmEngineeringSheet(p models.CostParameters) SheetSpec {
	return SheetSpec{Name: SheetPMEngineering, Rows: []RowSpec{
		number("pmPct", "Project management", p.Rates.PMPct, FormatPercent, "of hardware total"),
		formula("projectManagement", "Project management amount", "{Hardware.total}*{pmPct}", FormatCurrency, ""),
		number("engineeringFee", "Engineering", p.Rates.EngineeringFee, FormatCurrency, ""),
		number("permitFee", "Permits", p.Rates.PermitFee, FormatCurrency, ""),
		formula("total", "PM & engineering total", "{projectManagement}+{engineeringFee}+{permitFee}", FormatCurrency, ""),
	}}
}

func marginsSheet(p models.CostParameters) SheetSpec {
	return SheetSpec{Name: SheetMargins, Rows: []RowSpec{
		formula("hardware", "Hardware", "{Hardware.total}", FormatCurrency, ""),
		formula("structural", "Structural", "{Structural.total}", FormatCurrency, ""),
		formula("labor", "Labor", "{Labor.total}", FormatCurrency, ""),
		formula("shipping", "Shipping", "{Shipping.total}", FormatCurrency, ""),
		formula("pmEngineering", "PM & engineering", "{PM_Engineering.total}", FormatCurrency, ""),
		formula("totalCost", "Total cost", "{hardware}+{structural}+{labor}+{shipping}+{pmEngineering}", FormatCurrency, ""),
		number("margin", "Desired margin", p.DesiredMargin, FormatPercent, "on sell price"),
		formula("sellPrice", "Sell price", "{totalCost}/(1-{margin})", FormatCurrency, ""),
		number("bondRate", "Performance bond", p.Rates.BondRate, FormatPercent, "of sell price"),
		formula("bond", "Bond amount", "{sellPrice}*{bondRate}", FormatCurrency, ""),
		formula("finalPrice", "Final price", "{sellPrice}+{bond}", FormatCurrency, ""),
		formula("grossProfit", "Gross profit", "{sellPrice}-{totalCost}", FormatCurrency, ""),
		formula("area", "Screen area", "{Hardware.area}", FormatArea, ""),
		formula("pricePerSqFt", "Final price per sq ft", "IF({area}=0,0,{finalPrice}/{area})", FormatCurrency, ""),
	}}
}

func summarySheet(p models.CostParameters) SheetSpec {
	return SheetSpec{Name: SheetSummary, Rows: []RowSpec{
		text("client", "Client", p.ClientName),
		text("project", "Project", p.ProjectName),
		text("product", "Product", p.ProductType),
		text("environment", "Environment", p.Environment),
		text("service", "Service access", p.ServiceType),
		formula("screenArea", "Screen area", "{Margins.area}", FormatArea, ""),
		formula("totalCost", "Total cost", "{Margins.totalCost}", FormatCurrency, ""),
		formula("margin", "Margin", "{Margins.margin}", FormatPercent, ""),
		formula("sellPrice", "Sell price", "{Margins.sellPrice}", FormatCurrency, ""),
		formula("bond", "Performance bond", "{Margins.bond}", FormatCurrency, ""),
		formula("finalPrice", "Final price", "{Margins.finalPrice}", FormatCurrency, ""),
		formula("grossProfit", "Gross profit", "{Margins.grossProfit}", FormatCurrency, ""),
		formula("pricePerSqFt", "Final price per sq ft", "{Margins.pricePerSqFt}", FormatCurrency, ""),
		number("quotedTotal", "Quoted total (source sheet)", p.QuotedTotal, FormatCurrency, "0 when priced from the calculator"),
		formula("variance", "Variance to quoted total", "IF({quotedTotal}=0,0,{finalPrice}-{quotedTotal})", FormatCurrency, ""),
	}}
}

// rawDataSheet mirrors every input unprocessed
func rawDataSheet(p models.CostParameters) SheetSpec {
	r := p.Rates
	return SheetSpec{Name: SheetRawData, Hidden: true, Protected: true, Rows: []RowSpec{
		text("clientName", "clientName", p.ClientName),
		text("projectName", "projectName", p.ProjectName),
		number("widthFt", "widthFt", p.WidthFt, FormatNumber, ""),
		number("heightFt", "heightFt", p.HeightFt, FormatNumber, ""),
		number("pixelPitchMm", "pixelPitchMm", p.PixelPitchMM, FormatNumber, ""),
		text("environment", "environment", p.Environment),
		text("productType", "productType", p.ProductType),
		text("mountingType", "mountingType", p.MountingType),
		text("steelType", "steelType", p.SteelType),
		text("serviceType", "serviceType", p.ServiceType),
		number("curved", "curved", boolNumber(p.Curved), FormatNumber, ""),
		number("desiredMargin", "desiredMargin", p.DesiredMargin, FormatPercent, ""),
		number("basePricePerSqFt", "basePricePerSqFt", p.BasePricePerSqFt, FormatCurrency, ""),
		number("quotedTotal", "quotedTotal", p.QuotedTotal, FormatCurrency, ""),
		number("curvedPremiumPct", "rates.curvedPremiumPct", r.CurvedPremiumPct, FormatPercent, ""),
		number("sparePartsPct", "rates.sparePartsPct", r.SparePartsPct, FormatPercent, ""),
		number("mountingPct", "rates.mountingPct", r.MountingPct, FormatPercent, ""),
		number("steelRatePerSqFt", "rates.steelRatePerSqFt", r.SteelRatePerSqFt, FormatCurrency, ""),
		number("installHoursPerSqFt", "rates.installHoursPerSqFt", r.InstallHoursPerSqFt, FormatNumber, ""),
		number("laborRate", "rates.laborRate", r.LaborRate, FormatCurrency, ""),
		number("electricalPct", "rates.electricalPct", r.ElectricalPct, FormatPercent, ""),
		number("structuralLaborPct", "rates.structuralLaborPct", r.StructuralLaborPct, FormatPercent, ""),
		number("rearServicePct", "rates.rearServicePct", r.RearServicePct, FormatPercent, ""),
		number("shippingRatePerSqFt", "rates.shippingRatePerSqFt", r.ShippingRatePerSqFt, FormatCurrency, ""),
		number("cratingFee", "rates.cratingFee", r.CratingFee, FormatCurrency, ""),
		number("pmPct", "rates.pmPct", r.PMPct, FormatPercent, ""),
		number("engineeringFee", "rates.engineeringFee", r.EngineeringFee, FormatCurrency, ""),
		number("permitFee", "rates.permitFee", r.PermitFee, FormatCurrency, ""),
		number("bondRate", "rates.bondRate", r.BondRate, FormatPercent, ""),
	}}
}

func boolNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
