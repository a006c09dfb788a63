// Package auditbook builds the audit workbook: the pricing computation laid
// out as labeled rows whose value cells are live formulas across sheets.
package auditbook

import (
	"errors"
	"fmt"

	"led-proposal-engine/models"
)

// Sheet names in emission order
const (
	SheetHardware      = "Hardware"
	SheetStructural    = "Structural"
	SheetLabor         = "Labor"
	SheetShipping      = "Shipping"
	SheetPMEngineering = "PM_Engineering"
	SheetMargins       = "Margins"
	SheetSummary       = "Summary"
	SheetRawData       = "Raw_Data"
)

// Format is the number format of a value cell
type Format string

const (
	FormatText     Format = "text"
	FormatNumber   Format = "number"
	FormatCurrency Format = "currency"
	FormatPercent  Format = "percent"
	FormatArea     Format = "area"
)

// CellKind tells what a row's value cell holds
type CellKind int

const (
	KindNumber CellKind = iota
	KindText
	KindFormula
)

var (
	ErrUnknownReference = errors.New("reference to an undefined cell")
	ErrForwardReference = errors.New("reference to a cell that is not emitted yet")
	ErrDuplicateKey     = errors.New("duplicate row key")
)

// RowSpec is one labeled row. The value cell holds a number, a text or a
// formula rendered from Template.
type RowSpec struct {
	Key      string
	Label    string
	Kind     CellKind
	Value    float64
	Text     string
	Template string // e.g. "{area}*{Hardware.total}"
	Formula  string // rendered template, no leading "="
	Format   Format
	Note     string
}

// SheetSpec is one sheet of the workbook
type SheetSpec struct {
	Name      string
	Rows      []RowSpec
	Hidden    bool
	Protected bool
}

// Plan is the rendered workbook layout, sheets in emission (dependency) order
type Plan struct {
	Sheets []SheetSpec
}

// Build lays out the pricing computation for the given parameters and
// renders every formula template to cell references.
func Build(params models.CostParameters) (*Plan, error) {
	sheets := []SheetSpec{
		hardwareSheet(params),
		structuralSheet(params),
		laborSheet(params),
		shippingSheet(params),
		pmEngineeringSheet(params),
		marginsSheet(params),
		summarySheet(params),
		rawDataSheet(params),
	}

	if err := render(sheets); err != nil {
		return nil, fmt.Errorf("failed to render audit workbook: %w", err)
	}
	return &Plan{Sheets: sheets}, nil
}

// Sheet returns the named sheet
func (p *Plan) Sheet(name string) (*SheetSpec, bool) {
	for i := range p.Sheets {
		if p.Sheets[i].Name == name {
			return &p.Sheets[i], true
		}
	}
	return nil, false
}

// Cell returns the address of a row's value cell, e.g. "B4"
func (p *Plan) Cell(sheet, key string) (string, bool) {
	s, ok := p.Sheet(sheet)
	if !ok {
		return "", false
	}
	for i, row := range s.Rows {
		if row.Key == key {
			return valueCell(i), true
		}
	}
	return "", false
}

// Names returns the sheet names in emission order
func (p *Plan) Names() []string {
	names := make([]string, len(p.Sheets))
	for i, s := range p.Sheets {
		names[i] = s.Name
	}
	return names
}

func number(key, label string, value float64, format Format, note string) RowSpec {
	return RowSpec{Key: key, Label: label, Kind: KindNumber, Value: value, Format: format, Note: note}
}

func text(key, label, value string) RowSpec {
	return RowSpec{Key: key, Label: label, Kind: KindText, Text: value, Format: FormatText}
}

func formula(key, label, template string, format Format, note string) RowSpec {
	return RowSpec{Key: key, Label: label, Kind: KindFormula, Template: template, Format: format, Note: note}
}
