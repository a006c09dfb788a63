package auditbook

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

// ContentType of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// numberFormats is ordered so style ids are stable between runs
var numberFormats = []struct {
	format Format
	code   string
}{
	{FormatNumber, "#,##0.00"},
	{FormatCurrency, "$#,##0.00"},
	{FormatPercent, "0.00%"},
	{FormatArea, `#,##0.00 "sq ft"`},
}

type styleSet struct {
	header int
	value  map[Format]int
}

// WriteXLSX emits the plan as an xlsx file. Sheets are written in
// dependency order, then Summary is moved to the first tab and activated.
func (p *Plan) WriteXLSX() ([]byte, error) {
	if len(p.Sheets) == 0 {
		return nil, fmt.Errorf("audit workbook has no sheets")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("⚠️  Warning: failed to close audit workbook: %v", err)
		}
	}()

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	first := p.Sheets[0].Name
	if err := f.SetSheetName(f.GetSheetName(0), first); err != nil {
		return nil, fmt.Errorf("failed to name sheet %s: %w", first, err)
	}
	for i, sheet := range p.Sheets {
		if i > 0 {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
			}
		}
		if err := writeSheet(f, sheet, styles); err != nil {
			return nil, fmt.Errorf("failed to write sheet %s: %w", sheet.Name, err)
		}
	}

	if _, ok := p.Sheet(SheetSummary); ok && first != SheetSummary {
		if err := f.MoveSheet(SheetSummary, first); err != nil {
			return nil, fmt.Errorf("failed to move summary sheet: %w", err)
		}
		idx, err := f.GetSheetIndex(SheetSummary)
		if err != nil {
			return nil, err
		}
		f.SetActiveSheet(idx)
	}

	// Hiding only works on inactive sheets, so this runs after activation
	for _, sheet := range p.Sheets {
		if err := finishProtection(f, sheet); err != nil {
			return nil, err
		}
	}

	fullCalc := true
	if err := f.SetCalcProps(&excelize.CalcPropsOptions{FullCalcOnLoad: &fullCalc}); err != nil {
		return nil, fmt.Errorf("failed to set calc properties: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Pricing audit",
		Creator: "led-proposal-engine",
	}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (styleSet, error) {
	set := styleSet{value: make(map[Format]int)}

	header, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F3864"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return set, fmt.Errorf("failed to create header style: %w", err)
	}
	set.header = header

	for _, nf := range numberFormats {
		code := nf.code
		id, err := f.NewStyle(&excelize.Style{CustomNumFmt: &code})
		if err != nil {
			return set, fmt.Errorf("failed to create %s style: %w", nf.format, err)
		}
		set.value[nf.format] = id
	}
	return set, nil
}

func writeSheet(f *excelize.File, sheet SheetSpec, styles styleSet) error {
	name := sheet.Name
	headerLabels := []interface{}{"Item", "Value", "Notes"}
	if sheet.Name == SheetRawData {
		headerLabels = []interface{}{"Field", "Value", "Notes"}
	}
	if err := f.SetSheetRow(name, "A1", &headerLabels); err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", "C1", styles.header); err != nil {
		return err
	}

	for i, row := range sheet.Rows {
		r := i + headerRows + 1
		labelCell, _ := excelize.CoordinatesToCellName(1, r)
		noteCell, _ := excelize.CoordinatesToCellName(3, r)
		cell := valueCell(i)

		if err := f.SetCellStr(name, labelCell, row.Label); err != nil {
			return err
		}
		switch row.Kind {
		case KindFormula:
			if err := f.SetCellFormula(name, cell, row.Formula); err != nil {
				return err
			}
		case KindText:
			if err := f.SetCellStr(name, cell, row.Text); err != nil {
				return err
			}
		default:
			if err := f.SetCellFloat(name, cell, row.Value, -1, 64); err != nil {
				return err
			}
		}
		if style, ok := styles.value[row.Format]; ok {
			if err := f.SetCellStyle(name, cell, cell, style); err != nil {
				return err
			}
		}
		if row.Note != "" {
			if err := f.SetCellStr(name, noteCell, row.Note); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(name, "A", "A", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(name, "B", "B", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(name, "C", "C", 36); err != nil {
		return err
	}

	return setPrintLayout(f, sheet)
}

// setPrintLayout fits each sheet to one page width and freezes the header row
func setPrintLayout(f *excelize.File, sheet SheetSpec) error {
	fitToPage := true
	oneWide, anyTall := 1, 0
	portrait := "portrait"

	if err := f.SetSheetProps(sheet.Name, &excelize.SheetPropsOptions{FitToPage: &fitToPage}); err != nil {
		return err
	}
	if err := f.SetPageLayout(sheet.Name, &excelize.PageLayoutOptions{
		FitToWidth:  &oneWide,
		FitToHeight: &anyTall,
		Orientation: &portrait,
	}); err != nil {
		return err
	}

	if sheet.Hidden {
		return nil
	}
	return f.SetPanes(sheet.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRows,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
		Selection:   []excelize.Selection{{SQRef: "A2", ActiveCell: "A2", Pane: "bottomLeft"}},
	})
}

func finishProtection(f *excelize.File, sheet SheetSpec) error {
	if sheet.Hidden {
		if err := f.SetSheetVisible(sheet.Name, false); err != nil {
			return fmt.Errorf("failed to hide sheet %s: %w", sheet.Name, err)
		}
	}
	if sheet.Protected {
		if err := f.ProtectSheet(sheet.Name, &excelize.SheetProtectionOptions{
			Password:            rawDataPassphrase,
			SelectLockedCells:   true,
			SelectUnlockedCells: true,
		}); err != nil {
			return fmt.Errorf("failed to protect sheet %s: %w", sheet.Name, err)
		}
	}
	return nil
}
