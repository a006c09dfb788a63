package auditbook

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// headerRows is the number of rows above the first data row
	headerRows = 1
	valueCol   = 2 // column B
)

// placeholder matches {key} and {Sheet.key}
var (
	placeholder = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)(?:\.([A-Za-z_][A-Za-z0-9_]*))?\}`)
	bareName    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// render stamps real cell coordinates into every formula template.
// A template may refer to a row above it on the same sheet or to any row of
// a sheet emitted earlier; anything else is rejected.
func render(sheets []SheetSpec) error {
	emitted := make(map[string]map[string]int) // sheet -> key -> row index

	for s := range sheets {
		sheet := &sheets[s]
		if _, dup := emitted[sheet.Name]; dup {
			return fmt.Errorf("sheet %s: duplicate sheet name", sheet.Name)
		}
		rows := make(map[string]int, len(sheet.Rows))

		for i := range sheet.Rows {
			row := &sheet.Rows[i]
			if _, dup := rows[row.Key]; dup {
				return fmt.Errorf("sheet %s row %s: %w", sheet.Name, row.Key, ErrDuplicateKey)
			}
			if row.Kind == KindFormula {
				f, err := renderTemplate(row.Template, sheet.Name, rows, emitted, sheets)
				if err != nil {
					return fmt.Errorf("sheet %s row %s: %w", sheet.Name, row.Key, err)
				}
				row.Formula = f
			}
			rows[row.Key] = i
		}
		emitted[sheet.Name] = rows
	}
	return nil
}

func renderTemplate(template, sheet string, local map[string]int, emitted map[string]map[string]int, sheets []SheetSpec) (string, error) {
	var renderErr error
	out := placeholder.ReplaceAllStringFunc(template, func(match string) string {
		if renderErr != nil {
			return match
		}
		m := placeholder.FindStringSubmatch(match)

		if m[2] == "" {
			idx, ok := local[m[1]]
			if !ok {
				renderErr = forwardOrUnknown(m[1], sheet, sheets)
				return match
			}
			return valueCell(idx)
		}

		target, key := m[1], m[2]
		rows, ok := emitted[target]
		if !ok {
			if target == sheet || sheetIndex(sheets, target) >= 0 {
				renderErr = fmt.Errorf("%s: %w", match, ErrForwardReference)
			} else {
				renderErr = fmt.Errorf("%s: %w", match, ErrUnknownReference)
			}
			return match
		}
		idx, ok := rows[key]
		if !ok {
			renderErr = fmt.Errorf("%s: %w", match, ErrUnknownReference)
			return match
		}
		return sheetRef(target) + "!" + valueCell(idx)
	})
	if renderErr != nil {
		return "", renderErr
	}
	return out, nil
}

// forwardOrUnknown classifies a same-sheet key that is not defined above the current row
func forwardOrUnknown(key, sheet string, sheets []SheetSpec) error {
	if i := sheetIndex(sheets, sheet); i >= 0 {
		for _, row := range sheets[i].Rows {
			if row.Key == key {
				return fmt.Errorf("{%s}: %w", key, ErrForwardReference)
			}
		}
	}
	return fmt.Errorf("{%s}: %w", key, ErrUnknownReference)
}

func sheetIndex(sheets []SheetSpec, name string) int {
	for i, s := range sheets {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// valueCell returns the value cell address of the row at index i
func valueCell(i int) string {
	cell, _ := excelize.CoordinatesToCellName(valueCol, i+headerRows+1)
	return cell
}

// sheetRef quotes a sheet name for use in a formula when needed
func sheetRef(name string) string {
	if bareName.MatchString(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
