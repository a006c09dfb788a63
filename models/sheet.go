package models

// SheetSource is one sheet of an uploaded workbook materialized as delimited text
type SheetSource struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SheetGrid holds the parsed rows of one sheet, cells already dequoted and trimmed
type SheetGrid [][]string

// Cell returns the cell at row/col or "" when out of range
func (g SheetGrid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// NamedSheet pairs a sheet name with its grid
type NamedSheet struct {
	Name string
	Grid SheetGrid
}

// Workbook is an ordered collection of uniquely named sheets.
// Order is the discovery order of the source.
type Workbook struct {
	Sheets []NamedSheet
}

// Add appends a sheet. It returns false if the name is already taken.
func (w *Workbook) Add(name string, grid SheetGrid) bool {
	if _, ok := w.Get(name); ok {
		return false
	}
	w.Sheets = append(w.Sheets, NamedSheet{Name: name, Grid: grid})
	return true
}

// Get returns the grid for the given sheet name
func (w *Workbook) Get(name string) (SheetGrid, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s.Grid, true
		}
	}
	return nil, false
}

// Names returns sheet names in discovery order
func (w *Workbook) Names() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}

// Len returns the number of sheets
func (w *Workbook) Len() int {
	return len(w.Sheets)
}
