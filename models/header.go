package models

// Field identifies a logical column of a cost sheet
type Field string

const (
	FieldDisplayName  Field = "displayName"
	FieldSellingPrice Field = "sellingPrice"
	FieldCost         Field = "cost"
	FieldMargin       Field = "margin"
	FieldPitch        Field = "pitch"
	FieldHeight       Field = "height"
	FieldWidth        Field = "width"
	FieldQuantity     Field = "quantity"
	FieldBrightness   Field = "brightness"
)

// ColumnMap maps a detected field to its zero-based column index.
// Fields that were not detected are absent.
type ColumnMap map[Field]int

// Column returns the column index for a field
func (m ColumnMap) Column(f Field) (int, bool) {
	idx, ok := m[f]
	return idx, ok
}

// HeaderDetectionResult is the outcome of header row detection
type HeaderDetectionResult struct {
	Found    bool      `json:"found"`
	RowIndex int       `json:"rowIndex"`
	Columns  ColumnMap `json:"columns"`
}
