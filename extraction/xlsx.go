package extraction

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"led-proposal-engine/models"
)

// SheetsFromXLSX materializes every sheet of an xlsx workbook as CSV text,
// in tab order. Cell values are read as displayed, so currency and
// percentage formatting reach the numeric parser intact.
func SheetsFromXLSX(r io.Reader) ([]models.SheetSource, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("⚠️  Warning: failed to close workbook: %v", err)
		}
	}()

	var sources []models.SheetSource
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}

		var b strings.Builder
		w := csv.NewWriter(&b)
		if err := w.WriteAll(rows); err != nil {
			return nil, fmt.Errorf("failed to encode sheet %s: %w", name, err)
		}
		sources = append(sources, models.SheetSource{Name: name, Content: b.String()})
	}
	return sources, nil
}
