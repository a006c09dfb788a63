package extraction

import (
	"log"

	"led-proposal-engine/models"
)

// Result is everything one extraction run produces
type Result struct {
	Quote     models.QuoteData
	Summary   models.QuoteSummary
	SheetName string
	Header    models.HeaderDetectionResult
}

// Extract runs the whole pipeline over the sheets of one workbook:
// ingest, select the cost sheet, locate its header, read line items and
// totals, then assemble. Each call uses its own Run, so concurrent calls
// share nothing.
func Extract(sources []models.SheetSource, opts ...Option) (*Result, error) {
	run := NewRun(opts...)

	wb, err := Ingest(run, sources)
	if err != nil {
		log.Printf("❌ Extract: %v (%d sheets received)", err, len(sources))
		return nil, &ExtractionError{Stage: "ingest", Err: err}
	}

	sheetName, grid := SelectSheet(run, wb)
	header := run.header(sheetName, grid)
	log.Printf("📄 Extract: selected sheet %q of %d (header found=%v row=%d)", sheetName, wb.Len(), header.Found, header.RowIndex+1)
	if !header.Found {
		run.Warnf("no header row with selling price/cost/margin found in the first %d rows of sheet %q", HeaderScanLimit, sheetName)
	}

	items := ExtractLineItems(run, grid, header)
	totals := ReconcileTotals(run, grid, header)

	quote, err := Assemble(items, totals, run.Warnings())
	if err != nil {
		log.Printf("❌ Extract: sheet %q produced no line items", sheetName)
		return nil, &ExtractionError{Sheet: sheetName, Stage: "line items", Err: err}
	}

	overview := models.WorkbookOverview{
		SheetCount:    wb.Len(),
		SheetNames:    wb.Names(),
		SelectedSheet: sheetName,
		HeaderFound:   header.Found,
	}
	if header.Found {
		overview.HeaderRow = header.RowIndex + 1
	}

	for _, w := range quote.Warnings() {
		log.Printf("⚠️  Extract: %s", w)
	}
	log.Printf("✅ Extract: %d line items, total=%.2f, %d warnings", len(items), totals.Total, len(quote.Warnings()))

	return &Result{
		Quote:     quote,
		Summary:   Summarize(quote, overview),
		SheetName: sheetName,
		Header:    header,
	}, nil
}
