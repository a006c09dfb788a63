package extraction

import (
	"errors"
	"fmt"
)

// ErrNoUsableSheets indicates that every sheet of the input was empty or unparseable.
var ErrNoUsableSheets = errors.New("workbook has no usable sheets")

// ErrNoLineItems indicates that no billable display was found on the selected sheet.
var ErrNoLineItems = errors.New("no line items extracted")

// ExtractionError represents a fatal error during one stage of extraction.
type ExtractionError struct {
	Sheet string
	Stage string // "ingest", "line items"
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("extraction failed at %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("extraction failed at %s on sheet %q: %v", e.Stage, e.Sheet, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
