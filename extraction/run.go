package extraction

import (
	"fmt"

	"led-proposal-engine/models"
)

// Run carries the state of one extraction request through the pipeline.
// Nothing here is shared between runs.
type Run struct {
	warnings []string
	headers  map[string]models.HeaderDetectionResult
	bondRate float64
}

// Option configures a Run
type Option func(*Run)

// WithBondRate sets the bond rate the totals check expects.
// A non-positive rate keeps DefaultBondRate.
func WithBondRate(rate float64) Option {
	return func(r *Run) {
		if rate > 0 {
			r.bondRate = rate
		}
	}
}

// NewRun creates an empty run context
func NewRun(opts ...Option) *Run {
	r := &Run{
		headers:  make(map[string]models.HeaderDetectionResult),
		bondRate: DefaultBondRate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Warn records an advisory warning
func (r *Run) Warn(msg string) {
	r.warnings = append(r.warnings, msg)
}

// Warnf records a formatted advisory warning
func (r *Run) Warnf(format string, args ...interface{}) {
	r.Warn(fmt.Sprintf(format, args...))
}

// Warnings returns a copy of the warnings recorded so far
func (r *Run) Warnings() []string {
	return append([]string{}, r.warnings...)
}

// header returns the header detection result for a sheet, scanning it at most once per run
func (r *Run) header(name string, grid models.SheetGrid) models.HeaderDetectionResult {
	if res, ok := r.headers[name]; ok {
		return res
	}
	res := LocateHeader(grid)
	r.headers[name] = res
	return res
}
