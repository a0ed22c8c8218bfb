package datagen

import (
	"github.com/parcelhq/shipment-warehouse/internal/logging"
)

// ProgressReporter tracks and reports row generation progress.
type ProgressReporter struct {
	label            string
	totalRows        int64
	currentRow       int64
	progressInterval int64
}

// NewProgressReporter creates a new progress reporter. Progress is logged
// every interval rows.
func NewProgressReporter(label string, totalRows, interval int64) *ProgressReporter {
	return &ProgressReporter{
		label:            label,
		totalRows:        totalRows,
		progressInterval: interval,
	}
}

// Update updates the progress and logs if necessary.
func (p *ProgressReporter) Update(rows int64) {
	oldRow := p.currentRow
	p.currentRow += rows

	// Check if we crossed a progress interval
	if p.currentRow/p.progressInterval > oldRow/p.progressInterval {
		pct := float64(p.currentRow) / float64(p.totalRows) * 100
		logging.Info().
			Str("stage", p.label).
			Int64("rows", p.currentRow).
			Int64("total", p.totalRows).
			Float64("percent", pct).
			Msg("Generating data")
	}
}

// Done logs completion.
func (p *ProgressReporter) Done() {
	logging.Info().
		Str("stage", p.label).
		Int64("rows", p.currentRow).
		Msg("Generation complete")
}
