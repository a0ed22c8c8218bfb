package transform

import (
	"time"

	"github.com/parcelhq/shipment-warehouse/internal/shipment"
)

// deriveStatus classifies a shipment from its delivery dates. Rules are
// evaluated in precedence order; the first match wins.
func deriveStatus(promised, actual *time.Time) shipment.Status {
	switch {
	case actual == nil:
		return shipment.StatusInTransit
	case promised != nil && !actual.After(*promised):
		return shipment.StatusOnTime
	case promised != nil && actual.After(*promised):
		return shipment.StatusDelayed
	default:
		// Actual present but promised missing: nothing to compare against.
		return shipment.StatusUnknown
	}
}
