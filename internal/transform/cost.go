package transform

import (
	"math"
	"slices"

	"github.com/parcelhq/shipment-warehouse/internal/shipment"
)

// imputeCosts fills missing shipping costs in place. Per-carrier and global
// medians are computed once over the known-cost distribution before any gap
// is filled, so the result does not depend on record order. A carrier with
// no known costs falls back to the global median; if the whole batch has no
// known cost, missing values resolve to 0.
func imputeCosts(records []shipment.CleanRecord) {
	byCarrier := make(map[string][]float64)
	var all []float64
	for _, r := range records {
		if math.IsNaN(r.ShippingCost) {
			continue
		}
		byCarrier[r.CarrierName] = append(byCarrier[r.CarrierName], r.ShippingCost)
		all = append(all, r.ShippingCost)
	}

	carrierMedians := make(map[string]float64, len(byCarrier))
	for carrier, costs := range byCarrier {
		carrierMedians[carrier] = median(costs)
	}
	globalMedian := median(all)

	for i := range records {
		if !math.IsNaN(records[i].ShippingCost) {
			continue
		}
		fill, ok := carrierMedians[records[i].CarrierName]
		if !ok {
			fill = globalMedian
		}
		if math.IsNaN(fill) {
			fill = 0
		}
		records[i].ShippingCost = fill
	}
}

// median returns the median of values: the middle element, or the mean of
// the two middle elements for an even count. NaN for an empty slice.
func median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
