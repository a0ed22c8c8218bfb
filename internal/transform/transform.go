//-------------------------------------------------------------------------
//
// Shipment Warehouse ETL
//
// Portions copyright (c) 2025 - 2026, ParcelHQ, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package transform cleans raw shipment records into analysis-ready records.
// Records without a usable ship date are dropped; every other data-quality
// defect is repaired in place (carrier canonicalization, cost imputation,
// status derivation).
package transform

import (
	"math"

	"github.com/parcelhq/shipment-warehouse/internal/logging"
	"github.com/parcelhq/shipment-warehouse/internal/shipment"
)

// Clean converts the raw record set into clean records. The output never
// contains more records than the input; rows are dropped, never fabricated.
func Clean(raw []shipment.RawRecord) []shipment.CleanRecord {
	records := make([]shipment.CleanRecord, 0, len(raw))
	dropped := 0

	for _, r := range raw {
		// Ship date is mandatory for every downstream computation.
		shipDate, ok := parseFlexibleDate(r.ShipDate)
		if !ok {
			dropped++
			continue
		}

		promised := parseISODate(r.PromisedDeliveryDate)
		actual := parseISODate(r.ActualDeliveryDate)

		records = append(records, shipment.CleanRecord{
			ShipmentID:           r.ShipmentID,
			ShipDate:             shipDate,
			PromisedDeliveryDate: promised,
			ActualDeliveryDate:   actual,
			OriginCity:           r.OriginCity,
			OriginState:          r.OriginState,
			DestinationCity:      r.DestinationCity,
			DestinationState:     r.DestinationState,
			ShippingCost:         math.Abs(r.ShippingCost),
			CarrierName:          normalizeCarrier(r.CarrierName),
			Status:               deriveStatus(promised, actual),
		})
	}

	// Imputation runs after carrier names are canonical so that case
	// variants of the same carrier share one cost distribution.
	imputeCosts(records)

	logging.Info().
		Int("rows_in", len(raw)).
		Int("rows_out", len(records)).
		Int("dropped", dropped).
		Msg("Cleaned raw shipment data")

	return records
}
