//-------------------------------------------------------------------------
//
// Shipment Warehouse ETL
//
// Portions copyright (c) 2025 - 2026, ParcelHQ, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/parcelhq/shipment-warehouse/internal/logging"
	"github.com/parcelhq/shipment-warehouse/internal/shipment"
)

const (
	insertLocationSQL = `
        INSERT INTO dim_locations (city, state) VALUES ($1, $2)
        ON CONFLICT (city, state) DO NOTHING`

	insertCarrierSQL = `
        INSERT INTO dim_carriers (carrier_name) VALUES ($1)
        ON CONFLICT (carrier_name) DO NOTHING`

	insertDateSQL = `
        INSERT INTO dim_dates (date_key, full_date, year, quarter, month, day, weekday)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (date_key) DO NOTHING`
)

// DimensionCounts reports how many new rows each dimension gained.
type DimensionCounts struct {
	Locations int64
	Carriers  int64
	Dates     int64
}

// LoadDimensions upserts every location, carrier, and calendar date
// referenced by the record set into the dimension tables. Rows that already
// exist by natural key are left untouched. All inserts commit as a single
// transaction; any failure rolls the whole phase back.
func (s *Store) LoadDimensions(ctx context.Context, records []shipment.CleanRecord) (DimensionCounts, error) {
	var counts DimensionCounts

	locations := distinctLocations(records)
	carriers := distinctCarriers(records)
	dates := distinctDates(records)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return counts, fmt.Errorf("failed to begin dimension transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	locationRows := make([][]any, 0, len(locations))
	for _, loc := range locations {
		locationRows = append(locationRows, []any{loc.City, loc.State})
	}
	if counts.Locations, err = s.execBatch(ctx, tx, insertLocationSQL, locationRows); err != nil {
		return counts, fmt.Errorf("failed to load location dimension: %w", err)
	}

	carrierRows := make([][]any, 0, len(carriers))
	for _, name := range carriers {
		carrierRows = append(carrierRows, []any{name})
	}
	if counts.Carriers, err = s.execBatch(ctx, tx, insertCarrierSQL, carrierRows); err != nil {
		return counts, fmt.Errorf("failed to load carrier dimension: %w", err)
	}

	dateRows := make([][]any, 0, len(dates))
	for _, d := range dates {
		dateRows = append(dateRows, []any{
			shipment.DateKey(d),
			d,
			d.Year(),
			shipment.Quarter(d),
			int(d.Month()),
			d.Day(),
			shipment.WeekdayIndex(d),
		})
	}
	if counts.Dates, err = s.execBatch(ctx, tx, insertDateSQL, dateRows); err != nil {
		return counts, fmt.Errorf("failed to load date dimension: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return counts, fmt.Errorf("failed to commit dimension load: %w", err)
	}

	logging.Info().
		Int64("locations", counts.Locations).
		Int64("carriers", counts.Carriers).
		Int64("dates", counts.Dates).
		Msg("Dimension tables loaded")

	return counts, nil
}

// distinctLocations collects the set of (city, state) pairs appearing as
// either origin or destination, sorted for deterministic insert order.
func distinctLocations(records []shipment.CleanRecord) []shipment.Location {
	set := make(map[shipment.Location]struct{})
	for i := range records {
		set[records[i].Origin()] = struct{}{}
		set[records[i].Destination()] = struct{}{}
	}

	locations := make([]shipment.Location, 0, len(set))
	for loc := range set {
		locations = append(locations, loc)
	}
	slices.SortFunc(locations, func(a, b shipment.Location) int {
		if a.City != b.City {
			if a.City < b.City {
				return -1
			}
			return 1
		}
		if a.State < b.State {
			return -1
		}
		if a.State > b.State {
			return 1
		}
		return 0
	})
	return locations
}

// distinctCarriers collects the sorted set of canonical carrier names.
func distinctCarriers(records []shipment.CleanRecord) []string {
	set := make(map[string]struct{})
	for i := range records {
		set[records[i].CarrierName] = struct{}{}
	}

	carriers := make([]string, 0, len(set))
	for name := range set {
		carriers = append(carriers, name)
	}
	slices.Sort(carriers)
	return carriers
}

// distinctDates collects the set of calendar dates appearing in any of the
// three date fields, excluding missing values, sorted ascending.
func distinctDates(records []shipment.CleanRecord) []time.Time {
	set := make(map[int]time.Time)
	add := func(t *time.Time) {
		if t != nil {
			set[shipment.DateKey(*t)] = *t
		}
	}
	for i := range records {
		add(&records[i].ShipDate)
		add(records[i].PromisedDeliveryDate)
		add(records[i].ActualDeliveryDate)
	}

	keys := make([]int, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	dates := make([]time.Time, 0, len(keys))
	for _, key := range keys {
		dates = append(dates, set[key])
	}
	return dates
}
