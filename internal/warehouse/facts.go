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
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/parcelhq/shipment-warehouse/internal/logging"
	"github.com/parcelhq/shipment-warehouse/internal/shipment"
)

const dateLayout = "2006-01-02"

const insertFactSQL = `
    INSERT INTO fact_shipments (
        shipment_id, ship_date_key, promised_date_key, actual_delivery_date_key,
        origin_location_id, destination_location_id, carrier_id,
        shipping_cost, shipment_status
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    ON CONFLICT (shipment_id) DO NOTHING`

// dimLookups maps dimension natural keys to their surrogate ids, built by
// reading back the dimension tables. Reading back (rather than trusting this
// run's inserts) means the fact phase also sees rows loaded by prior runs.
type dimLookups struct {
	locations map[shipment.Location]int
	carriers  map[string]int
	dates     map[string]int
}

// LoadFacts inserts one fact row per shipment, resolving dimension keys via
// a single read-back query per dimension. Duplicate shipment ids are ignored
// (first write wins). Returns the number of rows actually inserted. The
// whole phase commits as one transaction and rolls back in full on failure.
func (s *Store) LoadFacts(ctx context.Context, records []shipment.CleanRecord) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin fact transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	lookups, err := readDimLookups(ctx, tx)
	if err != nil {
		return 0, fmt.Errorf("failed to read back dimensions: %w", err)
	}

	factRows := make([][]any, 0, len(records))
	for i := range records {
		args, err := lookups.factArgs(&records[i])
		if err != nil {
			return 0, err
		}
		factRows = append(factRows, args)
	}

	inserted, err := s.execBatch(ctx, tx, insertFactSQL, factRows)
	if err != nil {
		return 0, fmt.Errorf("failed to load fact table: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit fact load: %w", err)
	}

	logging.Info().
		Int("attempted", len(records)).
		Int64("inserted", inserted).
		Msg("Fact table loaded")

	return inserted, nil
}

// factArgs resolves a clean record's dimension references and returns the
// insert arguments for its fact row. A reference that cannot be resolved is
// an error: the dimension phase must have loaded every natural key already.
func (l *dimLookups) factArgs(r *shipment.CleanRecord) ([]any, error) {
	shipKey, ok := l.dates[r.ShipDate.Format(dateLayout)]
	if !ok {
		return nil, fmt.Errorf("shipment %s: no date dimension row for ship date %s",
			r.ShipmentID, r.ShipDate.Format(dateLayout))
	}

	promisedKey, err := l.optionalDateKey(r.ShipmentID, r.PromisedDeliveryDate)
	if err != nil {
		return nil, err
	}
	actualKey, err := l.optionalDateKey(r.ShipmentID, r.ActualDeliveryDate)
	if err != nil {
		return nil, err
	}

	originID, ok := l.locations[r.Origin()]
	if !ok {
		return nil, fmt.Errorf("shipment %s: no location dimension row for %s, %s",
			r.ShipmentID, r.OriginCity, r.OriginState)
	}
	destID, ok := l.locations[r.Destination()]
	if !ok {
		return nil, fmt.Errorf("shipment %s: no location dimension row for %s, %s",
			r.ShipmentID, r.DestinationCity, r.DestinationState)
	}
	carrierID, ok := l.carriers[r.CarrierName]
	if !ok {
		return nil, fmt.Errorf("shipment %s: no carrier dimension row for %q",
			r.ShipmentID, r.CarrierName)
	}

	return []any{
		r.ShipmentID, shipKey, promisedKey, actualKey,
		originID, destID, carrierID,
		r.ShippingCost, string(r.Status),
	}, nil
}

// optionalDateKey resolves an optional date to its surrogate key, or nil
// when the date is absent.
func (l *dimLookups) optionalDateKey(shipmentID string, t *time.Time) (*int, error) {
	if t == nil {
		return nil, nil
	}
	key, ok := l.dates[t.Format(dateLayout)]
	if !ok {
		return nil, fmt.Errorf("shipment %s: no date dimension row for %s",
			shipmentID, t.Format(dateLayout))
	}
	return &key, nil
}

// readDimLookups builds the in-memory key mappings with one query per
// dimension table.
func readDimLookups(ctx context.Context, tx pgx.Tx) (*dimLookups, error) {
	lookups := &dimLookups{
		locations: make(map[shipment.Location]int),
		carriers:  make(map[string]int),
		dates:     make(map[string]int),
	}

	rows, err := tx.Query(ctx, `SELECT location_id, city, state FROM dim_locations`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id int
		var loc shipment.Location
		if err := rows.Scan(&id, &loc.City, &loc.State); err != nil {
			rows.Close()
			return nil, err
		}
		lookups.locations[loc] = id
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = tx.Query(ctx, `SELECT carrier_id, carrier_name FROM dim_carriers`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return nil, err
		}
		lookups.carriers[name] = id
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = tx.Query(ctx, `SELECT date_key, full_date FROM dim_dates`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var key int
		var fullDate time.Time
		if err := rows.Scan(&key, &fullDate); err != nil {
			rows.Close()
			return nil, err
		}
		lookups.dates[fullDate.Format(dateLayout)] = key
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lookups, nil
}
