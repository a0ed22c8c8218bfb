//-------------------------------------------------------------------------
//
// Shipment Warehouse ETL
//
// Copyright (c) 2025 - 2026, ParcelHQ, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

//go:build integration
// +build integration

// Integration tests for the star-schema load.
// Run with: go test -tags=integration ./internal/warehouse/...
// Requires PostgreSQL to be available.
// Set SHIPWH_TEST_CONN environment variable to override connection string.

package warehouse_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parcelhq/shipment-warehouse/internal/shipment"
	"github.com/parcelhq/shipment-warehouse/internal/testutil"
	"github.com/parcelhq/shipment-warehouse/internal/warehouse"
)

func testRecords() []shipment.CleanRecord {
	promised := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)
	actual := time.Date(2023, time.March, 6, 0, 0, 0, 0, time.UTC)

	return []shipment.CleanRecord{
		{
			ShipmentID:           "DHL-10001",
			ShipDate:             time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
			PromisedDeliveryDate: &promised,
			ActualDeliveryDate:   &actual,
			OriginCity:           "Chicago", OriginState: "IL",
			DestinationCity: "Miami", DestinationState: "FL",
			ShippingCost: 120.50,
			CarrierName:  "Speedyship",
			Status:       shipment.StatusDelayed,
		},
		{
			ShipmentID:           "DHL-10002",
			ShipDate:             time.Date(2023, time.March, 2, 0, 0, 0, 0, time.UTC),
			PromisedDeliveryDate: &promised,
			ActualDeliveryDate:   nil,
			OriginCity:           "Miami", OriginState: "FL",
			DestinationCity: "Chicago", DestinationState: "IL",
			ShippingCost: 88.00,
			CarrierName:  "Unknown",
			Status:       shipment.StatusInTransit,
		},
	}
}

func setupStore(t *testing.T) (*warehouse.Store, *pgxpool.Pool) {
	t.Helper()

	baseConnStr := testutil.SkipIfNoPostgres(t)
	testConnStr := testutil.CreateTestDB(t, baseConnStr, "warehouse")
	dbName := testutil.GetDBNameFromConnStr(testConnStr)

	cleanup := testutil.NewTestCleanup(t, baseConnStr, dbName)
	t.Cleanup(cleanup.Cleanup)

	pool := testutil.ConnectTestDB(t, testConnStr)
	cleanup.SetPool(pool)

	store := warehouse.NewStore(pool, 100)
	if err := store.CreateSchema(context.Background()); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	return store, pool
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

func TestLoadIsIdempotent(t *testing.T) {
	store, pool := setupStore(t)
	ctx := context.Background()
	records := testRecords()

	runLoad := func() int64 {
		if _, err := store.LoadDimensions(ctx, records); err != nil {
			t.Fatalf("LoadDimensions failed: %v", err)
		}
		inserted, err := store.LoadFacts(ctx, records)
		if err != nil {
			t.Fatalf("LoadFacts failed: %v", err)
		}
		return inserted
	}

	if inserted := runLoad(); inserted != 2 {
		t.Errorf("First load inserted %d facts, want 2", inserted)
	}

	locations := countRows(t, pool, "dim_locations")
	carriers := countRows(t, pool, "dim_carriers")
	dates := countRows(t, pool, "dim_dates")

	// Re-running the full load must not add any rows.
	if inserted := runLoad(); inserted != 0 {
		t.Errorf("Second load inserted %d facts, want 0", inserted)
	}

	if got := countRows(t, pool, "dim_locations"); got != locations {
		t.Errorf("dim_locations grew from %d to %d on reload", locations, got)
	}
	if got := countRows(t, pool, "dim_carriers"); got != carriers {
		t.Errorf("dim_carriers grew from %d to %d on reload", carriers, got)
	}
	if got := countRows(t, pool, "dim_dates"); got != dates {
		t.Errorf("dim_dates grew from %d to %d on reload", dates, got)
	}
	if got := countRows(t, pool, "fact_shipments"); got != 2 {
		t.Errorf("fact_shipments has %d rows, want 2", got)
	}
}

func TestDuplicateShipmentIDFirstWriteWins(t *testing.T) {
	store, pool := setupStore(t)
	ctx := context.Background()

	records := testRecords()
	dup := records[0]
	dup.ShippingCost = 999.99
	records = append(records, dup)

	if _, err := store.LoadDimensions(ctx, records); err != nil {
		t.Fatalf("LoadDimensions failed: %v", err)
	}
	inserted, err := store.LoadFacts(ctx, records)
	if err != nil {
		t.Fatalf("LoadFacts failed: %v", err)
	}
	if inserted != 2 {
		t.Errorf("Inserted %d facts, want 2 (duplicate ignored)", inserted)
	}

	var cost float64
	err = pool.QueryRow(ctx, `
        SELECT shipping_cost FROM fact_shipments WHERE shipment_id = 'DHL-10001'
    `).Scan(&cost)
	if err != nil {
		t.Fatalf("Failed to read fact row: %v", err)
	}
	if cost != 120.50 {
		t.Errorf("shipping_cost = %f, want first-written 120.50", cost)
	}
}

func TestDateDimensionDerivedFields(t *testing.T) {
	store, pool := setupStore(t)
	ctx := context.Background()

	ref := time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC)
	records := testRecords()
	records[0].ShipDate = ref

	if _, err := store.LoadDimensions(ctx, records); err != nil {
		t.Fatalf("LoadDimensions failed: %v", err)
	}

	var year, quarter, month, day, weekday int
	err := pool.QueryRow(ctx, `
        SELECT year, quarter, month, day, weekday FROM dim_dates WHERE date_key = 20230715
    `).Scan(&year, &quarter, &month, &day, &weekday)
	if err != nil {
		t.Fatalf("Failed to read date dimension row: %v", err)
	}

	if year != 2023 || quarter != 3 || month != 7 || day != 15 || weekday != 5 {
		t.Errorf("Derived fields = (%d, %d, %d, %d, %d), want (2023, 3, 7, 15, 5)",
			year, quarter, month, day, weekday)
	}
}
