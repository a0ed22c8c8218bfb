//-------------------------------------------------------------------------
//
// Shipment Warehouse ETL
//
// Portions copyright (c) 2025 - 2026, ParcelHQ, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package pipeline orchestrates the batch ETL run: generation,
// transformation, dimension load, fact load. Phases run strictly in
// sequence; a failed phase halts the run with a typed error.
package pipeline

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parcelhq/shipment-warehouse/internal/config"
	"github.com/parcelhq/shipment-warehouse/internal/db"
	"github.com/parcelhq/shipment-warehouse/internal/generate"
	"github.com/parcelhq/shipment-warehouse/internal/logging"
	"github.com/parcelhq/shipment-warehouse/internal/transform"
	"github.com/parcelhq/shipment-warehouse/internal/warehouse"
)

// Result summarizes a completed pipeline run.
type Result struct {
	Generated     int
	Cleaned       int
	Dropped       int
	Dimensions    warehouse.DimensionCounts
	FactsInserted int64
}

// Run executes the full pipeline against an already-connected warehouse.
func Run(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (*Result, error) {
	startDate, err := cfg.Generate.ParseStartDate()
	if err != nil {
		return nil, NewError(KindConfig, err)
	}

	raw := generate.New(generate.Config{
		Rows:      cfg.Generate.Rows,
		Seed:      cfg.Generate.Seed,
		StartDate: startDate,
	}).Records()

	clean := transform.Clean(raw)

	store := warehouse.NewStore(pool, cfg.Load.BatchSize)
	if err := store.CreateSchema(ctx); err != nil {
		return nil, NewError(KindSchema, err)
	}

	counts, err := store.LoadDimensions(ctx, clean)
	if err != nil {
		return nil, NewError(KindLoad, err)
	}

	inserted, err := store.LoadFacts(ctx, clean)
	if err != nil {
		return nil, NewError(KindLoad, err)
	}

	result := &Result{
		Generated:     len(raw),
		Cleaned:       len(clean),
		Dropped:       len(raw) - len(clean),
		Dimensions:    counts,
		FactsInserted: inserted,
	}

	// Run metadata is informational; a failure here doesn't undo the load.
	if err := db.SaveRunMetadata(ctx, pool, db.RunInfo{
		Seed:          cfg.Generate.Seed,
		RowsGenerated: result.Generated,
		RowsCleaned:   result.Cleaned,
		FactsInserted: result.FactsInserted,
	}); err != nil {
		logging.Warn().Err(err).Msg("Failed to save run metadata")
	}

	return result, nil
}
