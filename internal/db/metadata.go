//-------------------------------------------------------------------------
//
// Shipment Warehouse ETL
//
// Portions copyright (c) 2025 - 2026, ParcelHQ, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parcelhq/shipment-warehouse/internal/logging"
	"github.com/parcelhq/shipment-warehouse/pkg/version"
)

const metadataTable = "etl_metadata"

// createMetadataTableSQL creates the metadata table if it doesn't exist.
const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS etl_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// RunInfo summarizes a completed pipeline run for the metadata table.
type RunInfo struct {
	Seed          uint64
	RowsGenerated int
	RowsCleaned   int
	FactsInserted int64
}

// SaveRunMetadata records the outcome of a pipeline run in the database.
func SaveRunMetadata(ctx context.Context, pool *pgxpool.Pool, info RunInfo) error {
	// Create table if it doesn't exist
	_, err := pool.Exec(ctx, createMetadataTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	// Insert or update metadata
	metadata := map[string]string{
		"version":        version.Short(),
		"last_run_at":    time.Now().UTC().Format(time.RFC3339),
		"seed":           strconv.FormatUint(info.Seed, 10),
		"rows_generated": strconv.Itoa(info.RowsGenerated),
		"rows_cleaned":   strconv.Itoa(info.RowsCleaned),
		"facts_inserted": strconv.FormatInt(info.FactsInserted, 10),
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, `
            INSERT INTO etl_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Int("rows_generated", info.RowsGenerated).
		Int64("facts_inserted", info.FactsInserted).
		Msg("Saved run metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM etl_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// GetAllMetadata retrieves all metadata as a map.
func GetAllMetadata(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	rows, err := pool.Query(ctx, `SELECT key, value FROM etl_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", metadataTable))
	return err
}
