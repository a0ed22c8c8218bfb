//-------------------------------------------------------------------------
//
// Shipment Warehouse ETL
//
// Copyright (c) 2025 - 2026, ParcelHQ, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package warehouse implements the star-schema storage layer: schema
// management, the set-based dimension load, and the idempotent fact load.
package warehouse

import "context"

// Schema SQL for the shipment star schema: one fact table, three dimensions.
const createSchemaSQL = `
-- Locations: origin and destination cities
CREATE TABLE IF NOT EXISTS dim_locations (
    location_id SERIAL PRIMARY KEY,
    city        VARCHAR(255) NOT NULL,
    state       VARCHAR(50) NOT NULL,
    UNIQUE (city, state)
);

-- Carriers: canonical carrier names
CREATE TABLE IF NOT EXISTS dim_carriers (
    carrier_id   SERIAL PRIMARY KEY,
    carrier_name VARCHAR(255) UNIQUE NOT NULL
);

-- Dates: one row per calendar date, keyed YYYYMMDD
CREATE TABLE IF NOT EXISTS dim_dates (
    date_key  INTEGER PRIMARY KEY,
    full_date DATE UNIQUE NOT NULL,
    year      INTEGER NOT NULL,
    quarter   INTEGER NOT NULL,
    month     INTEGER NOT NULL,
    day       INTEGER NOT NULL,
    weekday   INTEGER NOT NULL
);

-- Shipments: one row per shipment id
CREATE TABLE IF NOT EXISTS fact_shipments (
    shipment_fact_id         SERIAL PRIMARY KEY,
    shipment_id              VARCHAR(50) UNIQUE NOT NULL,
    ship_date_key            INTEGER NOT NULL REFERENCES dim_dates(date_key),
    promised_date_key        INTEGER REFERENCES dim_dates(date_key),
    actual_delivery_date_key INTEGER REFERENCES dim_dates(date_key),
    origin_location_id       INTEGER NOT NULL REFERENCES dim_locations(location_id),
    destination_location_id  INTEGER NOT NULL REFERENCES dim_locations(location_id),
    carrier_id               INTEGER NOT NULL REFERENCES dim_carriers(carrier_id),
    shipping_cost            NUMERIC(10,2) NOT NULL,
    shipment_status          VARCHAR(50) NOT NULL
);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS fact_shipments;
DROP TABLE IF EXISTS dim_dates;
DROP TABLE IF EXISTS dim_carriers;
DROP TABLE IF EXISTS dim_locations;
`

// CreateSchema creates the star schema tables if they don't already exist.
func (s *Store) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, createSchemaSQL)
	return err
}

// DropSchema drops the star schema tables.
func (s *Store) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, dropSchemaSQL)
	return err
}
