//-------------------------------------------------------------------------
//
// Shipment Warehouse ETL
//
// Portions copyright (c) 2025 - 2026, ParcelHQ, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package generate produces the synthetic raw shipment extract. The output
// deliberately carries the data-quality defects of the upstream source:
// mixed date formats, missing values, inconsistent carrier casing, and
// sign errors in costs.
package generate

import (
	"fmt"
	"math"
	"time"

	"github.com/parcelhq/shipment-warehouse/internal/datagen"
	"github.com/parcelhq/shipment-warehouse/internal/logging"
	"github.com/parcelhq/shipment-warehouse/internal/shipment"
)

// Date formats seen in the raw extract.
const (
	isoDateLayout   = "2006-01-02"
	messyDateLayout = "02-01-2006"
)

// cities are the (city, state) pairs shipments move between.
var cities = []shipment.Location{
	{City: "New York", State: "NY"},
	{City: "Los Angeles", State: "CA"},
	{City: "Chicago", State: "IL"},
	{City: "Houston", State: "TX"},
	{City: "Phoenix", State: "AZ"},
	{City: "Philadelphia", State: "PA"},
	{City: "San Antonio", State: "TX"},
	{City: "San Diego", State: "CA"},
	{City: "Dallas", State: "TX"},
	{City: "San Jose", State: "CA"},
	{City: "Miami", State: "FL"},
	{City: "Denver", State: "CO"},
	{City: "Seattle", State: "WA"},
	{City: "Boston", State: "MA"},
	{City: "Atlanta", State: "GA"},
}

// carriers as they appear in the source, including case duplicates and the
// empty string.
var carriers = []string{
	"SpeedyShip",
	"speedyship",
	"Reliable Freight",
	"Global Cargo",
	"Quick Haul",
	"quick haul",
	"",
}

// Config holds configuration for raw-data generation.
type Config struct {
	// Rows is the number of raw records to produce.
	Rows int

	// Seed seeds the generator (0 = time-based).
	Seed uint64

	// StartDate is the earliest possible ship date.
	StartDate time.Time

	// ProgressInterval is how often to log progress (in rows).
	ProgressInterval int64
}

// Generator produces messy raw shipment records.
type Generator struct {
	faker *datagen.Faker
	cfg   Config
}

// New creates a generator for the given configuration.
func New(cfg Config) *Generator {
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = 100000
	}
	faker := datagen.NewFaker()
	if cfg.Seed != 0 {
		faker = datagen.NewFakerWithSeed(cfg.Seed)
	}
	return &Generator{faker: faker, cfg: cfg}
}

// Records generates the full raw record set.
func (g *Generator) Records() []shipment.RawRecord {
	logging.Info().
		Int("rows", g.cfg.Rows).
		Time("start_date", g.cfg.StartDate).
		Msg("Generating raw shipment data")

	progress := datagen.NewProgressReporter(
		"raw_shipments", int64(g.cfg.Rows), g.cfg.ProgressInterval)

	records := make([]shipment.RawRecord, 0, g.cfg.Rows)
	for i := 0; i < g.cfg.Rows; i++ {
		records = append(records, g.record(i))
		progress.Update(1)
	}

	progress.Done()
	return records
}

// record generates a single raw record. The defect pattern is keyed off the
// row index so the defect mix is stable regardless of row count.
func (g *Generator) record(i int) shipment.RawRecord {
	origin := datagen.Choose(g.faker, cities)
	dest := origin
	for dest == origin {
		dest = datagen.Choose(g.faker, cities)
	}

	shipDate := g.cfg.StartDate.AddDate(0, 0, g.faker.Int(0, 500))

	var shipDateStr string
	switch {
	case i%10 == 0:
		shipDateStr = shipDate.Format(messyDateLayout)
	case i%5 == 0:
		shipDateStr = "" // missing
	default:
		shipDateStr = shipDate.Format(isoDateLayout)
	}

	promised := shipDate.AddDate(0, 0, g.faker.Int(3, 10))

	var actualStr string
	switch dice := g.faker.Float64(0, 1); {
	case dice < 0.2:
		// Late delivery
		actualStr = promised.AddDate(0, 0, g.faker.Int(1, 3)).Format(isoDateLayout)
	case dice < 0.25:
		// Early delivery
		actualStr = promised.AddDate(0, 0, -1).Format(isoDateLayout)
	case dice < 0.3:
		actualStr = "" // still in transit
	default:
		actualStr = promised.Format(isoDateLayout)
	}

	cost := math.Round(g.faker.Float64(50, 500)*100) / 100
	switch {
	case i%20 == 0:
		cost = -cost // sign error
	case i%25 == 0:
		cost = math.NaN() // missing
	}

	return shipment.RawRecord{
		ShipmentID:           fmt.Sprintf("DHL-%d", 10000+i),
		ShipDate:             shipDateStr,
		PromisedDeliveryDate: promised.Format(isoDateLayout),
		ActualDeliveryDate:   actualStr,
		OriginCity:           origin.City,
		OriginState:          origin.State,
		DestinationCity:      dest.City,
		DestinationState:     dest.State,
		ShippingCost:         cost,
		CarrierName:          datagen.Choose(g.faker, carriers),
	}
}
