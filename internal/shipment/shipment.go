//-------------------------------------------------------------------------
//
// Shipment Warehouse ETL
//
// Copyright (c) 2025 - 2026, ParcelHQ, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package shipment defines the domain records that flow through the pipeline.
package shipment

import "time"

// RawRecord is a shipment record as it arrives from the source extract.
// String fields use "" for a missing value; ShippingCost uses NaN, matching
// the source system which emits blank cells for unknown costs.
type RawRecord struct {
	ShipmentID           string
	ShipDate             string
	PromisedDeliveryDate string
	ActualDeliveryDate   string
	OriginCity           string
	OriginState          string
	DestinationCity      string
	DestinationState     string
	ShippingCost         float64
	CarrierName          string
	Status               string // always empty in the raw extract
}

// CleanRecord is an analysis-ready shipment record. ShipDate is always
// present; promised and actual delivery dates are nil when the source value
// was absent or unparseable. ShippingCost is never negative or NaN and
// CarrierName is never empty.
type CleanRecord struct {
	ShipmentID           string
	ShipDate             time.Time
	PromisedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	OriginCity           string
	OriginState          string
	DestinationCity      string
	DestinationState     string
	ShippingCost         float64
	CarrierName          string
	Status               Status
}

// Status classifies a shipment by comparing its delivery dates.
type Status string

const (
	StatusInTransit Status = "In-Transit"
	StatusOnTime    Status = "On-Time"
	StatusDelayed   Status = "Delayed"
	StatusUnknown   Status = "Unknown"
)

// Location is the natural key of a location dimension row.
type Location struct {
	City  string
	State string
}

// Origin returns the record's origin location.
func (r *CleanRecord) Origin() Location {
	return Location{City: r.OriginCity, State: r.OriginState}
}

// Destination returns the record's destination location.
func (r *CleanRecord) Destination() Location {
	return Location{City: r.DestinationCity, State: r.DestinationState}
}
