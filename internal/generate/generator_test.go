package generate

import (
	"math"
	"regexp"
	"testing"
	"time"
)

func testConfig(rows int) Config {
	return Config{
		Rows:      rows,
		Seed:      42,
		StartDate: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRecordsCountAndIDs(t *testing.T) {
	records := New(testConfig(200)).Records()

	if len(records) != 200 {
		t.Fatalf("Expected 200 records, got %d", len(records))
	}

	idPattern := regexp.MustCompile(`^DHL-\d+$`)
	seen := make(map[string]bool)
	for _, r := range records {
		if !idPattern.MatchString(r.ShipmentID) {
			t.Errorf("Bad shipment id: %q", r.ShipmentID)
		}
		if seen[r.ShipmentID] {
			t.Errorf("Duplicate shipment id: %q", r.ShipmentID)
		}
		seen[r.ShipmentID] = true
	}
}

func TestRecordsReproducibleWithSeed(t *testing.T) {
	a := New(testConfig(50)).Records()
	b := New(testConfig(50)).Records()

	for i := range a {
		ar, br := a[i], b[i]
		// NaN != NaN, so compare costs separately.
		costsEqual := ar.ShippingCost == br.ShippingCost ||
			(math.IsNaN(ar.ShippingCost) && math.IsNaN(br.ShippingCost))
		ar.ShippingCost, br.ShippingCost = 0, 0
		if ar != br || !costsEqual {
			t.Fatalf("Record %d differs between seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRecordsDefectMix(t *testing.T) {
	records := New(testConfig(1000)).Records()

	for i, r := range records {
		switch {
		case i%10 == 0:
			// Messy DD-MM-YYYY rendering
			if _, err := time.Parse(messyDateLayout, r.ShipDate); err != nil {
				t.Errorf("Record %d: expected messy ship date, got %q", i, r.ShipDate)
			}
		case i%5 == 0:
			if r.ShipDate != "" {
				t.Errorf("Record %d: expected missing ship date, got %q", i, r.ShipDate)
			}
		default:
			if _, err := time.Parse(isoDateLayout, r.ShipDate); err != nil {
				t.Errorf("Record %d: expected ISO ship date, got %q", i, r.ShipDate)
			}
		}

		switch {
		case i%20 == 0:
			if !(r.ShippingCost < 0) {
				t.Errorf("Record %d: expected negative cost, got %f", i, r.ShippingCost)
			}
		case i%25 == 0:
			if !math.IsNaN(r.ShippingCost) {
				t.Errorf("Record %d: expected missing cost, got %f", i, r.ShippingCost)
			}
		default:
			if math.IsNaN(r.ShippingCost) || r.ShippingCost < 50 || r.ShippingCost > 500 {
				t.Errorf("Record %d: cost %f out of range", i, r.ShippingCost)
			}
		}

		if r.OriginCity == r.DestinationCity && r.OriginState == r.DestinationState {
			t.Errorf("Record %d: origin and destination are identical", i)
		}
		if r.PromisedDeliveryDate == "" {
			t.Errorf("Record %d: promised delivery date missing", i)
		}
	}
}

func TestRecordsPromisedAfterShip(t *testing.T) {
	records := New(testConfig(500)).Records()

	for i, r := range records {
		ship, err := time.Parse(isoDateLayout, r.ShipDate)
		if err != nil {
			continue // messy or missing ship dates checked elsewhere
		}
		promised, err := time.Parse(isoDateLayout, r.PromisedDeliveryDate)
		if err != nil {
			t.Fatalf("Record %d: bad promised date %q", i, r.PromisedDeliveryDate)
		}
		days := int(promised.Sub(ship).Hours() / 24)
		if days < 3 || days > 10 {
			t.Errorf("Record %d: promised %d days after ship, want 3-10", i, days)
		}
	}
}
