package warehouse

import (
	"slices"
	"testing"
	"time"

	"github.com/parcelhq/shipment-warehouse/internal/shipment"
)

func cleanRecord(id string) shipment.CleanRecord {
	promised := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)
	actual := time.Date(2023, time.March, 6, 0, 0, 0, 0, time.UTC)
	return shipment.CleanRecord{
		ShipmentID:           id,
		ShipDate:             time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
		PromisedDeliveryDate: &promised,
		ActualDeliveryDate:   &actual,
		OriginCity:           "Chicago",
		OriginState:          "IL",
		DestinationCity:      "Miami",
		DestinationState:     "FL",
		ShippingCost:         120.50,
		CarrierName:          "Speedyship",
		Status:               shipment.StatusDelayed,
	}
}

func TestDistinctLocations(t *testing.T) {
	a := cleanRecord("DHL-10001")
	b := cleanRecord("DHL-10002")
	// b reverses a's route, so no new pairs appear.
	b.OriginCity, b.OriginState = "Miami", "FL"
	b.DestinationCity, b.DestinationState = "Chicago", "IL"
	c := cleanRecord("DHL-10003")
	c.DestinationCity, c.DestinationState = "Denver", "CO"

	got := distinctLocations([]shipment.CleanRecord{a, b, c})

	want := []shipment.Location{
		{City: "Chicago", State: "IL"},
		{City: "Denver", State: "CO"},
		{City: "Miami", State: "FL"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("distinctLocations = %v, want %v", got, want)
	}
}

func TestDistinctCarriers(t *testing.T) {
	a := cleanRecord("DHL-10001")
	b := cleanRecord("DHL-10002")
	b.CarrierName = "Unknown"
	c := cleanRecord("DHL-10003")

	got := distinctCarriers([]shipment.CleanRecord{a, b, c})

	want := []string{"Speedyship", "Unknown"}
	if !slices.Equal(got, want) {
		t.Errorf("distinctCarriers = %v, want %v", got, want)
	}
}

func TestDistinctDates(t *testing.T) {
	a := cleanRecord("DHL-10001")
	b := cleanRecord("DHL-10002")
	b.PromisedDeliveryDate = nil
	b.ActualDeliveryDate = nil
	c := cleanRecord("DHL-10003")
	later := time.Date(2023, time.March, 9, 0, 0, 0, 0, time.UTC)
	c.ActualDeliveryDate = &later

	got := distinctDates([]shipment.CleanRecord{a, b, c})

	wantKeys := []int{20230301, 20230305, 20230306, 20230309}
	if len(got) != len(wantKeys) {
		t.Fatalf("Got %d dates, want %d", len(got), len(wantKeys))
	}
	for i, d := range got {
		if shipment.DateKey(d) != wantKeys[i] {
			t.Errorf("Date %d: key %d, want %d", i, shipment.DateKey(d), wantKeys[i])
		}
	}
}

func TestDistinctDatesExcludesMissing(t *testing.T) {
	r := cleanRecord("DHL-10001")
	r.PromisedDeliveryDate = nil
	r.ActualDeliveryDate = nil

	got := distinctDates([]shipment.CleanRecord{r})

	if len(got) != 1 || shipment.DateKey(got[0]) != 20230301 {
		t.Errorf("distinctDates = %v, want only the ship date", got)
	}
}
