package store

import (
	"sync"
	"testing"

	"agrilink-fulfillment/internal/domain"
)

func testFleet() *FleetRegistry {
	r := NewFleetRegistry()
	r.Seed([]domain.Vehicle{
		{ID: "V1", Type: domain.VehicleMiniTruck, CapacityKg: 1000, IsAvailable: true, CostPerKm: 15},
		{ID: "V2", Type: domain.VehicleTruck, CapacityKg: 5000, IsAvailable: true, CostPerKm: 25},
		{ID: "V3", Type: domain.VehicleBike, CapacityKg: 20, IsAvailable: false, CostPerKm: 5},
	})
	return r
}

func TestFleetRegistry_ListAvailable_FiltersCapacityAndAvailability(t *testing.T) {
	t.Parallel()

	r := testFleet()
	got := r.ListAvailable(800)
	if len(got) != 2 {
		t.Fatalf("expected 2 vehicles, got %d", len(got))
	}
	if got[0].ID != "V1" || got[1].ID != "V2" {
		t.Fatalf("expected insertion order V1,V2, got %s,%s", got[0].ID, got[1].ID)
	}

	if got := r.ListAvailable(2000); len(got) != 1 || got[0].ID != "V2" {
		t.Fatalf("expected only V2 above 2000kg, got %v", got)
	}
	if got := r.ListAvailable(10000); len(got) != 0 {
		t.Fatalf("expected no vehicle above 10000kg, got %v", got)
	}
}

func TestFleetRegistry_Reserve_CAS(t *testing.T) {
	t.Parallel()

	r := testFleet()
	if !r.Reserve("V1") {
		t.Fatal("first reserve should succeed")
	}
	if r.Reserve("V1") {
		t.Fatal("second reserve should fail")
	}
	if r.Reserve("V3") {
		t.Fatal("reserve of unavailable vehicle should fail")
	}
	if r.Reserve("nope") {
		t.Fatal("reserve of unknown vehicle should fail")
	}
}

func TestFleetRegistry_Reserve_RaceExactlyOneWins(t *testing.T) {
	t.Parallel()

	r := NewFleetRegistry()
	r.Seed([]domain.Vehicle{{ID: "V1", CapacityKg: 1000, IsAvailable: true}})

	const callers = 16
	var wg sync.WaitGroup
	wins := make(chan bool, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- r.Reserve("V1")
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for w := range wins {
		if w {
			won++
		}
	}
	if won != 1 {
		t.Fatalf("expected exactly one winner, got %d", won)
	}
}

func TestFleetRegistry_MarkUnavailable_Idempotent(t *testing.T) {
	t.Parallel()

	r := testFleet()
	r.MarkUnavailable("V1")
	r.MarkUnavailable("V1")
	r.MarkUnavailable("unknown") // must not panic

	v, ok := r.Get("V1")
	if !ok || v.IsAvailable {
		t.Fatalf("V1 should be unavailable, got %+v ok=%v", v, ok)
	}
}

func TestFleetRegistry_MarkAvailable_ReturnsVehicleToPool(t *testing.T) {
	t.Parallel()

	r := testFleet()
	r.MarkAvailable("V3")
	if got := r.ListAvailable(10); len(got) != 3 {
		t.Fatalf("expected V3 back in the pool, got %d vehicles", len(got))
	}
}
