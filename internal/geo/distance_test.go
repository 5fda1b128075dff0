package geo

import (
	"math"
	"testing"

	"agrilink-fulfillment/internal/domain"
)

var (
	khanna = domain.Coordinate{Lat: 30.7046, Lng: 76.7179}
	noida  = domain.Coordinate{Lat: 28.5706, Lng: 77.3272}
	mumbai = domain.Coordinate{Lat: 19.1136, Lng: 72.8697}
)

func TestDistance_SamePointIsZero(t *testing.T) {
	t.Parallel()

	for _, c := range []domain.Coordinate{khanna, noida, mumbai, {}} {
		if d := Distance(c, c); d != 0 {
			t.Fatalf("distance(%v, %v) = %v, want 0", c, c, d)
		}
	}
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	ab := Distance(khanna, noida)
	ba := Distance(noida, khanna)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestDistance_KnownLeg(t *testing.T) {
	t.Parallel()

	// Khanna (Punjab) to Noida (Delhi NCR) is roughly 244 km great-circle.
	d := Distance(khanna, noida)
	if d < 240 || d > 250 {
		t.Fatalf("khanna-noida distance = %v km, want ~244", d)
	}
}

func TestDistance_Positive(t *testing.T) {
	t.Parallel()

	if d := Distance(noida, mumbai); d <= 0 {
		t.Fatalf("expected positive distance, got %v", d)
	}
}
