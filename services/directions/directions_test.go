package directions

import (
	"math"
	"testing"
)

func TestDecodeRoutePolyline(t *testing.T) {
	// Canonical example from the polyline format docs.
	coords, err := DecodeRoutePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	if err != nil {
		t.Fatalf("DecodeRoutePolyline error: %v", err)
	}
	want := [][2]float64{
		{-120.2, 38.5},
		{-120.95, 40.7},
		{-126.453, 43.252},
	}
	if len(coords) != len(want) {
		t.Fatalf("got %d coordinates, want %d", len(coords), len(want))
	}
	for i := range want {
		if math.Abs(coords[i][0]-want[i][0]) > 1e-5 || math.Abs(coords[i][1]-want[i][1]) > 1e-5 {
			t.Errorf("coords[%d] = %v, want %v", i, coords[i], want[i])
		}
	}
}

func TestDecodeRoutePolylineEmpty(t *testing.T) {
	if _, err := DecodeRoutePolyline(""); err == nil {
		t.Fatal("expected error for empty polyline")
	}
}
