package prayertimes

import (
	"math"
	"testing"
)

// TestQiblaScenarios mirrors spec scenario 6.
func TestQiblaScenarios(t *testing.T) {
	tests := []struct {
		name          string
		lat, lng      float64
		wantBearing   float64
	}{
		{"New York", 40.7128, -74.006, 58.48},
		{"Sydney", -33.8688, 151.2093, 277.50},
		{"London", 51.5074, -0.1278, 118.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeQibla(tt.lat, tt.lng)
			if math.Abs(got-tt.wantBearing) > 0.5 {
				t.Errorf("ComputeQibla(%v, %v) = %v, want ~%v", tt.lat, tt.lng, got, tt.wantBearing)
			}
		})
	}
}

func TestQiblaBearingRange(t *testing.T) {
	for lat := -80.0; lat <= 80; lat += 7.3 {
		for lng := -180.0; lng < 180; lng += 23.1 {
			got := ComputeQibla(lat, lng)
			if got < 0 || got >= 360 {
				t.Errorf("ComputeQibla(%v, %v) = %v, want [0, 360)", lat, lng, got)
			}
		}
	}
}

func TestQiblaDeterministic(t *testing.T) {
	a := ComputeQibla(21.0, 39.0)
	b := ComputeQibla(21.0, 39.0)
	if a != b {
		t.Errorf("expected deterministic qibla bearing: %v != %v", a, b)
	}
}
