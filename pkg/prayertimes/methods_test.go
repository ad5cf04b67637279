package prayertimes

import "testing"

func TestMethodResolvePresets(t *testing.T) {
	tests := []struct {
		method             Method
		wantFajr, wantIsha float64
		wantIntervalMin    float64
	}{
		{MWL, 18, 17, 0},
		{ISNA, 15, 15, 0},
		{UmmAlQura, 18.5, 0, 90},
		{Gulf, 19.5, 0, 90},
		{Karachi, 18, 18, 0},
		{Egypt, 19.5, 17.5, 0},
		{Tehran, 17.7, 14, 0},
		{Jafari, 16, 14, 0},
		{Diyanet, 18, 17, 0},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			got := tt.method.Resolve()
			if got.FajrAngle != tt.wantFajr {
				t.Errorf("FajrAngle = %v, want %v", got.FajrAngle, tt.wantFajr)
			}
			if got.IshaAngle != tt.wantIsha {
				t.Errorf("IshaAngle = %v, want %v", got.IshaAngle, tt.wantIsha)
			}
			if got.IshaIntervalMinutes != tt.wantIntervalMin {
				t.Errorf("IshaIntervalMinutes = %v, want %v", got.IshaIntervalMinutes, tt.wantIntervalMin)
			}
		})
	}
}

func TestMethodStringRoundTrip(t *testing.T) {
	methods := []Method{MWL, ISNA, UmmAlQura, Gulf, Karachi, Egypt, Tehran, Jafari, Diyanet}
	seen := map[string]bool{}
	for _, m := range methods {
		s := m.String()
		if s == "" {
			t.Errorf("method %d has empty String()", m)
		}
		if seen[s] {
			t.Errorf("duplicate method name %q", s)
		}
		seen[s] = true
	}
}
