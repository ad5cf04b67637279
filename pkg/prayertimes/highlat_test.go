package prayertimes

import "testing"

// TestInvariantVIHighLatFallbackMakesFajrIshaValid checks invariant (vi):
// under any high-lat rule other than none, if fajr/isha is undefined but
// sunset and next sunrise are defined with positive night duration, the
// event is made valid by the selected rule.
func TestInvariantVIHighLatFallbackMakesFajrIshaValid(t *testing.T) {
	for _, rule := range []HighLatRule{MiddleOfNight, SeventhOfNight, TwilightAngle} {
		e := NewEngine()
		cfg := Configuration{
			Latitude:    60.0, // the sun still sets at the solstice, but never reaches the fajr/isha angles
			Longitude:   25.0,
			DateMs:      dateMsUTC(2026, 6, 21),
			Method:      MethodAngles{FajrAngle: 18, IshaAngle: 17},
			HighLatRule: rule,
		}
		out := e.Compute(cfg)
		if !out.Sunset().Valid || !out.Sunrise().Valid {
			t.Skipf("rule=%v: sunset/sunrise themselves undefined at this sample, cannot exercise fallback", rule)
			continue
		}
		if !out.Fajr().Valid {
			t.Errorf("rule=%v: expected fajr made valid by fallback", rule)
		}
		if !out.Isha().Valid {
			t.Errorf("rule=%v: expected isha made valid by fallback", rule)
		}
	}
}

func TestHighLatNoneLeavesUndefinedUntouched(t *testing.T) {
	e := NewEngine()
	cfg := Configuration{
		Latitude:    71.0,
		Longitude:   25.78,
		DateMs:      dateMsUTC(2026, 6, 21),
		Method:      MethodAngles{FajrAngle: 18, IshaAngle: 17},
		HighLatRule: HighLatNone,
	}
	out := e.Compute(cfg)
	if out.Fajr().Valid || out.Isha().Valid {
		t.Errorf("expected fajr/isha to remain undefined with high_lat_rule=none")
	}
}

func TestHighLatMiddleOfNightFormula(t *testing.T) {
	rawSunset, nextSunrise, night := 1000.0, 1000.0+12*3_600_000, 12*3_600_000.0
	rc := resolvedConfig{cfg: Configuration{Method: MethodAngles{FajrAngle: 18, IshaAngle: 17}}}

	fajrMs, flag := highLatFajr(MiddleOfNight, rawSunset, nextSunrise, night, rc)
	if fajrMs != rawSunset+night/2 || flag != flagMiddleOfNight {
		t.Errorf("highLatFajr(middle_of_night) = %v, %v", fajrMs, flag)
	}
	ishaMs, flag := highLatIsha(MiddleOfNight, rawSunset, nextSunrise, night, rc)
	if ishaMs != rawSunset+night/2 || flag != flagMiddleOfNight {
		t.Errorf("highLatIsha(middle_of_night) = %v, %v", ishaMs, flag)
	}
}

func TestHighLatSeventhOfNightFormula(t *testing.T) {
	rawSunset, nextSunrise, night := 1000.0, 1000.0+12*3_600_000, 12*3_600_000.0
	rc := resolvedConfig{cfg: Configuration{Method: MethodAngles{FajrAngle: 18, IshaAngle: 17}}}

	fajrMs, _ := highLatFajr(SeventhOfNight, rawSunset, nextSunrise, night, rc)
	if fajrMs != nextSunrise-night/7 {
		t.Errorf("highLatFajr(seventh_of_night) = %v, want %v", fajrMs, nextSunrise-night/7)
	}
	ishaMs, _ := highLatIsha(SeventhOfNight, rawSunset, nextSunrise, night, rc)
	if ishaMs != rawSunset+night/7 {
		t.Errorf("highLatIsha(seventh_of_night) = %v, want %v", ishaMs, rawSunset+night/7)
	}
}

func TestHighLatTwilightAngleFormula(t *testing.T) {
	rawSunset, nextSunrise, night := 1000.0, 1000.0+12*3_600_000, 12*3_600_000.0
	rc := resolvedConfig{cfg: Configuration{Method: MethodAngles{FajrAngle: 18, IshaAngle: 17}}}

	fajrMs, _ := highLatFajr(TwilightAngle, rawSunset, nextSunrise, night, rc)
	wantFajr := nextSunrise - (18.0/60)*night
	if fajrMs != wantFajr {
		t.Errorf("highLatFajr(twilight_angle) = %v, want %v", fajrMs, wantFajr)
	}
	ishaMs, _ := highLatIsha(TwilightAngle, rawSunset, nextSunrise, night, rc)
	wantIsha := rawSunset + (17.0/60)*night
	if ishaMs != wantIsha {
		t.Errorf("highLatIsha(twilight_angle) = %v, want %v", ishaMs, wantIsha)
	}
}
