package prayertimes

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// TestJulianDateFromMsAgreesWithMeeus cross-checks the package's fast
// epoch-ms-to-JD conversion against an independent JD implementation.
func TestJulianDateFromMsAgreesWithMeeus(t *testing.T) {
	times := []time.Time{
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 21, 6, 30, 0, 0, time.UTC),
	}
	for _, tm := range times {
		got := julianDateFromMs(float64(tm.UnixMilli()))
		want := julian.TimeToJD(tm)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("julianDateFromMs(%v) = %v, want %v (meeus)", tm, got, want)
		}
	}
}

func TestJulianCentury(t *testing.T) {
	// J2000.0 epoch should be exactly zero Julian centuries.
	if got := julianCentury(2451545.0); math.Abs(got) > 1e-12 {
		t.Errorf("julianCentury(J2000) = %v, want 0", got)
	}
}

func TestComputeSolarPositionBounds(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for _, month := range []time.Month{time.March, time.June, time.September, time.December} {
			tm := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
			jd := julianDateFromMs(float64(tm.UnixMilli()))
			pos := computeSolarPosition(jd)

			if math.Abs(pos.declination) > 23.5 {
				t.Errorf("%v: declination = %v, want |d| <= 23.5", tm, pos.declination)
			}
			if pos.rightAscension < 0 || pos.rightAscension >= 360 {
				t.Errorf("%v: rightAscension = %v, want [0,360)", tm, pos.rightAscension)
			}
			if math.Abs(pos.eqtMinutes) >= 17 {
				t.Errorf("%v: eqtMinutes = %v, want |eqt| < 17", tm, pos.eqtMinutes)
			}
		}
	}
}

func TestComputeSolarPositionDeterministic(t *testing.T) {
	jd := julianDateFromMs(float64(time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC).UnixMilli()))
	a := computeSolarPosition(jd)
	b := computeSolarPosition(jd)
	if a != b {
		t.Errorf("computeSolarPosition(%v) is not deterministic: %+v != %+v", jd, a, b)
	}
}
