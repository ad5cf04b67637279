package prayertimes

import "math"

// hourAngleEpsilon is the tolerance used to distinguish a geometrically
// impossible event from floating-point noise around cos(H0) = +/-1. Tuned
// to the Meeus series plus the lookup-table precision; do not change it
// without re-running the precision-budget regression (see tables.go).
const hourAngleEpsilon = 1e-6

// hourAngleOutcome is the result of the epsilon-clamp policy in §4.C.
type hourAngleOutcome struct {
	cosH0     float64 // raw value, preserved for diagnostics even when undefined
	clamped   bool
	undefined bool
}

// evaluateCosH0 computes cos(H0) for a target altitude and applies the
// epsilon-clamp policy: values whose magnitude exceeds 1+epsilon are
// geometrically impossible (sun never reaches that altitude that day);
// values within epsilon of the boundary are floating-point noise and are
// snapped to +/-1. Uses the table-backed sine since this runs once per
// event in the hot per-call loop (§4.D).
func evaluateCosH0(tables *trigTables, targetAltitude, sinPhiSinDelta, cosPhiCosDelta float64) hourAngleOutcome {
	cosH0 := (tables.sinDegTable(targetAltitude) - sinPhiSinDelta) / cosPhiCosDelta

	out := hourAngleOutcome{cosH0: cosH0}
	if cosH0 < -(1+hourAngleEpsilon) || cosH0 > 1+hourAngleEpsilon {
		out.undefined = true
		return out
	}
	if cosH0 < -1 || cosH0 > 1 {
		out.clamped = true
		out.cosH0 = clamp(cosH0, -1, 1)
	}
	return out
}

// quadraticInterpolate implements the Meeus Chapter 15 three-point
// quadratic interpolation: for consecutive daily samples y1, y2, y3 at
// fraction n in [0,1] of the way from y2 toward y3 (n measured from the
// central sample), return the interpolated value at n.
func quadraticInterpolate(y1, y2, y3, n float64) float64 {
	a := y2 - y1
	b := y3 - y2
	c := b - a
	return y2 + (n/2)*(a+b+n*c)
}

// quadraticInterpolateAngle is the angle-aware variant: first differences
// are normalized through [0,360) before interpolating, so a quantity like
// right ascension that wraps at 360 degrees interpolates correctly across
// the wrap.
func quadraticInterpolateAngle(y1, y2, y3, n float64) float64 {
	a := normalizeDelta(y2 - y1)
	b := normalizeDelta(y3 - y2)
	c := b - a
	return y2 + (n/2)*(a+b+n*c)
}

// normalizeDelta maps a difference of two [0,360) angles into (-180, 180]
// so that, e.g., a right-ascension step from 359 to 1 degrees reads as +2
// rather than -358.
func normalizeDelta(d float64) float64 {
	d = math.Mod(d, 360)
	switch {
	case d > 180:
		return d - 360
	case d <= -180:
		return d + 360
	default:
		return d
	}
}

// dayConstants holds the per-Julian-Date, location-independent quantities
// described in §3, used by both the transit and hour-angle refinements.
type dayConstants struct {
	julianDate            float64
	utcMidnightMs         float64
	greenwichSiderealTime float64 // Θapp of the day
	rightAscensionToday   float64
	declinationToday      float64
	raInterpSum           float64 // Δ- + Δ+
	raInterpDiff          float64 // Δ+ - Δ-
	declInterpSum         float64
	declInterpDiff        float64
	sinDeclToday          float64
	cosDeclToday          float64
	eqtMinutes            float64
}

// interpolatedRightAscension returns alpha_m, the right ascension
// interpolated to fraction m of the day, per the quadratic formula in §4.C.
func (d dayConstants) interpolatedRightAscension(m float64) float64 {
	am := normalize(d.rightAscensionToday + 0.5*m*(d.raInterpSum+m*d.raInterpDiff))
	// One add-or-subtract is sufficient since inputs are bounded (§4.G).
	if am < 0 {
		am += 360
	} else if am >= 360 {
		am -= 360
	}
	return am
}

// interpolatedDeclination returns delta_m, declination interpolated to
// fraction m of the day.
func (d dayConstants) interpolatedDeclination(m float64) float64 {
	return d.declinationToday + 0.5*m*(d.declInterpSum+m*d.declInterpDiff)
}

// advancedSiderealTime returns Θ_m, apparent sidereal time advanced by
// fraction m of a day, reduced into [0,360) using at most two subtractions
// per §4.G (guaranteed to converge since m is bounded to roughly [-1, 1]).
func (d dayConstants) advancedSiderealTime(m float64) float64 {
	theta := d.greenwichSiderealTime + 360.985647*m
	for theta >= 360 {
		theta -= 360
	}
	for theta < 0 {
		theta += 360
	}
	return theta
}

// approximateTransit returns m0, the approximate fraction of the day (UTC)
// at which the sun crosses the local meridian, per §4.C's transit formula.
// lW is the west-positive longitude (Meeus convention: lW = -longitude).
func approximateTransit(lW float64, d dayConstants) float64 {
	m0 := (d.rightAscensionToday + lW - d.greenwichSiderealTime) / 360
	return frac(m0)
}

// frac returns the fractional part of x, folded into [0, 1).
func frac(x float64) float64 {
	f := x - math.Floor(x)
	return f
}

// correctedTransit implements §4.C's corrected-transit refinement and
// returns solar noon as UTC hours (0-24), along with the local hour angle
// used in the refinement for diagnostic purposes.
func correctedTransit(m0, lW float64, d dayConstants) (noonHours, localHourAngle float64) {
	thetaM := d.advancedSiderealTime(m0)
	alphaM := d.interpolatedRightAscension(m0)
	H := normalize180(thetaM - lW - alphaM)
	mCorrected := m0 - H/360
	return mCorrected * 24, H
}

// hourAngleRefinement implements the Meeus Chapter 15 single-step
// refinement of §4.C for a corrected hour-angle event (sunrise, sunset,
// fajr, isha, asr). targetAltitude and isPM select which side of transit
// the event falls on. Returns the event time as UTC hours and the
// hour-angle outcome used to produce it.
type hourAngleResult struct {
	outcome   hourAngleOutcome
	hours     float64 // UTC hours, only meaningful when !outcome.undefined
}

func hourAngleRefinement(tables *trigTables, targetAltitude, sinPhi, cosPhi, lW, m0 float64, isPM bool, d dayConstants) hourAngleResult {
	sinPhiSinDelta := sinPhi * d.sinDeclToday
	cosPhiCosDelta := cosPhi * d.cosDeclToday

	outcome := evaluateCosH0(tables, targetAltitude, sinPhiSinDelta, cosPhiCosDelta)
	if outcome.undefined {
		return hourAngleResult{outcome: outcome}
	}

	H0 := tables.acosTable(outcome.cosH0)

	var m float64
	if isPM {
		m = m0 + H0/360
	} else {
		m = m0 - H0/360
	}

	thetaM := d.advancedSiderealTime(m)
	alphaM := d.interpolatedRightAscension(m)
	deltaM := d.interpolatedDeclination(m)

	hLocal := thetaM - lW - alphaM
	sinAlt := sinPhi*tables.sinDegTable(deltaM) + cosPhi*tables.cosDegTable(deltaM)*tables.cosDegTable(hLocal)
	h := asinDeg(sinAlt)

	sinHLocal := tables.sinDegTable(hLocal)
	dm := (h - targetAltitude) / (360 * tables.cosDegTable(deltaM) * cosPhi * sinHLocal)

	return hourAngleResult{outcome: outcome, hours: (m + dm) * 24}
}
