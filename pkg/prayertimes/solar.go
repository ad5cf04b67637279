package prayertimes

import "math"

// msPerDay is the number of milliseconds in a civil day, used throughout
// the package to move between epoch milliseconds and Julian Date.
const msPerDay = 86_400_000.0

// unixEpochJD is the Julian Date of the POSIX epoch (1970-01-01T00:00:00Z).
const unixEpochJD = 2440587.5

// julianDateFromMs converts absolute time in milliseconds since the POSIX
// epoch to a Julian Date. This is the fast path described in §4.B; the
// civil-calendar formula (Y, M, D) is not needed since every caller already
// has epoch milliseconds.
func julianDateFromMs(ms float64) float64 {
	return ms/msPerDay + unixEpochJD
}

// julianCentury returns the number of Julian centuries since J2000.0 for a
// given Julian Date.
func julianCentury(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

// solarPosition holds the Meeus low-precision solar series outputs for a
// single Julian Date. All angular fields are in degrees; eqtMinutes is in
// minutes of time.
type solarPosition struct {
	julianDate           float64
	declination          float64 // δ, degrees
	rightAscension       float64 // α, degrees, normalized [0,360)
	apparentSiderealTime float64 // Θapp, degrees
	eqtMinutes           float64 // equation of time, minutes
	eclipticLongitude    float64 // apparent longitude λ, degrees
	obliquity            float64 // apparent (corrected) obliquity ε, degrees
}

// computeSolarPosition implements §4.B: the Meeus Chapter 25 low-precision
// solar series plus apparent sidereal time (Chapter 12) and the equation of
// time (Chapter 28), sharing intermediate sin/cos terms across the
// declination, right-ascension, nutation, and equation-of-time outputs.
func computeSolarPosition(jd float64) solarPosition {
	T := julianCentury(jd)
	T2 := T * T
	T3 := T2 * T

	// Mean solar longitude, mean anomaly, eccentricity, equation of center.
	L0 := normalize(280.4664567 + 36000.76983*T + 0.0003032*T2)
	M := normalize(357.52911 + 35999.05029*T - 0.0001537*T2)
	e := 0.016708634 - 0.000042037*T - 0.0000001267*T2

	sinM := sinDeg(M)
	sin2M := sinDeg(2 * M)
	sin3M := sinDeg(3 * M)

	C := (1.914602-0.004817*T-0.000014*T2)*sinM +
		(0.019993-0.000101*T)*sin2M +
		0.000289*sin3M

	trueLongitude := normalize(L0 + C)

	// Apparent longitude: correct true longitude for the ascending node of
	// the Moon's mean orbit.
	omega := 125.04 - 1934.136*T
	lambda := normalize(trueLongitude - 0.00569 - 0.00478*sinDeg(omega))

	// Mean obliquity of the ecliptic.
	eps0 := 23.439291 - 0.013004167*T - 1.639e-7*T2 + 5.036e-7*T3

	// Low-precision nutation in longitude and obliquity.
	Lp := 218.3165 + 481267.8813*T        // mean lunar longitude
	omegaP := 125.04452 - 1934.136261*T + 0.0020708*T2 + T3/450000

	sinOmegaP := sinDeg(omegaP)
	sin2L0 := sinDeg(2 * L0)
	sin2Lp := sinDeg(2 * Lp)
	sin2OmegaP := sinDeg(2 * omegaP)

	cosOmegaP := cosDeg(omegaP)
	cos2L0 := cosDeg(2 * L0)
	cos2Lp := cosDeg(2 * Lp)
	cos2OmegaP := cosDeg(2 * omegaP)

	deltaPsi := -(17.2/3600)*sinOmegaP - (1.32/3600)*sin2L0 -
		(0.23/3600)*sin2Lp + (0.21/3600)*sin2OmegaP
	deltaEps := (9.2/3600)*cosOmegaP + (0.57/3600)*cos2L0 +
		(0.10/3600)*cos2Lp - (0.09/3600)*cos2OmegaP

	eps := eps0 + deltaEps

	sinEps := sinDeg(eps)
	cosEps := cosDeg(eps)
	sinLambda := sinDeg(lambda)
	cosLambda := cosDeg(lambda)

	declination := asinDeg(sinEps * sinLambda)
	rightAscension := normalize(atan2Deg(cosEps*sinLambda, cosLambda))

	// Mean and apparent sidereal time at Greenwich.
	theta0 := normalize(280.46061837 + 360.98564736629*(jd-2451545.0) +
		0.000387933*T2 - T3/38710000)
	thetaApp := theta0 + deltaPsi*cosEps

	// Equation of time, Meeus (28.3), expressed via y = tan^2(eps/2).
	y := math.Pow(tanDeg(eps/2), 2)
	eqtRad := y*sin2L0 - 2*e*sinM + 4*e*y*sinM*cos2L0 -
		0.5*y*y*sinDeg(4*L0) - 1.25*e*e*sin2M
	eqtMinutes := eqtRad * 229.18

	return solarPosition{
		julianDate:           jd,
		declination:          declination,
		rightAscension:       rightAscension,
		apparentSiderealTime: thetaApp,
		eqtMinutes:           eqtMinutes,
		eclipticLongitude:    lambda,
		obliquity:            eps,
	}
}
