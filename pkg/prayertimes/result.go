package prayertimes

import "math"

// FallbackKind identifies which rule, if any, produced a result, per §3's
// diagnostics schema.
type FallbackKind int

const (
	FallbackNone FallbackKind = iota
	FallbackInterval
	FallbackMiddleOfNight
	FallbackSeventhOfNight
	FallbackTwilightAngle
)

func (f FallbackKind) String() string {
	switch f {
	case FallbackInterval:
		return "interval"
	case FallbackMiddleOfNight:
		return "middle_of_night"
	case FallbackSeventhOfNight:
		return "seventh_of_night"
	case FallbackTwilightAngle:
		return "twilight_angle"
	default:
		return "none"
	}
}

func fallbackFromFlags(flags int) FallbackKind {
	switch {
	case flags&flagIshaInterval != 0:
		return FallbackInterval
	case flags&flagMiddleOfNight != 0:
		return FallbackMiddleOfNight
	case flags&flagSeventhOfNight != 0:
		return FallbackSeventhOfNight
	case flags&flagTwilightAngle != 0:
		return FallbackTwilightAngle
	default:
		return FallbackNone
	}
}

// Diagnostics carries the per-prayer debugging fields named in §6.
type Diagnostics struct {
	CosOmega       *float64 // nil when not applicable (e.g. interval-based isha)
	Clamped        bool
	FallbackUsed   FallbackKind
	TargetAltitude float64
}

// Result is the tagged union described in §3/§9: either a valid time or an
// explanation of why the event is undefined for this date/location.
type Result struct {
	Valid       bool
	Ms          float64
	Reason      string
	Diagnostics Diagnostics
}

func validResult(ms float64, diag Diagnostics) Result {
	return Result{Valid: true, Ms: ms, Diagnostics: diag}
}

func undefinedResult(reason string, diag Diagnostics) Result {
	return Result{Valid: false, Reason: reason, Diagnostics: diag}
}

// Metadata carries the per-call astronomical metadata named in §6.
type Metadata struct {
	DeclinationDeg float64
	EqtMinutes     float64
	SolarNoonMs    float64
	JulianDate     float64
	Madhab         Madhab
	HighLatRule    HighLatRule
}

// Output is the lazy projection of a compute call's slab into the eleven
// discriminated-union prayer results described in §6. It is cheap to copy
// and holds no external references (see SPEC_FULL.md's note on replacing
// the ring-buffer slab with a value type).
type Output struct {
	slab             slab
	undefinedBitmask uint8
	madhab           Madhab
	highLatRule      HighLatRule
}

func (o Output) diagFor(cosLane, flagsLane, altLane int) Diagnostics {
	flags := int(o.slab[flagsLane])
	diag := Diagnostics{
		Clamped:        flags&flagClamped != 0,
		FallbackUsed:   fallbackFromFlags(flags),
		TargetAltitude: o.slab[altLane],
	}
	if cos := o.slab[cosLane]; !math.IsNaN(cos) {
		v := cos
		diag.CosOmega = &v
	}
	return diag
}

func (o Output) eventResult(undefBit uint8, msLane, cosLane, flagsLane, altLane int, reason string) Result {
	diag := o.diagFor(cosLane, flagsLane, altLane)
	if o.undefinedBitmask&undefBit != 0 {
		return undefinedResult(reason, diag)
	}
	return validResult(o.slab[msLane], diag)
}

// Fajr returns the dawn result.
func (o Output) Fajr() Result {
	return o.eventResult(undefFajr, laneFajrMs, laneFajrCosH0, laneFajrFlags, laneFajrAlt,
		"geometrically undefined: fajr altitude never reached")
}

// Sunrise returns the sunrise result.
func (o Output) Sunrise() Result {
	return o.eventResult(undefSunrise, laneSunriseMs, laneSunriseCosH0, laneSunriseFlags, laneSunriseAlt,
		"geometrically undefined: sunrise altitude never reached")
}

// Dhuhr returns the solar-transit result. Always valid, per §4.G step 10.
func (o Output) Dhuhr() Result {
	diag := o.diagFor(laneDhuhrCosH0, laneDhuhrFlags, laneDhuhrAlt)
	return validResult(o.slab[laneDhuhrMs], diag)
}

// Asr returns the afternoon-shadow result.
func (o Output) Asr() Result {
	return o.eventResult(undefAsr, laneAsrMs, laneAsrCosH0, laneAsrFlags, laneAsrAlt,
		"geometrically undefined: asr altitude never reached")
}

// Sunset returns the raw (unadjusted) sunset result, the anchor for
// night-division derivations per §4.H.
func (o Output) Sunset() Result {
	diag := o.diagFor(laneMaghribCosH0, laneMaghribFlags, laneMaghribAlt)
	if o.undefinedBitmask&undefSunset != 0 {
		return undefinedResult("sunset or sunrise undefined", diag)
	}
	return validResult(o.slab[laneRawSunsetMs], diag)
}

// Maghrib returns the sunset time plus its minute adjustment (or the
// isha-interval anchor), distinct from Sunset's raw anchor per §4.H.
func (o Output) Maghrib() Result {
	diag := o.diagFor(laneMaghribCosH0, laneMaghribFlags, laneMaghribAlt)
	if o.undefinedBitmask&undefSunset != 0 {
		return undefinedResult("sunset or sunrise undefined", diag)
	}
	return validResult(o.slab[laneMaghribMs], diag)
}

// Isha returns the evening result.
func (o Output) Isha() Result {
	return o.eventResult(undefIsha, laneIshaMs, laneIshaCosH0, laneIshaFlags, laneIshaAlt,
		"geometrically undefined: isha altitude never reached")
}

// Midnight returns the night midpoint, anchored to raw sunset and an
// approximation of tomorrow's sunrise (today's adjusted sunrise plus 24h),
// per §4.H.
func (o Output) Midnight() Result {
	if o.undefinedBitmask&(undefSunrise|undefSunset) != 0 {
		return undefinedResult("sunset or sunrise undefined", Diagnostics{})
	}
	nextSunrise := o.slab[laneSunriseMs] + msPerDay
	return validResult((o.slab[laneRawSunsetMs]+nextSunrise)/2, Diagnostics{})
}

// Imsak returns fajr minus ten minutes exactly, per invariant (iii).
func (o Output) Imsak() Result {
	fajr := o.Fajr()
	if !fajr.Valid {
		return undefinedResult("fajr is undefined", fajr.Diagnostics)
	}
	return validResult(fajr.Ms-600_000, fajr.Diagnostics)
}

// FirstThird returns the end of the first third of the night, per §4.H.
func (o Output) FirstThird() Result {
	return o.nightDivision(1)
}

// LastThird returns the start of the last third of the night, per §4.H.
func (o Output) LastThird() Result {
	return o.nightDivision(2)
}

func (o Output) nightDivision(thirds int) Result {
	if o.undefinedBitmask&(undefSunrise|undefSunset) != 0 {
		return undefinedResult("sunset or sunrise undefined", Diagnostics{})
	}
	nextSunrise := o.slab[laneSunriseMs] + msPerDay
	rawSunset := o.slab[laneRawSunsetMs]
	night := nextSunrise - rawSunset
	return validResult(rawSunset+float64(thirds)*night/3, Diagnostics{})
}

// Metadata returns the per-call astronomical metadata.
func (o Output) Metadata() Metadata {
	return Metadata{
		DeclinationDeg: o.slab[laneDeclination],
		EqtMinutes:     o.slab[laneEqtMinutes],
		SolarNoonMs:    o.slab[laneSolarNoonMs],
		JulianDate:     o.slab[laneJulianDate],
		Madhab:         o.madhab,
		HighLatRule:    o.highLatRule,
	}
}
