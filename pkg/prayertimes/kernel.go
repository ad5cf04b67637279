package prayertimes

import "math"

// Lane layout of the 29-slot per-call slab, per §3's "Slab slot" data
// model. Kept as named constants (rather than a struct) because several
// lanes are naturally addressed by event index inside the per-event loop
// in computeSlab.
const (
	laneFajrMs = iota
	laneSunriseMs
	laneDhuhrMs
	laneAsrMs
	laneMaghribMs
	laneIshaMs

	laneFajrCosH0
	laneSunriseCosH0
	laneDhuhrCosH0
	laneAsrCosH0
	laneMaghribCosH0
	laneIshaCosH0

	laneFajrFlags
	laneSunriseFlags
	laneDhuhrFlags
	laneAsrFlags
	laneMaghribFlags
	laneIshaFlags

	laneFajrAlt
	laneSunriseAlt
	laneDhuhrAlt
	laneAsrAlt
	laneMaghribAlt
	laneIshaAlt

	laneDeclination
	laneEqtMinutes
	laneSolarNoonMs
	laneJulianDate

	laneRawSunsetMs

	slabLanes
)

// Packed diagnostic flag bits, per §3.
const (
	flagClamped        = 1 << 0
	flagIshaInterval   = 1 << 1
	flagMiddleOfNight  = 1 << 2
	flagSeventhOfNight = 1 << 3
	flagTwilightAngle  = 1 << 4
)

// Undefined-bitmask bits, per §3. Sunset and maghrib share undefSunset
// since both stem from the same cos(H0).
const (
	undefFajr    = 1 << 0
	undefSunrise = 1 << 1
	undefAsr     = 1 << 2
	undefSunset  = 1 << 3
	undefIsha    = 1 << 4
)

// slab is the value-typed equivalent of §3's slab slot: a dense 29-lane
// record for one compute call. Unlike the ring-buffer original, each call
// owns its own slab; there is no aliasing or wraparound to reason about.
type slab [slabLanes]float64

// The five hour-angle events computed by the per-event loop in computeSlab,
// in the order §4.G lists them: fajr, sunrise, asr, sunset, isha. Maghrib
// is derived from sunset afterward (step 8) rather than computed directly.
var (
	msLaneByEvent    = [5]int{laneFajrMs, laneSunriseMs, laneAsrMs, laneMaghribMs, laneIshaMs}
	cosLaneByEvent   = [5]int{laneFajrCosH0, laneSunriseCosH0, laneAsrCosH0, laneMaghribCosH0, laneIshaCosH0}
	flagLaneByEvent  = [5]int{laneFajrFlags, laneSunriseFlags, laneAsrFlags, laneMaghribFlags, laneIshaFlags}
	altLaneByEvent   = [5]int{laneFajrAlt, laneSunriseAlt, laneAsrAlt, laneMaghribAlt, laneIshaAlt}
	undefBitByEvent  = [5]int{undefFajr, undefSunrise, undefAsr, undefSunset, undefIsha}
	isPMByEvent      = [5]bool{false, false, true, true, true}
)

// eventSunset is the index into the five per-event arrays above that holds
// the sunset/maghrib slot (written to laneMaghribMs before the maghrib
// adjustment is applied, and copied into laneRawSunsetMs).
const eventSunset = 3

// Engine owns the three process-wide caches described in §4.D/§4.E/§4.F
// and the lookup tables of §4.D. It has no internal synchronization (§5):
// confine an Engine to one thread, wrap it in a per-thread arena, or use
// DefaultEngine's package-level convenience functions from a single
// goroutine.
type Engine struct {
	tables       *trigTables
	solarCache   solarPositionCache
	dayConstants dayConstantsCache
	config       configCache
	logger       diagLogger
}

// NewEngine constructs an Engine with empty caches and freshly built
// lookup tables.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		tables: newTrigTables(),
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClearCache empties the solar-position, day-constants, and config caches
// and resets nothing else — per §8's idempotence law this has no effect on
// subsequent outputs, since a cleared cache simply recomputes what it
// would otherwise have served from cache.
func (e *Engine) ClearCache() {
	e.solarCache.clear()
	e.dayConstants.clear()
	e.config.clear()
	e.logger.Debugw("prayertimes: caches cleared")
}

// Compute is the one-shot entry point (§6, interface 1): resolve cfg's
// derived constants (via the config cache) and run the kernel for cfg.DateMs.
func (e *Engine) Compute(cfg Configuration) Output {
	rc := e.config.resolveFor(cfg)
	jd := julianDateFromMs(cfg.DateMs)
	s, undef := e.computeSlab(rc, jd)
	return Output{slab: s, undefinedBitmask: undef, madhab: cfg.Madhab, highLatRule: cfg.HighLatRule}
}

// computeSlab implements §4.G's protocol end to end, using today's day
// constants and, for the high-latitude fallback, tomorrow's sunrise.
func (e *Engine) computeSlab(rc resolvedConfig, jd float64) (slab, uint8) {
	var s slab
	var undef uint8

	dc := e.dayConstants.get(jd, &e.solarCache)

	s[laneDeclination] = dc.declinationToday
	s[laneEqtMinutes] = dc.eqtMinutes
	s[laneJulianDate] = jd

	// Step 5: transit (dhuhr / solar noon).
	m0 := approximateTransit(rc.lW, dc)
	noonHours, _ := correctedTransit(m0, rc.lW, dc)
	s[laneSolarNoonMs] = dc.utcMidnightMs + noonHours*3_600_000

	// Step 6: asr altitude at transit.
	declAtTransit := dc.interpolatedDeclination(noonHours / 24)
	m := rc.cfg.Latitude - declAtTransit
	asrArg := 1 / (rc.shadowFactor + math.Abs(tanDeg(m)))
	asrAltitude := e.tables.atanTable(asrArg)

	targetAltitudes := [5]float64{rc.fajrAltitude, rc.horizonAltitude, asrAltitude, rc.horizonAltitude, rc.ishaAltitude}

	// Step 7: each hour-angle event.
	for i, target := range targetAltitudes {
		s[altLaneByEvent[i]] = target

		result := hourAngleRefinement(e.tables, target, rc.sinPhi, rc.cosPhi, rc.lW, m0, isPMByEvent[i], dc)
		s[cosLaneByEvent[i]] = result.outcome.cosH0

		if result.outcome.undefined {
			undef |= uint8(undefBitByEvent[i])
			s[msLaneByEvent[i]] = math.NaN()
			continue
		}

		flags := 0
		if result.outcome.clamped {
			flags |= flagClamped
		}
		s[flagLaneByEvent[i]] = float64(flags)
		s[msLaneByEvent[i]] = dc.utcMidnightMs + result.hours*3_600_000
	}

	// Sunrise and sunset must share cos(H0)/clamp flag (invariant iv):
	// they use the identical target altitude and differ only in AM/PM
	// side, so this holds by construction of the loop above.

	sunsetUndefined := undef&undefSunset != 0

	// Step 8: sunset -> maghrib split. laneMaghribMs currently holds the
	// raw sunset time computed by the loop; preserve it in laneRawSunsetMs
	// before overwriting laneMaghribMs with the adjusted value.
	if sunsetUndefined {
		s[laneRawSunsetMs] = math.NaN()
	} else {
		s[laneRawSunsetMs] = s[laneMaghribMs]
		s[laneMaghribMs] = s[laneMaghribMs] + rc.maghribAdjMs
	}

	// Step 9: isha interval overrides the angle-based isha time when set.
	if rc.cfg.Method.IshaIntervalMinutes != 0 {
		if sunsetUndefined {
			undef |= undefIsha
			s[laneIshaMs] = math.NaN()
		} else {
			totalMinutes := rc.cfg.Method.IshaIntervalMinutes + float64(rc.cfg.Adjustments.Isha)
			s[laneIshaMs] = s[laneMaghribMs] + totalMinutes*60_000
			s[laneIshaFlags] = float64(int(s[laneIshaFlags]) | flagIshaInterval)
			s[laneIshaCosH0] = math.NaN()
			undef &^= undefIsha
		}
	} else if undef&undefIsha == 0 {
		s[laneIshaMs] += rc.ishaAdjMs
	}

	// Remaining per-event minute adjustments (fajr, sunrise, asr). Maghrib
	// already absorbed its adjustment above; isha was handled above too.
	if undef&undefFajr == 0 {
		s[laneFajrMs] += rc.fajrAdjMs
	}
	if undef&undefSunrise == 0 {
		s[laneSunriseMs] += rc.sunriseAdjMs
	}
	if undef&undefAsr == 0 {
		s[laneAsrMs] += rc.asrAdjMs
	}

	// Step 10: dhuhr, always defined.
	s[laneDhuhrMs] = dc.utcMidnightMs + noonHours*3_600_000 + rc.dhuhrAdjMs

	applyHighLatFallback(e, &s, &undef, rc, jd)

	return s, undef
}
