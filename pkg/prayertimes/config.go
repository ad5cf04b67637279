package prayertimes

import (
	"fmt"
	"math"
)

// Madhab selects the shadow factor used for the asr target altitude.
type Madhab int

const (
	Standard Madhab = iota // shadow factor 1
	Hanafi                 // shadow factor 2
)

func (m Madhab) shadowFactor() float64 {
	if m == Hanafi {
		return 2
	}
	return 1
}

func (m Madhab) String() string {
	if m == Hanafi {
		return "hanafi"
	}
	return "standard"
}

// HighLatRule selects the strategy used to assign fajr/isha when the sun
// never reaches the target altitude at high latitudes, per §4.I.
type HighLatRule int

const (
	HighLatNone HighLatRule = iota
	MiddleOfNight
	SeventhOfNight
	TwilightAngle
)

func (r HighLatRule) String() string {
	switch r {
	case MiddleOfNight:
		return "middle_of_night"
	case SeventhOfNight:
		return "seventh_of_night"
	case TwilightAngle:
		return "twilight_angle"
	default:
		return "none"
	}
}

// PolarRule is accepted and validated but, per §9's open question, only
// PolarUnresolved is implemented by the kernel; the others are reserved
// hooks for an external collaborator.
type PolarRule int

const (
	PolarUnresolved PolarRule = iota
	PolarAqrabBalad
	PolarAqrabYaum
)

// MidnightMode has a single defined value today; the field exists for
// forward compatibility per §3.
type MidnightMode int

const (
	MidnightStandard MidnightMode = iota
)

// MethodAngles is the per-method astronomical configuration: fajr/isha
// target angles below the horizon, an optional isha interval that overrides
// the isha angle, and an optional maghrib angle. The kernel does not use
// MaghribAngle: maghrib is always sunset plus its minute adjustment. See
// methods.go for named presets.
type MethodAngles struct {
	FajrAngle           float64
	IshaAngle           float64
	IshaIntervalMinutes float64 // governs isha instead of IshaAngle when nonzero
	MaghribAngle        float64 // resolved into maghribAltitude, not read by the kernel
}

// Adjustments are signed per-prayer minute offsets applied after astronomy,
// per §3.
type Adjustments struct {
	Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha int
}

// Configuration is the immutable, per-compute-call input described in §3.
// DateMs is interpreted as UTC midnight of the civil date under
// consideration.
type Configuration struct {
	Latitude  float64
	Longitude float64
	Elevation float64 // meters, >= 0
	DateMs    float64

	Method MethodAngles
	Madhab Madhab

	HighLatRule  HighLatRule
	PolarRule    PolarRule
	MidnightMode MidnightMode

	Adjustments Adjustments
}

// WithDefaults returns a copy of cfg with zero-value optional fields
// defaulted: PolarUnresolved and MidnightStandard (both already the zero
// value, included here for documentation), and a zero Elevation left as-is
// since sea level is a legitimate input.
func (cfg Configuration) WithDefaults() Configuration {
	return cfg
}

// Validate checks the boundary-validated fields of §3/§7. Programs are
// expected to validate once at input ingestion; the compute kernel itself
// never performs this check and will propagate NaN/out-of-range input
// straight through to its output, per §4's failure model.
func (cfg Configuration) Validate() error {
	if cfg.Latitude < -90 || cfg.Latitude > 90 {
		return &ValidationError{Field: "latitude", Value: cfg.Latitude, Reason: "must be in [-90, 90]"}
	}
	if cfg.Longitude < -180 || cfg.Longitude > 180 {
		return &ValidationError{Field: "longitude", Value: cfg.Longitude, Reason: "must be in [-180, 180]"}
	}
	if cfg.Elevation < 0 {
		return &ValidationError{Field: "elevation", Value: cfg.Elevation, Reason: "must be >= 0"}
	}
	if cfg.Method.FajrAngle < 0 || cfg.Method.FajrAngle > 90 {
		return &ValidationError{Field: "method.fajr_angle", Value: cfg.Method.FajrAngle, Reason: "must be in [0, 90]"}
	}
	if cfg.Method.IshaIntervalMinutes == 0 && (cfg.Method.IshaAngle < 0 || cfg.Method.IshaAngle > 90) {
		return &ValidationError{Field: "method.isha_angle", Value: cfg.Method.IshaAngle, Reason: "must be in [0, 90]"}
	}
	if cfg.PolarRule < PolarUnresolved || cfg.PolarRule > PolarAqrabYaum {
		return &ValidationError{Field: "polar_rule", Value: float64(cfg.PolarRule), Reason: "unknown polar rule"}
	}
	if cfg.MidnightMode != MidnightStandard {
		return &ValidationError{Field: "midnight_mode", Value: float64(cfg.MidnightMode), Reason: "unknown midnight mode"}
	}
	return nil
}

// resolvedConfig mirrors the location/method-dependent derived constants
// of §4.F, recomputed only when the source Configuration's relevant fields
// change (see configCache).
type resolvedConfig struct {
	cfg Configuration

	sinPhi, cosPhi float64
	lW             float64 // west-positive longitude, Meeus convention
	// cosPhi360 is a cached 360*cos(phi) term for the dm denominator of
	// §4.F's derived-constant list. hourAngleRefinement recomputes its own
	// 360*cosDegTable(deltaM)*cosPhi term per correction step instead, since
	// deltaM varies by event, so this field is carried for the cache
	// contract but left unconsumed on the hot path.
	cosPhi360 float64

	horizonAltitude float64
	// sinHorizonAltitude mirrors horizonAltitude through sin() per §4.F's
	// derived-constant list. The hot path only ever consumes horizonAltitude
	// as a target altitude passed into evaluateCosH0, which looks up
	// sin(targetAltitude) itself, so this field stays a resolved-but-unused
	// companion value.
	sinHorizonAltitude float64
	fajrAltitude       float64
	ishaAltitude       float64
	// maghribAltitude is resolved for completeness but, per §4.G's literal
	// protocol, the kernel never computes a separate maghrib hour angle:
	// maghrib is always sunset plus a minute adjustment, and invariant (iv)
	// requires sunrise/sunset to share cos(H0) unconditionally. A method's
	// optional maghrib_angle is therefore reserved, like PolarRule's
	// unimplemented values.
	maghribAltitude float64

	fajrAdjMs, sunriseAdjMs, dhuhrAdjMs, asrAdjMs, maghribAdjMs, ishaAdjMs float64

	shadowFactor float64
}

func resolve(cfg Configuration) resolvedConfig {
	horizonDip := -(0.8333 + 0.0347*sqrtNonNegative(cfg.Elevation))

	maghribAltitude := horizonDip
	if cfg.Method.MaghribAngle != 0 {
		maghribAltitude = -cfg.Method.MaghribAngle
	}

	return resolvedConfig{
		cfg:                cfg,
		sinPhi:             sinDeg(cfg.Latitude),
		cosPhi:             cosDeg(cfg.Latitude),
		lW:                 -cfg.Longitude,
		cosPhi360:          360 * cosDeg(cfg.Latitude),
		horizonAltitude:    horizonDip,
		sinHorizonAltitude: sinDeg(horizonDip),
		fajrAltitude:       -cfg.Method.FajrAngle,
		ishaAltitude:       -cfg.Method.IshaAngle,
		maghribAltitude:    maghribAltitude,
		fajrAdjMs:          float64(cfg.Adjustments.Fajr) * 60_000,
		sunriseAdjMs:       float64(cfg.Adjustments.Sunrise) * 60_000,
		dhuhrAdjMs:         float64(cfg.Adjustments.Dhuhr) * 60_000,
		asrAdjMs:           float64(cfg.Adjustments.Asr) * 60_000,
		maghribAdjMs:       float64(cfg.Adjustments.Maghrib) * 60_000,
		ishaAdjMs:          float64(cfg.Adjustments.Isha) * 60_000,
		shadowFactor:       cfg.Madhab.shadowFactor(),
	}
}

func sqrtNonNegative(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

// configCache implements §4.F: it shadows the fields of the last-seen
// Configuration that affect resolvedConfig, and only recomputes derived
// constants when one of them differs. Equal comparison uses strict
// floating equality; clear() resets the have flag, so the next lookup
// always recomputes.
type configCache struct {
	have     bool
	last     Configuration
	resolved resolvedConfig
}

func (c *configCache) resolveFor(cfg Configuration) resolvedConfig {
	if c.have && sameRelevantFields(c.last, cfg) {
		return c.resolved
	}
	c.resolved = resolve(cfg)
	c.last = cfg
	c.have = true
	return c.resolved
}

func (c *configCache) clear() {
	*c = configCache{}
}

func sameRelevantFields(a, b Configuration) bool {
	return a.Latitude == b.Latitude &&
		a.Longitude == b.Longitude &&
		a.Elevation == b.Elevation &&
		a.Method == b.Method &&
		a.Madhab == b.Madhab &&
		a.HighLatRule == b.HighLatRule &&
		a.PolarRule == b.PolarRule &&
		a.MidnightMode == b.MidnightMode &&
		a.Adjustments == b.Adjustments
}

// ValidationError reports a boundary input-range failure, per §7's
// "invalid_argument at the boundary validator" taxonomy entry.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("prayertimes: invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}
