package prayertimes

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// Table densities per §4.D. The combined error budget of these tables plus
// the Meeus series keeps every output within 1 second of a native-trig
// reference across the 14,600-sample regression in TestPrecisionBudget;
// halving either density violates that budget.
const (
	sinSamplesPerDegree = 5
	sinTableLo          = -540.0
	sinTableHi          = 630.0

	acosSamplesPerHalf = 4096
	atanSamplesPerHalf = 4096
)

// trigTables owns the pre-built sin/acos/atan lookup tables backing the
// hot compute path. NewEngine builds one set per Engine; the tables do not
// depend on any configuration or date.
type trigTables struct {
	sin  interp.PiecewiseLinear
	acos interp.PiecewiseLinear
	atan interp.PiecewiseLinear
}

func newTrigTables() *trigTables {
	t := &trigTables{}

	n := int((sinTableHi-sinTableLo)*sinSamplesPerDegree) + 1
	xs := make([]float64, n)
	ys := make([]float64, n)
	step := 1.0 / sinSamplesPerDegree
	for i := 0; i < n; i++ {
		theta := sinTableLo + float64(i)*step
		xs[i] = theta
		ys[i] = math.Sin(degToRad(theta))
	}
	if err := t.sin.Fit(xs, ys); err != nil {
		panic("prayertimes: failed to build sin table: " + err.Error())
	}

	acosXs, acosYs := buildHalfRangeSamples(acosSamplesPerHalf, math.Acos)
	if err := t.acos.Fit(acosXs, acosYs); err != nil {
		panic("prayertimes: failed to build acos table: " + err.Error())
	}

	atanXs, atanYs := buildHalfRangeSamples(atanSamplesPerHalf, math.Atan)
	if err := t.atan.Fit(atanXs, atanYs); err != nil {
		panic("prayertimes: failed to build atan table: " + err.Error())
	}

	return t
}

// buildHalfRangeSamples produces 2*samplesPerHalf+1 evenly spaced samples of
// fn over [-1, 1], used for the acos/atan tables which are specified in
// "samples per half-range" terms.
func buildHalfRangeSamples(samplesPerHalf int, fn func(float64) float64) (xs, ys []float64) {
	n := 2*samplesPerHalf + 1
	xs = make([]float64, n)
	ys = make([]float64, n)
	step := 1.0 / float64(samplesPerHalf)
	for i := 0; i < n; i++ {
		x := -1.0 + float64(i)*step
		xs[i] = x
		ys[i] = fn(x)
	}
	return xs, ys
}

// sinDegTable evaluates the table-backed sine of a degree angle, falling
// back to native trig outside the table's domain (caller error per §4.D).
func (t *trigTables) sinDegTable(theta float64) float64 {
	if theta < sinTableLo || theta > sinTableHi {
		return sinDeg(theta)
	}
	return t.sin.Predict(theta)
}

// cosDegTable evaluates cosine by reusing the sine table with a 90-degree
// shifted index base, per §4.D.
func (t *trigTables) cosDegTable(theta float64) float64 {
	return t.sinDegTable(theta + 90)
}

// acosTable evaluates table-backed acos in degrees. Input is pre-clamped by
// callers (epsilon-clamp policy in §4.C); this function clamps defensively.
func (t *trigTables) acosTable(x float64) float64 {
	return radToDeg(t.acos.Predict(clamp(x, -1, 1)))
}

// atanTable evaluates table-backed atan in degrees, used only for the asr
// target altitude whose argument is bounded to [-1, 1] by construction.
func (t *trigTables) atanTable(x float64) float64 {
	return radToDeg(t.atan.Predict(clamp(x, -1, 1)))
}

// solarCacheSize is the 512-slot ring described in §4.D/§4.E.
const solarCacheSize = 512

// solarPositionCache is a fixed-size, unsynchronized cache of solarPosition
// values keyed by integer Julian Date. It has no internal synchronization
// per §5; callers sharing an Engine across threads must provide their own.
type solarPositionCache struct {
	slots [solarCacheSize]solarPosition
	valid [solarCacheSize]bool
}

func solarCacheKey(jdInt int64) int {
	k := jdInt % solarCacheSize
	if k < 0 {
		k += solarCacheSize
	}
	return int(k)
}

// get returns the cached solar position for the integer Julian Date keyed
// by (JD+0.5) truncated to int, per §4.D. A hit requires the stored key to
// equal jd exactly; anything else is a miss (and, if occupied, a collision
// that the caller's put() will overwrite).
func (c *solarPositionCache) get(jd float64) (solarPosition, bool) {
	slot := solarCacheKey(int64(jd + 0.5))
	if c.valid[slot] && c.slots[slot].julianDate == jd {
		return c.slots[slot], true
	}
	return solarPosition{}, false
}

func (c *solarPositionCache) put(pos solarPosition) {
	slot := solarCacheKey(int64(pos.julianDate + 0.5))
	c.slots[slot] = pos
	c.valid[slot] = true
}

func (c *solarPositionCache) clear() {
	for i := range c.valid {
		c.valid[i] = false
	}
}
