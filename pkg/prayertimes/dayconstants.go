package prayertimes

// dayConstantsCache implements §4.E: a 512-slot ring, keyed the same way as
// the solar-position cache, of location-independent per-Julian-Date
// constants. On a miss it fetches (or computes and caches) solar positions
// for JD-1, JD, and JD+1.
type dayConstantsCache struct {
	slots [solarCacheSize]dayConstants
	valid [solarCacheSize]bool
}

func (c *dayConstantsCache) clear() {
	for i := range c.valid {
		c.valid[i] = false
	}
}

// get returns the day constants for jd, populating the solar-position cache
// and this cache on a miss.
func (c *dayConstantsCache) get(jd float64, solarCache *solarPositionCache) dayConstants {
	slot := solarCacheKey(int64(jd + 0.5))
	if c.valid[slot] && c.slots[slot].julianDate == jd {
		return c.slots[slot]
	}

	yesterday := fetchSolarPosition(solarCache, jd-1)
	today := fetchSolarPosition(solarCache, jd)
	tomorrow := fetchSolarPosition(solarCache, jd+1)

	deltaMinus := normalizeDelta(today.rightAscension - yesterday.rightAscension)
	deltaPlus := normalizeDelta(tomorrow.rightAscension - today.rightAscension)

	dc := dayConstants{
		julianDate:            jd,
		utcMidnightMs:         (jd - unixEpochJD) * msPerDay,
		greenwichSiderealTime: today.apparentSiderealTime,
		rightAscensionToday:   today.rightAscension,
		declinationToday:      today.declination,
		raInterpSum:           deltaMinus + deltaPlus,
		raInterpDiff:          deltaPlus - deltaMinus,
		declInterpSum:         (today.declination - yesterday.declination) + (tomorrow.declination - today.declination),
		declInterpDiff:        (tomorrow.declination - today.declination) - (today.declination - yesterday.declination),
		sinDeclToday:          sinDeg(today.declination),
		cosDeclToday:          cosDeg(today.declination),
		eqtMinutes:            today.eqtMinutes,
	}

	c.slots[slot] = dc
	c.valid[slot] = true
	return dc
}

// fetchSolarPosition serves a solar position from the cache, computing and
// populating it on a miss.
func fetchSolarPosition(cache *solarPositionCache, jd float64) solarPosition {
	if pos, ok := cache.get(jd); ok {
		return pos
	}
	pos := computeSolarPosition(jd)
	cache.put(pos)
	return pos
}
