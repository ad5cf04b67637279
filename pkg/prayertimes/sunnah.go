package prayertimes

// SunnahTimes holds the two night-division points used for supererogatory
// prayer guidance, per §4.K.
type SunnahTimes struct {
	MiddleOfNightMs float64
	LastThirdMs     float64
}

// ComputeSunnahTimes is pure arithmetic over today's sunset and tomorrow's
// fajr, with no caching, per §4.K.
func ComputeSunnahTimes(sunsetMs, nextFajrMs float64) SunnahTimes {
	n := nextFajrMs - sunsetMs
	return SunnahTimes{
		MiddleOfNightMs: sunsetMs + n/2,
		LastThirdMs:     sunsetMs + 2*n/3,
	}
}
