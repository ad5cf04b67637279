package prayertimes

// applyHighLatFallback implements §4.I. It runs inside the kernel after all
// events are computed and before the Output is constructed. jd is unused by
// the rule arithmetic itself (kept for the debug-log fields) since every
// fallback is plain arithmetic over lanes already on the slab.
func applyHighLatFallback(e *Engine, s *slab, undef *uint8, rc resolvedConfig, jd float64) {
	rule := rc.cfg.HighLatRule
	if rule == HighLatNone {
		return
	}

	sunriseUndefined := *undef&undefSunrise != 0
	sunsetUndefined := *undef&undefSunset != 0
	if sunriseUndefined || sunsetUndefined {
		return
	}

	nextSunriseMs := s[laneSunriseMs] + msPerDay
	rawSunsetMs := s[laneRawSunsetMs]
	nightMs := nextSunriseMs - rawSunsetMs
	if nightMs <= 0 {
		// Degenerate night duration (possible under midnight sun): decline
		// to rewrite, leaving fajr/isha undefined, per §7.
		return
	}

	fajrUndefined := *undef&undefFajr != 0
	ishaUndefined := *undef&undefIsha != 0
	if !fajrUndefined && !ishaUndefined {
		return
	}

	if fajrUndefined {
		fajrMs, flag := highLatFajr(rule, rawSunsetMs, nextSunriseMs, nightMs, rc)
		s[laneFajrMs] = fajrMs + rc.fajrAdjMs
		s[laneFajrFlags] = float64(int(s[laneFajrFlags]) | flag)
		*undef &^= undefFajr
		e.logger.Debugw("prayertimes: high-latitude fallback applied to fajr",
			"rule", rule.String(), "lat", rc.cfg.Latitude, "jd", jd)
	}

	if ishaUndefined {
		ishaMs, flag := highLatIsha(rule, rawSunsetMs, nextSunriseMs, nightMs, rc)
		s[laneIshaMs] = ishaMs + rc.ishaAdjMs
		s[laneIshaFlags] = float64(int(s[laneIshaFlags]) | flag)
		*undef &^= undefIsha
		e.logger.Debugw("prayertimes: high-latitude fallback applied to isha",
			"rule", rule.String(), "lat", rc.cfg.Latitude, "jd", jd)
	}
}

func highLatFajr(rule HighLatRule, rawSunsetMs, nextSunriseMs, nightMs float64, rc resolvedConfig) (ms float64, flag int) {
	switch rule {
	case MiddleOfNight:
		return rawSunsetMs + nightMs/2, flagMiddleOfNight
	case SeventhOfNight:
		return nextSunriseMs - nightMs/7, flagSeventhOfNight
	case TwilightAngle:
		return nextSunriseMs - (rc.cfg.Method.FajrAngle/60)*nightMs, flagTwilightAngle
	default:
		return rawSunsetMs + nightMs/2, flagMiddleOfNight
	}
}

func highLatIsha(rule HighLatRule, rawSunsetMs, nextSunriseMs, nightMs float64, rc resolvedConfig) (ms float64, flag int) {
	switch rule {
	case MiddleOfNight:
		return rawSunsetMs + nightMs/2, flagMiddleOfNight
	case SeventhOfNight:
		return rawSunsetMs + nightMs/7, flagSeventhOfNight
	case TwilightAngle:
		return rawSunsetMs + (rc.cfg.Method.IshaAngle/60)*nightMs, flagTwilightAngle
	default:
		return rawSunsetMs + nightMs/2, flagMiddleOfNight
	}
}
