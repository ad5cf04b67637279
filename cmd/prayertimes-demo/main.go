package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/prayertimes/prayertimes/pkg/prayertimes"
)

func main() {
	var (
		timeStr   string
		latitude  float64
		longitude float64
		elevation float64
		method    string
		hanafi    bool
		highLat   string
	)
	flag.StringVar(&timeStr, "time", "", "UTC date to calculate for (RFC3339 format, e.g., 2026-02-25T00:00:00Z)")
	flag.Float64Var(&latitude, "lat", 21.4225241, "observer latitude, degrees")
	flag.Float64Var(&longitude, "lng", 39.8261818, "observer longitude, degrees")
	flag.Float64Var(&elevation, "elevation", 0, "observer elevation, meters")
	flag.StringVar(&method, "method", "mwl", "calculation method: mwl, isna, umm_al_qura, gulf, karachi, egypt, tehran, jafari, diyanet")
	flag.BoolVar(&hanafi, "hanafi", false, "use the hanafi asr shadow factor instead of standard")
	flag.StringVar(&highLat, "high-lat-rule", "none", "high-latitude fallback rule: none, middle_of_night, seventh_of_night, twilight_angle")
	flag.Parse()

	var t time.Time
	if timeStr == "" {
		t = time.Now().UTC()
	} else {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	m, err := parseMethod(method)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	rule, err := parseHighLatRule(highLat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	madhab := prayertimes.Standard
	if hanafi {
		madhab = prayertimes.Hanafi
	}

	cfg := prayertimes.Configuration{
		Latitude:    latitude,
		Longitude:   longitude,
		Elevation:   elevation,
		DateMs:      float64(t.UnixMilli()),
		Method:      m.Resolve(),
		Madhab:      madhab,
		HighLatRule: rule,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	out := prayertimes.Compute(cfg)

	fmt.Printf("Prayer times for %s (lat %.4f, lng %.4f)\n", t.Format(time.RFC3339), latitude, longitude)
	fmt.Printf("  method:       %s, madhab: %s, high-lat rule: %s\n", m, madhab, rule)
	printResult("Fajr", out.Fajr())
	printResult("Sunrise", out.Sunrise())
	printResult("Dhuhr", out.Dhuhr())
	printResult("Asr", out.Asr())
	printResult("Sunset", out.Sunset())
	printResult("Maghrib", out.Maghrib())
	printResult("Isha", out.Isha())
	printResult("Midnight", out.Midnight())
	printResult("Imsak", out.Imsak())
	printResult("First third", out.FirstThird())
	printResult("Last third", out.LastThird())

	meta := out.Metadata()
	fmt.Printf("  declination: %.4f deg, eqt: %.4f min, solar noon: %d ms, JD: %.6f\n",
		meta.DeclinationDeg, meta.EqtMinutes, int64(meta.SolarNoonMs), meta.JulianDate)

	qibla := prayertimes.ComputeQibla(latitude, longitude)
	fmt.Printf("  qibla bearing: %.2f deg\n", qibla)
}

func printResult(label string, r prayertimes.Result) {
	if !r.Valid {
		fmt.Printf("  %-12s undefined (%s)\n", label, r.Reason)
		return
	}
	fmt.Printf("  %-12s %d ms", label, int64(r.Ms))
	if r.Diagnostics.FallbackUsed != prayertimes.FallbackNone {
		fmt.Printf(" [fallback=%s]", r.Diagnostics.FallbackUsed)
	}
	if r.Diagnostics.Clamped {
		fmt.Printf(" [clamped]")
	}
	fmt.Println()
}

func parseMethod(s string) (prayertimes.Method, error) {
	switch s {
	case "mwl":
		return prayertimes.MWL, nil
	case "isna":
		return prayertimes.ISNA, nil
	case "umm_al_qura":
		return prayertimes.UmmAlQura, nil
	case "gulf":
		return prayertimes.Gulf, nil
	case "karachi":
		return prayertimes.Karachi, nil
	case "egypt":
		return prayertimes.Egypt, nil
	case "tehran":
		return prayertimes.Tehran, nil
	case "jafari":
		return prayertimes.Jafari, nil
	case "diyanet":
		return prayertimes.Diyanet, nil
	default:
		return 0, fmt.Errorf("unknown method %q", s)
	}
}

func parseHighLatRule(s string) (prayertimes.HighLatRule, error) {
	switch s {
	case "none":
		return prayertimes.HighLatNone, nil
	case "middle_of_night":
		return prayertimes.MiddleOfNight, nil
	case "seventh_of_night":
		return prayertimes.SeventhOfNight, nil
	case "twilight_angle":
		return prayertimes.TwilightAngle, nil
	default:
		return 0, fmt.Errorf("unknown high-latitude rule %q", s)
	}
}
