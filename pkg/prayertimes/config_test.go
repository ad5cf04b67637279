package prayertimes

import "testing"

func TestConfigurationValidate(t *testing.T) {
	base := Configuration{
		Latitude:  21.4225241,
		Longitude: 39.8261818,
		Elevation: 0,
		Method:    MWL.Resolve(),
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid configuration, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c Configuration) Configuration
	}{
		{"latitude too high", func(c Configuration) Configuration { c.Latitude = 91; return c }},
		{"latitude too low", func(c Configuration) Configuration { c.Latitude = -91; return c }},
		{"longitude too high", func(c Configuration) Configuration { c.Longitude = 181; return c }},
		{"longitude too low", func(c Configuration) Configuration { c.Longitude = -181; return c }},
		{"negative elevation", func(c Configuration) Configuration { c.Elevation = -1; return c }},
		{"fajr angle too high", func(c Configuration) Configuration { c.Method.FajrAngle = 91; return c }},
		{"isha angle too high without interval", func(c Configuration) Configuration {
			c.Method.IshaAngle = 91
			c.Method.IshaIntervalMinutes = 0
			return c
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.mutate(base)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error, got nil")
			}
		})
	}
}

func TestConfigCacheHitsOnUnrelatedDateChange(t *testing.T) {
	var cache configCache
	cfg := Configuration{Latitude: 10, Longitude: 20, Method: MWL.Resolve(), DateMs: 1000}

	first := cache.resolveFor(cfg)
	cfg.DateMs = 2000 // DateMs is not a relevant field per §4.F
	second := cache.resolveFor(cfg)

	if first != second {
		t.Errorf("expected cache hit across DateMs-only change: %+v != %+v", first, second)
	}
}

func TestConfigCacheMissesOnLatitudeChange(t *testing.T) {
	var cache configCache
	cfg := Configuration{Latitude: 10, Longitude: 20, Method: MWL.Resolve()}

	first := cache.resolveFor(cfg)
	cfg.Latitude = 11
	second := cache.resolveFor(cfg)

	if first.sinPhi == second.sinPhi {
		t.Errorf("expected cache miss and recompute on latitude change")
	}
}

func TestConfigCacheClear(t *testing.T) {
	var cache configCache
	cfg := Configuration{Latitude: 10, Longitude: 20, Method: MWL.Resolve()}
	cache.resolveFor(cfg)
	cache.clear()
	if cache.have {
		t.Errorf("expected clear() to reset the cache")
	}
}
