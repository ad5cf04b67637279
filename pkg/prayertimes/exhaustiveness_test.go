package prayertimes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResultTagExhaustiveness asserts the Valid/Undefined union's two tags
// are mutually exclusive and that every field the inactive tag would need
// is left at its zero value, since Result is a plain struct rather than a
// language-level sum type.
func TestResultTagExhaustiveness(t *testing.T) {
	valid := validResult(12345, Diagnostics{TargetAltitude: -18})
	require.True(t, valid.Valid)
	require.Empty(t, valid.Reason)
	require.Equal(t, float64(12345), valid.Ms)

	undefined := undefinedResult("geometrically undefined: fajr altitude never reached", Diagnostics{TargetAltitude: -18})
	require.False(t, undefined.Valid)
	require.NotEmpty(t, undefined.Reason)
	require.Zero(t, undefined.Ms)
}

func TestOutputAccessorsCoverAllElevenKeys(t *testing.T) {
	out := syntheticOutput()
	results := []Result{
		out.Fajr(), out.Sunrise(), out.Dhuhr(), out.Asr(), out.Sunset(),
		out.Maghrib(), out.Isha(), out.Midnight(), out.Imsak(), out.FirstThird(), out.LastThird(),
	}
	require.Len(t, results, 11)
}
