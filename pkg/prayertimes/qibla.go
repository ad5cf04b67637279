package prayertimes

// Kaaba's coordinates, per §4.L.
const (
	kaabaLatitude  = 21.4225241
	kaabaLongitude = 39.8261818
)

// ComputeQibla returns the great-circle bearing in degrees, measured
// clockwise from true north in [0, 360), from (latDeg, lngDeg) to the
// Kaaba, per §4.L.
func ComputeQibla(latDeg, lngDeg float64) float64 {
	deltaLng := kaabaLongitude - lngDeg
	y := sinDeg(deltaLng)
	x := cosDeg(latDeg)*tanDeg(kaabaLatitude) - sinDeg(latDeg)*cosDeg(deltaLng)
	return normalize(atan2Deg(y, x))
}
