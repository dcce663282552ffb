package card

import "math"

// Defaults for the elevation-to-blur mapping.
const (
	// DefaultMaxElevation is the elevation, in device-independent units,
	// that produces the largest shadow.
	DefaultMaxElevation = 25.0

	// DefaultMaxRadius is the largest shadow blur radius in pixels.
	DefaultMaxRadius = 25.0

	// DefaultDensity is the pixels-per-device-independent-unit ratio.
	DefaultDensity = 1.0
)

// ElevationScale maps an elevation in pixels to a shadow blur radius:
//
//	radius = min(MaxRadius, MaxRadius * elevation / maxElevationPx)
//
// where maxElevationPx is MaxElevation converted with Density.
// The mapping is pure; two scales with equal fields map identically.
type ElevationScale struct {
	MaxRadius    float64
	MaxElevation float64
	Density      float64
}

// DefaultElevationScale returns the 25/25 mapping at density 1.
func DefaultElevationScale() ElevationScale {
	return ElevationScale{
		MaxRadius:    DefaultMaxRadius,
		MaxElevation: DefaultMaxElevation,
		Density:      DefaultDensity,
	}
}

// MaxElevationPx returns MaxElevation in whole pixels.
func (s ElevationScale) MaxElevationPx() float64 {
	return DPToPx(s.MaxElevation, s.Density)
}

// Radius returns the blur radius for an elevation in pixels.
// Negative and NaN elevations map to 0.
func (s ElevationScale) Radius(elevation float64) float64 {
	if !(elevation > 0) || !(s.MaxRadius > 0) {
		return 0
	}
	maxPx := s.MaxElevationPx()
	if !(maxPx > 0) {
		return s.MaxRadius
	}
	return math.Min(s.MaxRadius, s.MaxRadius*elevation/maxPx)
}

// DPToPx converts device-independent units to whole pixels,
// truncating toward zero.
func DPToPx(dp, density float64) float64 {
	if math.IsNaN(dp) || math.IsNaN(density) {
		return 0
	}
	return math.Trunc(dp * density)
}
