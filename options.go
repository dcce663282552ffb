package card

// Option configures a Renderer during creation.
//
// Example:
//
//	// Defaults: max elevation 25dp, max blur 25px, 20% black shadow, white card
//	r := card.New()
//
//	// A 3x density display with a translucent blue card
//	r := card.New(card.WithDensity(3), card.WithFillColor(card.Hex("#3366ffcc")))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	scale         ElevationScale
	shadowOpacity float64
	shadowColor   RGBA
	fillColor     RGBA
	maxMaskPixels int
	cornerRadius  float64
	elevation     float64
}

// Defaults for the shadow and card appearance.
const (
	// DefaultShadowOpacity is the shadow layer opacity (51/255).
	DefaultShadowOpacity = 0.2
)

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		scale:         DefaultElevationScale(),
		shadowOpacity: DefaultShadowOpacity,
		shadowColor:   Black,
		fillColor:     White,
		maxMaskPixels: DefaultMaxMaskPixels,
	}
}

// WithMaxElevation sets the elevation, in device-independent units, at
// which the shadow reaches its maximum blur radius.
func WithMaxElevation(dp float64) Option {
	return func(o *options) {
		o.scale.MaxElevation = nonNegative(dp)
	}
}

// WithMaxRadius sets the largest shadow blur radius in pixels.
func WithMaxRadius(px float64) Option {
	return func(o *options) {
		o.scale.MaxRadius = nonNegative(px)
	}
}

// WithDensity sets the pixels-per-device-independent-unit ratio used to
// convert the max elevation to pixels. Non-positive values are ignored.
func WithDensity(d float64) Option {
	return func(o *options) {
		if d = nonNegative(d); d > 0 {
			o.scale.Density = d
		}
	}
}

// WithElevationScale replaces the whole elevation mapping.
func WithElevationScale(s ElevationScale) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithShadowOpacity sets the shadow layer opacity, clamped to [0, 1].
func WithShadowOpacity(a float64) Option {
	return func(o *options) {
		o.shadowOpacity = clampUnit(a)
	}
}

// WithShadowColor sets the shadow tint. Only its RGB and alpha are used;
// the mask supplies the shape.
func WithShadowColor(c RGBA) Option {
	return func(o *options) {
		o.shadowColor = c
	}
}

// WithFillColor sets the card fill color. Use Transparent to draw only
// the shadow.
func WithFillColor(c RGBA) Option {
	return func(o *options) {
		o.fillColor = c
	}
}

// WithMaxMaskPixels caps the shadow mask allocation. Bounds whose area
// exceeds the cap make Render fail with ErrAllocation.
func WithMaxMaskPixels(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMaskPixels = n
		}
	}
}

// WithCornerRadius sets the initial corner radius in pixels.
func WithCornerRadius(px float64) Option {
	return func(o *options) {
		o.cornerRadius = nonNegative(px)
	}
}

// WithElevation sets the initial elevation in pixels.
func WithElevation(px float64) Option {
	return func(o *options) {
		o.elevation = nonNegative(px)
	}
}

// clampUnit restricts a value to [0, 1]; NaN maps to 0.
func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
