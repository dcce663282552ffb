package card

import "errors"

// State is the Renderer's recomputation state.
type State uint8

const (
	// StateClean means the path and shadow match the current geometry.
	StateClean State = iota
	// StateDirty means geometry changed; the next Render recomputes.
	StateDirty
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClean:
		return "Clean"
	case StateDirty:
		return "Dirty"
	default:
		return "Unknown"
	}
}

// RenderStats counts Renderer activity.
type RenderStats struct {
	// Frames is the number of Render calls that drew.
	Frames int
	// Layouts is the number of path and shadow recomputations.
	Layouts int
	// Skipped is the number of Render calls that drew nothing because
	// the bounds were empty.
	Skipped int
}

// Renderer draws a rounded-rectangle card over its blurred drop shadow.
//
// Setters only record state and mark the renderer Dirty; the outline
// and shadow mask are rebuilt lazily by the next Render. Setting a value
// equal to the current one leaves the renderer Clean.
//
// A Renderer is single-threaded: callers that render from several
// goroutines must serialize access or use one Renderer per goroutine.
type Renderer struct {
	opts options

	bounds       Bounds
	cornerRadius float64
	elevation    float64
	shadowRadius float64
	fillColor    RGBA

	state  State
	geom   Geometry
	path   *Path
	shadow *Mask
	cache  *ShadowCache

	stats RenderStats
}

// New creates a Renderer with empty bounds. It starts Dirty; nothing is
// drawn until SetBounds assigns a positive size.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		opts:         o,
		cornerRadius: o.cornerRadius,
		elevation:    o.elevation,
		fillColor:    o.fillColor,
		state:        StateDirty,
		path:         NewPath(),
		cache:        NewShadowCache(o.maxMaskPixels),
	}
	r.shadowRadius = o.scale.Radius(o.elevation)
	return r
}

// SetBounds records the host layout box.
func (r *Renderer) SetBounds(width, height int, padding Insets) {
	b := Bounds{Width: width, Height: height, Padding: padding.clamped()}
	if b == r.bounds {
		return
	}
	r.bounds = b
	r.markDirty()
}

// SetCornerRadius sets the corner radius in pixels. Negative and NaN
// values clamp to 0; values above half the shorter side clamp at layout.
func (r *Renderer) SetCornerRadius(px float64) {
	px = nonNegative(px)
	if px == r.cornerRadius {
		return
	}
	r.cornerRadius = px
	r.markDirty()
}

// SetElevation sets the elevation in pixels and derives the shadow blur
// radius through the configured ElevationScale. Negative and NaN values
// clamp to 0. The renderer goes Dirty only if the blur radius changes.
func (r *Renderer) SetElevation(px float64) {
	px = nonNegative(px)
	r.elevation = px
	radius := r.opts.scale.Radius(px)
	if radius == r.shadowRadius {
		return
	}
	r.shadowRadius = radius
	r.markDirty()
}

// SetFillColor sets the card fill. It does not affect geometry, so the
// state is left alone.
func (r *Renderer) SetFillColor(c RGBA) {
	r.fillColor = c
}

// Invalidate forces a recompute on the next Render.
func (r *Renderer) Invalidate() {
	r.markDirty()
}

func (r *Renderer) markDirty() {
	r.state = StateDirty
}

// Bounds returns the current layout box.
func (r *Renderer) Bounds() Bounds { return r.bounds }

// CornerRadius returns the requested corner radius.
func (r *Renderer) CornerRadius() float64 { return r.cornerRadius }

// Elevation returns the requested elevation in pixels.
func (r *Renderer) Elevation() float64 { return r.elevation }

// ShadowRadius returns the blur radius derived from the elevation.
func (r *Renderer) ShadowRadius() float64 { return r.shadowRadius }

// FillColor returns the card fill color.
func (r *Renderer) FillColor() RGBA { return r.fillColor }

// State returns the current recomputation state.
func (r *Renderer) State() State { return r.state }

// Stats returns a snapshot of render counters.
func (r *Renderer) Stats() RenderStats { return r.stats }

// CacheStats returns a snapshot of the shadow cache counters.
func (r *Renderer) CacheStats() CacheStats { return r.cache.Stats() }

// Geometry returns the geometry as of the last completed layout.
func (r *Renderer) Geometry() Geometry { return r.geom }

// Path returns a copy of the card outline from the last layout.
func (r *Renderer) Path() *Path { return r.path.Clone() }

// ShapeRect returns the card rectangle from the last layout.
func (r *Renderer) ShapeRect() Rect { return r.geom.ShapeRect() }

// Shadow returns the blurred shadow mask from the last layout, or nil
// when the shadow is off. The mask is owned by the renderer.
func (r *Renderer) Shadow() *Mask { return r.shadow }

// ShadowOffset returns the shadow translation from the last layout.
func (r *Renderer) ShadowOffset() Point { return r.geom.ShadowOffset() }

// geometry returns the geometry implied by the current setter values.
func (r *Renderer) geometry() Geometry {
	return Geometry{
		Bounds:       r.bounds,
		CornerRadius: r.cornerRadius,
		ShadowRadius: r.shadowRadius,
	}
}

// Layout recomputes the outline and shadow if the renderer is Dirty and
// moves it to Clean. It is called by Render; hosts may call it ahead of
// a frame to move the cost out of the draw.
//
// Empty bounds return ErrInvalidDimension and leave the renderer Dirty.
// ErrAllocation is returned when the shadow mask cannot be allocated.
func (r *Renderer) Layout() error {
	if r.state == StateClean {
		return nil
	}

	g := r.geometry()
	if !g.Bounds.Valid() {
		return ErrInvalidDimension
	}

	r.path.Clear()
	g.AppendPath(r.path)

	shadow, err := r.cache.Shadow(g, r.path)
	if err != nil {
		if errors.Is(err, ErrAllocation) {
			Logger().Warn("card: shadow allocation failed", "width", g.Bounds.Width, "height", g.Bounds.Height, "err", err)
		}
		return err
	}

	r.geom = g
	r.shadow = shadow
	r.state = StateClean
	r.stats.Layouts++
	Logger().Debug("card: layout",
		"width", g.Bounds.Width,
		"height", g.Bounds.Height,
		"cornerRadius", g.CornerRadius,
		"shadowRadius", g.ShadowRadius)
	return nil
}

// Render draws the card into dst, recomputing first if Dirty.
//
// The shadow, when present, is composited first, tinted with the shadow
// color at the shadow opacity and shifted down by half the blur radius;
// the card fill is drawn over it along the outline.
//
// Empty bounds skip the frame and return nil; the renderer stays Dirty
// and retries on the next call. Only ErrAllocation is returned.
func (r *Renderer) Render(dst Surface) error {
	if err := r.Layout(); err != nil {
		if errors.Is(err, ErrInvalidDimension) {
			r.stats.Skipped++
			Logger().Debug("card: frame skipped", "width", r.bounds.Width, "height", r.bounds.Height)
			return nil
		}
		return err
	}
	if dst == nil {
		return nil
	}

	if r.shadow != nil && r.opts.shadowOpacity > 0 {
		off := r.geom.ShadowOffset()
		dst.CompositeMask(r.shadow, off.X, off.Y, r.opts.shadowColor, r.opts.shadowOpacity)
	}
	if !r.path.IsEmpty() && r.fillColor.A > 0 {
		dst.FillPath(r.path, r.fillColor)
	}

	r.stats.Frames++
	return nil
}
