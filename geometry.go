package card

import "math"

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return !(r.MaxX > r.MinX && r.MaxY > r.MinY) }

// Inset shrinks the rectangle by the given amount on each side.
// If the insets overlap, the affected axis collapses to its midpoint
// instead of inverting.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	out := Rect{
		MinX: r.MinX + left,
		MinY: r.MinY + top,
		MaxX: r.MaxX - right,
		MaxY: r.MaxY - bottom,
	}
	if out.MaxX < out.MinX {
		mid := (out.MinX + out.MaxX) / 2
		out.MinX, out.MaxX = mid, mid
	}
	if out.MaxY < out.MinY {
		mid := (out.MinY + out.MaxY) / 2
		out.MinY, out.MaxY = mid, mid
	}
	return out
}

// Insets holds per-side padding.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// UniformInsets returns Insets with v on all four sides.
func UniformInsets(v float64) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// clamped returns the insets with negative or non-finite sides set to 0.
func (i Insets) clamped() Insets {
	return Insets{
		Left:   nonNegative(i.Left),
		Top:    nonNegative(i.Top),
		Right:  nonNegative(i.Right),
		Bottom: nonNegative(i.Bottom),
	}
}

// Bounds is the host-assigned layout box: the full surface size the
// card draws into, plus padding.
type Bounds struct {
	Width   int
	Height  int
	Padding Insets
}

// Valid reports whether the bounds have a positive area.
func (b Bounds) Valid() bool {
	return b.Width > 0 && b.Height > 0
}

// Rect returns the full bounds rectangle anchored at the origin.
func (b Bounds) Rect() Rect {
	return Rect{MaxX: float64(b.Width), MaxY: float64(b.Height)}
}

// Geometry is everything the card's outline and shadow mask depend on.
// It is comparable and serves as the shadow cache key.
type Geometry struct {
	Bounds       Bounds
	CornerRadius float64
	ShadowRadius float64
}

// ShapeRect returns the card rectangle: the bounds shrunk by padding and
// by ShadowRadius on every side, leaving room for the blur to spread.
func (g Geometry) ShapeRect() Rect {
	p := g.Bounds.Padding
	s := g.ShadowRadius
	return g.Bounds.Rect().Inset(p.Left+s, p.Top+s, p.Right+s, p.Bottom+s)
}

// ShadowOffset returns where the shadow mask is composited relative to
// the card: straight down by half the blur radius, as if lit from above.
func (g Geometry) ShadowOffset() Point {
	return Point{X: 0, Y: g.ShadowRadius / 2}
}

// AppendPath adds the card outline to p.
func (g Geometry) AppendPath(p *Path) {
	r := g.ShapeRect()
	p.RoundedRectangle(r.MinX, r.MinY, r.Width(), r.Height(), g.CornerRadius)
}

// Path returns a new path holding the card outline.
func (g Geometry) Path() *Path {
	p := NewPath()
	g.AppendPath(p)
	return p
}

// nonNegative maps negative, NaN and infinite values to 0.
func nonNegative(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0
	}
	return v
}
