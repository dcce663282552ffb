package card

import (
	"math"

	"github.com/gogpu/card/internal/raster"
)

// Point represents a 2D point or offset.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Path represents a vector path as a verb stream plus a flat float32
// point stream, the layout the mask rasterizer consumes directly.
//
// Example:
//
//	p := card.NewPath()
//	p.RoundedRectangle(10, 10, 180, 80, 12)
type Path struct {
	verbs  []raster.PathVerb
	points []float32
	startX float32
	startY float32
	curX   float32
	curY   float32
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]raster.PathVerb, 0, 16),
		points: make([]float32, 0, 64),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, raster.VerbMoveTo)
	p.points = append(p.points, float32(x), float32(y))
	p.startX, p.startY = float32(x), float32(y)
	p.curX, p.curY = float32(x), float32(y)
}

// LineTo adds a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, raster.VerbLineTo)
	p.points = append(p.points, float32(x), float32(y))
	p.curX, p.curY = float32(x), float32(y)
}

// QuadTo adds a quadratic Bezier curve from the current point.
// (cx, cy) is the control point, (x, y) is the endpoint.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(cx, cy)
	}
	p.verbs = append(p.verbs, raster.VerbQuadTo)
	p.points = append(p.points, float32(cx), float32(cy), float32(x), float32(y))
	p.curX, p.curY = float32(x), float32(y)
}

// CubicTo adds a cubic Bezier curve from the current point.
// (c1x, c1y) and (c2x, c2y) are control points, (x, y) is the endpoint.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p.verbs = append(p.verbs, raster.VerbCubicTo)
	p.points = append(p.points,
		float32(c1x), float32(c1y),
		float32(c2x), float32(c2y),
		float32(x), float32(y))
	p.curX, p.curY = float32(x), float32(y)
}

// Close closes the current subpath by connecting to the start point.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, raster.VerbClose)
	p.curX, p.curY = p.startX, p.startY
}

// Clear removes all elements from the path, keeping its storage.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.startX, p.startY = 0, 0
	p.curX, p.curY = 0, 0
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb slice for raster.PathLike interface.
func (p *Path) Verbs() []raster.PathVerb {
	return p.verbs
}

// Points returns the points slice for raster.PathLike interface.
func (p *Path) Points() []float32 {
	return p.points
}

// Verify Path implements raster.PathLike.
var _ raster.PathLike = (*Path)(nil)

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{
		verbs:  make([]raster.PathVerb, len(p.verbs)),
		points: make([]float32, len(p.points)),
		startX: p.startX,
		startY: p.startY,
		curX:   p.curX,
		curY:   p.curY,
	}
	copy(clone.verbs, p.verbs)
	copy(clone.points, p.points)
	return clone
}

// Equal reports whether two paths have identical verbs and points.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.verbs) != len(other.verbs) || len(p.points) != len(other.points) {
		return false
	}
	for i := range p.verbs {
		if p.verbs[i] != other.verbs[i] {
			return false
		}
	}
	for i := range p.points {
		if p.points[i] != other.points[i] {
			return false
		}
	}
	return true
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return Point{X: float64(p.curX), Y: float64(p.curY)}
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// RoundedRectangle adds a clockwise rectangle with circular corners of
// radius r, starting at the end of the top-left corner.
//
// r is clamped to [0, min(w, h)/2]: an oversize radius yields a stadium
// (or a circle for a square), never a self-intersecting outline.
// Negative sizes collapse to zero.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	w = math.Max(w, 0)
	h = math.Max(h, 0)
	if !(r > 0) {
		p.Rectangle(x, y, w, h)
		return
	}
	if maxR := math.Min(w, h) / 2; r > maxR {
		r = maxR
	}

	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ctl := r * k

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+ctl, y, x+w, y+r-ctl, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+ctl, x+w-r+ctl, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-ctl, y+h, x, y+h-r+ctl, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-ctl, x+r-ctl, y, x+r, y)
	p.Close()
}

// Bounds returns the axis-aligned bounding box of the path's points,
// control points included. Returns a zero Rect if the path is empty.
func (p *Path) Bounds() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}

	r := Rect{
		MinX: float64(p.points[0]), MaxX: float64(p.points[0]),
		MinY: float64(p.points[1]), MaxY: float64(p.points[1]),
	}
	for i := 2; i < len(p.points); i += 2 {
		x := float64(p.points[i])
		y := float64(p.points[i+1])
		r.MinX = math.Min(r.MinX, x)
		r.MaxX = math.Max(r.MaxX, x)
		r.MinY = math.Min(r.MinY, y)
		r.MaxY = math.Max(r.MaxY, y)
	}
	return r
}
