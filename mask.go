package card

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/card/internal/filter"
	"github.com/gogpu/card/internal/raster"
)

// DefaultMaxMaskPixels caps a single mask allocation (64 MiB of alpha).
const DefaultMaxMaskPixels = 1 << 26

// Mask represents a single-channel alpha buffer.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
// Non-positive dimensions yield an empty mask.
func NewMask(width, height int) *Mask {
	if width <= 0 || height <= 0 {
		return &Mask{}
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// allocMask allocates a width x height mask, refusing sizes that are
// non-positive or exceed maxPixels.
func allocMask(width, height, maxPixels int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: mask %dx%d", ErrInvalidDimension, width, height)
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxMaskPixels
	}
	if width > math.MaxInt/height || width*height > maxPixels {
		return nil, fmt.Errorf("%w: mask %dx%d exceeds %d pixels", ErrAllocation, width, height, maxPixels)
	}
	return NewMask(width, height), nil
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clear clears the mask (sets all values to 0).
func (m *Mask) Clear() {
	clear(m.data)
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice, row-major with
// stride equal to Width.
func (m *Mask) Data() []uint8 {
	return m.data
}

// Alpha returns an *image.Alpha view sharing the mask's memory.
// Writes through either are visible in both.
func (m *Mask) Alpha() *image.Alpha {
	return &image.Alpha{
		Pix:    m.data,
		Stride: m.width,
		Rect:   m.Bounds(),
	}
}

// rasterize overwrites the mask with the coverage of p.
func (m *Mask) rasterize(r *raster.Rasterizer, p *Path) error {
	err := r.Fill(p, m.Alpha())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, raster.ErrInvalidDimension):
		return fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	default:
		return fmt.Errorf("card: rasterize mask: %w", err)
	}
}

// RasterizeMask returns a width x height mask holding the anti-aliased
// coverage of p: 255 inside, 0 outside, fractional at the edge.
func RasterizeMask(p *Path, width, height int) (*Mask, error) {
	m, err := allocMask(width, height, DefaultMaxMaskPixels)
	if err != nil {
		return nil, err
	}
	if err := m.rasterize(raster.NewRasterizer(), p); err != nil {
		return nil, err
	}
	return m, nil
}

// BlurMask blurs m in place with a separable Gaussian of the given radius.
// A radius <= 0 leaves the mask unchanged.
func BlurMask(m *Mask, radius float64) {
	if m == nil {
		return
	}
	filter.BlurAlpha(m.data, m.width, m.width, m.height, radius)
}
