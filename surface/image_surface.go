// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/card"
	"github.com/gogpu/card/internal/raster"
)

// errClosed is returned when encoding a closed surface.
var errClosed = errors.New("surface: surface is closed")

// maxPixels bounds a surface allocation (4 bytes per pixel).
const maxPixels = 1 << 28

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Scratch buffers for path coverage and tinted shadow layers are kept
// between calls and reallocated only when their size changes.
//
// Example:
//
//	s, _ := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	p := card.NewPath()
//	p.RoundedRectangle(100, 100, 600, 400, 24)
//	s.FillPath(p, card.RGB(1, 0, 0))
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// rasterizer produces path coverage
	rasterizer *raster.Rasterizer

	// coverage is the reused FillPath mask
	coverage *image.Alpha

	// layer is the reused tinted shadow image
	layer *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

// Verify ImageSurface implements card.Surface.
var _ card.Surface = (*ImageSurface)(nil)

// NewImageSurface allocates a transparent surface with the given
// dimensions. It fails with card.ErrInvalidDimension for non-positive
// sizes and card.ErrAllocation for sizes beyond the pixel budget.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface %dx%d", card.ErrInvalidDimension, width, height)
	}
	if width > maxPixels/height {
		return nil, fmt.Errorf("%w: surface %dx%d exceeds %d pixels", card.ErrAllocation, width, height, maxPixels)
	}
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height))), nil
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly, with the
// surface origin at img.Rect.Min.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	return &ImageSurface{
		width:      bounds.Dx(),
		height:     bounds.Dy(),
		img:        img,
		rasterizer: raster.NewRasterizer(),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillPath fills p with c, anti-aliased, source-over.
func (s *ImageSurface) FillPath(p *card.Path, c card.RGBA) {
	if s.closed || p == nil || p.IsEmpty() || !(c.A > 0) {
		return
	}

	if s.coverage == nil || s.coverage.Rect.Dx() != s.width || s.coverage.Rect.Dy() != s.height {
		s.coverage = image.NewAlpha(image.Rect(0, 0, s.width, s.height))
	}
	if err := s.rasterizer.Fill(p, s.coverage); err != nil {
		card.Logger().Debug("surface: fill skipped", "err", err)
		return
	}

	draw.DrawMask(s.img, s.img.Bounds(), image.NewUniform(c.Premultiplied8()), image.Point{},
		s.coverage, image.Point{}, draw.Over)
}

// CompositeMask draws m tinted with c at the given opacity, translated
// by (dx, dy). Integral offsets are copied exactly; fractional offsets
// are resampled bilinearly.
func (s *ImageSurface) CompositeMask(m *card.Mask, dx, dy float64, c card.RGBA, opacity float64) {
	if s.closed || m == nil || m.Width() <= 0 || m.Height() <= 0 {
		return
	}
	if !(opacity > 0) || !(c.A > 0) || math.IsInf(dx, 0) || math.IsInf(dy, 0) || math.IsNaN(dx) || math.IsNaN(dy) {
		return
	}

	layer := s.tint(m, c, math.Min(opacity, 1))
	origin := s.img.Rect.Min

	if dx == math.Trunc(dx) && dy == math.Trunc(dy) {
		at := origin.Add(image.Pt(int(dx), int(dy)))
		draw.Draw(s.img, layer.Rect.Add(at), layer, image.Point{}, draw.Over)
		return
	}

	s2d := f64.Aff3{
		1, 0, float64(origin.X) + dx,
		0, 1, float64(origin.Y) + dy,
	}
	draw.BiLinear.Transform(s.img, s2d, layer, layer.Rect, draw.Over, nil)
}

// tint fills the reused layer with c scaled by the mask and opacity,
// premultiplied.
func (s *ImageSurface) tint(m *card.Mask, c card.RGBA, opacity float64) *image.RGBA {
	w, h := m.Width(), m.Height()
	if s.layer == nil || s.layer.Rect.Dx() != w || s.layer.Rect.Dy() != h {
		s.layer = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	a := clampUnit(c.A) * opacity
	pr := clampUnit(c.R) * a
	pg := clampUnit(c.G) * a
	pb := clampUnit(c.B) * a

	src := m.Data()
	pix := s.layer.Pix
	for i, v := range src {
		j := i * 4
		if v == 0 {
			pix[j+0], pix[j+1], pix[j+2], pix[j+3] = 0, 0, 0, 0
			continue
		}
		f := float64(v)
		pix[j+0] = uint8(f*pr + 0.5)
		pix[j+1] = uint8(f*pg + 0.5)
		pix[j+2] = uint8(f*pb + 0.5)
		pix[j+3] = uint8(f*a + 0.5)
	}
	return s.layer
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(result, result.Rect, s.img, s.img.Rect.Min, draw.Src)
	return result
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// EncodePNG writes the surface contents to w as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if s.closed {
		return errClosed
	}
	return png.Encode(w, s.img)
}

// SavePNG saves the surface to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close releases resources associated with the surface.
// Close is idempotent; multiple calls are safe.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.coverage = nil
	s.layer = nil
	s.rasterizer = nil
	return nil
}

// clampUnit restricts v to [0, 1]; NaN maps to 0.
func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
