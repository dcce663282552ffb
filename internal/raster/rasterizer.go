// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// ErrInvalidDimension is returned when the destination has a zero or
// negative width or height.
var ErrInvalidDimension = errors.New("raster: invalid dimension")

// ErrMalformedPath is returned when a path's point stream is shorter than
// its verbs require.
var ErrMalformedPath = errors.New("raster: malformed path")

// opaque is the coverage source: drawing it through the accumulated
// signed area yields coverage in [0, 255].
var opaque = image.NewUniform(image.Opaque.C)

// Rasterizer converts closed paths into 8-bit coverage using exact
// signed-area accumulation from golang.org/x/image/vector.
//
// Inside pixels get 255, outside pixels 0, and boundary pixels a value
// proportional to the covered area. Overlapping subpaths accumulate with
// the absolute winding clamped to 1, so self-overlap never exceeds 255.
//
// A Rasterizer reuses its accumulation buffer across calls and is not
// safe for concurrent use.
type Rasterizer struct {
	z *vector.Rasterizer
}

// NewRasterizer returns a rasterizer with no allocated accumulator.
// The accumulator is sized lazily by the first Fill.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Fill overwrites every pixel of dst with the coverage of path.
// Path coordinates are in dst's pixel space, relative to dst.Rect.Min.
func (r *Rasterizer) Fill(path PathLike, dst *image.Alpha) error {
	if dst == nil {
		return ErrInvalidDimension
	}
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	if w <= 0 || h <= 0 {
		return ErrInvalidDimension
	}

	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	} else {
		r.z.Reset(w, h)
	}
	r.z.DrawOp = draw.Src

	if err := r.trace(path); err != nil {
		return err
	}

	r.z.Draw(dst, dst.Rect, opaque, image.Point{})
	return nil
}

// trace feeds the path's segments into the accumulator.
func (r *Rasterizer) trace(path PathLike) error {
	if path == nil {
		return nil
	}
	pts := path.Points()
	i := 0
	for _, verb := range path.Verbs() {
		n := verb.PointCount() * 2
		if i+n > len(pts) {
			return ErrMalformedPath
		}
		p := pts[i : i+n]
		switch verb {
		case VerbMoveTo:
			r.z.MoveTo(p[0], p[1])
		case VerbLineTo:
			r.z.LineTo(p[0], p[1])
		case VerbQuadTo:
			r.z.QuadTo(p[0], p[1], p[2], p[3])
		case VerbCubicTo:
			r.z.CubeTo(p[0], p[1], p[2], p[3], p[4], p[5])
		case VerbClose:
			r.z.ClosePath()
		}
		i += n
	}
	// An unterminated subpath is filled as if closed.
	r.z.ClosePath()
	return nil
}

// Coverage is a convenience that allocates a w x h alpha image and fills
// it with the coverage of path.
func Coverage(path PathLike, w, h int) (*image.Alpha, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimension
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if err := NewRasterizer().Fill(path, dst); err != nil {
		return nil, err
	}
	return dst, nil
}
