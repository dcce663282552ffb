// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// PathVerb identifies a path segment kind.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo starts a new subpath. Consumes 1 point.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a straight segment. Consumes 1 point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier. Consumes 2 points.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier. Consumes 3 points.
	VerbCubicTo
	// VerbClose closes the current subpath. Consumes 0 points.
	VerbClose
)

// String returns the verb name.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// PointCount returns the number of (x, y) pairs consumed by the verb.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// PathLike is the minimal path view the rasterizer consumes.
// It lets the root package hand its Path in without an import cycle.
//
// Points is a flat x, y stream; each verb consumes PointCount pairs.
type PathLike interface {
	Verbs() []PathVerb
	Points() []float32
}
