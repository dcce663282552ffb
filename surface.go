package card

// Surface is the drawing target a Renderer composites into.
//
// The host owns the surface; surface.ImageSurface is the CPU
// implementation over *image.RGBA. Implementations are not required to
// be safe for concurrent use.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// FillPath fills p with c using anti-aliased source-over blending.
	FillPath(p *Path, c RGBA)

	// CompositeMask draws m tinted with c at opacity, translated by
	// (dx, dy), using source-over blending. Offsets may be fractional.
	CompositeMask(m *Mask, dx, dy float64, c RGBA, opacity float64)
}
