// Package card renders an elevated rounded-rectangle card with a soft
// drop shadow on the CPU.
//
// # Overview
//
// A Renderer holds the card's geometry (host bounds, padding, corner
// radius) and its elevation. Each frame the host calls Render with a
// Surface; the renderer rebuilds its outline and shadow only when a
// setter changed something since the last frame.
//
//	r := card.New(card.WithCornerRadius(12))
//	r.SetBounds(200, 150, card.UniformInsets(10))
//	r.SetElevation(25)
//
//	s, _ := surface.NewImageSurface(200, 150)
//	if err := r.Render(s); err != nil {
//	    log.Fatal(err)
//	}
//	_ = s.SavePNG("card.png")
//
// # Shadow pipeline
//
// On a dirty frame the renderer:
//   - insets the bounds by padding plus the blur radius (the margin the blur spreads into)
//   - builds a rounded-rectangle Path, clamping the radius to a stadium at most
//   - asks the ShadowCache for a mask, which rasterizes and blurs only on a geometry change
//
// It then composites the mask at 20% black, shifted down by half the
// blur radius, and fills the card on top.
//
// # Elevation
//
// Elevation maps linearly to blur radius, capped at the maximum:
//
//	radius = min(MaxRadius, MaxRadius * elevation / MaxElevationPx)
//
// See ElevationScale. The defaults are 25 for both.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down, in
// pixels of the host surface.
package card
