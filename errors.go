package card

import "errors"

var (
	// ErrInvalidDimension is returned when a mask or surface would have a
	// zero or negative width or height. Renderer.Render recovers from it
	// by skipping the frame.
	ErrInvalidDimension = errors.New("card: invalid dimension")

	// ErrAllocation is returned when the shadow mask cannot be allocated.
	// It is the one error Renderer.Render propagates to the host.
	ErrAllocation = errors.New("card: mask allocation failed")
)
