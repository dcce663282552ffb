// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the CPU drawing target for card rendering.
//
// ImageSurface implements card.Surface over an *image.RGBA:
//
//   - FillPath rasterizes with golang.org/x/image/vector coverage and
//     blends source-over with x/image/draw
//   - CompositeMask tints an alpha mask into a premultiplied layer and
//     composites it, bilinearly resampled for sub-pixel offsets
//
// # Usage
//
//	s, err := surface.NewImageSurface(200, 150)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.Clear(color.White)
//	if err := renderer.Render(s); err != nil {
//	    return err
//	}
//	err = s.SavePNG("card.png")
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
package surface
