package card

import (
	"fmt"

	"github.com/gogpu/card/internal/raster"
)

// CacheStats counts ShadowCache activity.
type CacheStats struct {
	// Hits is the number of Shadow calls served from the cached mask.
	Hits int
	// Builds is the number of times a mask was rasterized and blurred.
	Builds int
	// Allocations is the number of mask buffers allocated. A rebuild at
	// unchanged dimensions reuses the buffer and does not count here.
	Allocations int
	// Releases is the number of times a cached mask was dropped because
	// the shadow radius went to zero.
	Releases int
}

// ShadowCache holds the most recent blurred shadow mask and regenerates
// it only when the geometry changes.
//
// At most one mask is retained. A ShadowCache is not safe for concurrent
// use; pair one cache with one Renderer.
type ShadowCache struct {
	rasterizer *raster.Rasterizer
	maxPixels  int

	mask  *Mask
	key   Geometry
	valid bool

	stats CacheStats
}

// NewShadowCache returns an empty cache whose masks may not exceed
// maxPixels. maxPixels <= 0 selects DefaultMaxMaskPixels.
func NewShadowCache(maxPixels int) *ShadowCache {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxMaskPixels
	}
	return &ShadowCache{
		rasterizer: raster.NewRasterizer(),
		maxPixels:  maxPixels,
	}
}

// Shadow returns the blurred silhouette of p for geometry g.
//
// The mask is Bounds.Width x Bounds.Height, the shape is filled at 255
// before blurring with g.ShadowRadius. A ShadowRadius of 0 returns a nil
// mask and releases any cached one. The returned mask is owned by the
// cache and is valid until the next call.
//
// Errors: ErrInvalidDimension for empty bounds, ErrAllocation when the
// mask would exceed the pixel budget. A failed call never leaves a
// stale mask marked valid.
func (c *ShadowCache) Shadow(g Geometry, p *Path) (*Mask, error) {
	if !(g.ShadowRadius > 0) {
		c.release()
		return nil, nil
	}

	w, h := g.Bounds.Width, g.Bounds.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: shadow %dx%d", ErrInvalidDimension, w, h)
	}

	if c.valid && c.key == g {
		c.stats.Hits++
		Logger().Debug("card: shadow cache hit", "width", w, "height", h, "radius", g.ShadowRadius)
		return c.mask, nil
	}

	mask := c.mask
	if mask == nil || mask.width != w || mask.height != h {
		m, err := allocMask(w, h, c.maxPixels)
		if err != nil {
			return nil, err
		}
		mask = m
		c.stats.Allocations++
	} else {
		mask.Clear()
	}

	// The buffer is about to be overwritten; whatever it held is stale.
	c.mask, c.valid = mask, false

	if err := mask.rasterize(c.rasterizer, p); err != nil {
		return nil, err
	}
	BlurMask(mask, g.ShadowRadius)

	c.key, c.valid = g, true
	c.stats.Builds++
	Logger().Debug("card: shadow rebuilt", "width", w, "height", h, "radius", g.ShadowRadius)
	return mask, nil
}

// Mask returns the cached mask, or nil if none is held.
func (c *ShadowCache) Mask() *Mask {
	if !c.valid {
		return nil
	}
	return c.mask
}

// Reset drops the cached mask and its key.
func (c *ShadowCache) Reset() {
	c.mask = nil
	c.key = Geometry{}
	c.valid = false
}

// Stats returns a snapshot of cache counters.
func (c *ShadowCache) Stats() CacheStats {
	return c.stats
}

// release drops the mask when the shadow is switched off.
func (c *ShadowCache) release() {
	if c.mask == nil {
		return
	}
	c.Reset()
	c.stats.Releases++
	Logger().Debug("card: shadow released")
}
