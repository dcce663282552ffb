// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"math"
	"sync"

	"github.com/chewxy/math32"
)

// Sigma returns the standard deviation used for a blur radius.
// It matches the 0.4r + 0.6 relation of the platform intrinsic blur
// that card shadows were originally tuned against.
func Sigma(radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return 0.4*radius + 0.6
}

// KernelRadius returns the half-width of the kernel for a blur radius:
// the number of pixels a blurred edge spreads outward.
func KernelRadius(radius float64) int {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 1) {
		return 0
	}
	return int(math.Ceil(radius))
}

// GaussianKernel generates a 1D Gaussian kernel for the given radius.
// The kernel is symmetric, has 2*KernelRadius(radius)+1 taps and is
// normalized so all values sum to 1.0.
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius float64) []float32 {
	half := KernelRadius(radius)
	if half == 0 {
		return []float32{1.0}
	}

	sigma := float32(Sigma(radius))
	twoSigmaSq := 2 * sigma * sigma
	size := half*2 + 1
	kernel := make([]float32, size)

	// exp(-x²/2σ²); the 1/(σ√2π) factor cancels in normalization.
	var sum float32
	for i := 0; i < size; i++ {
		x := float32(i - half)
		v := math32.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = v
		sum += v
	}

	inv := 1 / sum
	for i := range kernel {
		kernel[i] *= inv
	}

	return kernel
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
// Key is radius * 100 (to handle float precision), value is kernel.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(radius float64) []float32 {
	key := int(math.Round(radius * 100))

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Drop half; card radii come from a small set of elevations.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// len returns the number of cached kernels.
func (c *kernelCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedGaussianKernel returns a cached Gaussian kernel for the radius,
// quantized to 0.01 pixel. The returned slice is shared and must not be
// modified.
func CachedGaussianKernel(radius float64) []float32 {
	return defaultKernelCache.get(radius)
}
