// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"math"
	"sync"
)

// BlurAlpha blurs an 8-bit alpha buffer in place with a separable
// Gaussian of the given radius.
//
// pix holds height rows of width bytes, stride bytes apart. Samples
// outside the buffer read as 0, so coverage near the border fades out
// instead of being extended.
//
// radius <= 0 (or NaN) leaves pix untouched.
func BlurAlpha(pix []uint8, stride, width, height int, radius float64) {
	if radius <= 0 || math.IsNaN(radius) || width <= 0 || height <= 0 {
		return
	}
	if stride < width || len(pix) < (height-1)*stride+width {
		return
	}

	kernel := CachedGaussianKernel(radius)

	temp := getTempBuffer(width * height)
	defer putTempBuffer(temp)

	blurHorizontal(pix, temp, stride, width, height, kernel)
	blurVertical(temp, pix, stride, width, height, kernel)
}

// blurHorizontal convolves each row of src into temp.
func blurHorizontal(src []uint8, temp []float32, stride, width, height int, kernel []float32) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		row := src[y*stride : y*stride+width]
		out := temp[y*width : (y+1)*width]

		for x := 0; x < width; x++ {
			// Restrict taps to the row; the rest contribute 0.
			kLo := half - x
			if kLo < 0 {
				kLo = 0
			}
			kHi := width - x + half
			if kHi > len(kernel) {
				kHi = len(kernel)
			}

			var sum float32
			for k := kLo; k < kHi; k++ {
				sum += float32(row[x+k-half]) * kernel[k]
			}
			out[x] = sum
		}
	}
}

// blurVertical convolves each column of temp into dst.
func blurVertical(temp []float32, dst []uint8, stride, width, height int, kernel []float32) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		kLo := half - y
		if kLo < 0 {
			kLo = 0
		}
		kHi := height - y + half
		if kHi > len(kernel) {
			kHi = len(kernel)
		}

		out := dst[y*stride : y*stride+width]
		for x := 0; x < width; x++ {
			var sum float32
			for k := kLo; k < kHi; k++ {
				sum += temp[(y+k-half)*width+x] * kernel[k]
			}
			out[x] = clampUint8(sum)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// tempBufferPool holds horizontal-pass scratch space.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 512*512)}
	},
}

// getTempBuffer retrieves a scratch buffer with at least size elements.
// Every element is overwritten by the horizontal pass, so no clearing.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a scratch buffer to the pool.
func putTempBuffer(buf []float32) {
	// 16M floats (64MB) max
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
