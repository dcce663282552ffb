// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"bytes"
	"math"
	"testing"
)

func TestBlurAlphaZeroRadiusIdentity(t *testing.T) {
	for _, r := range []float64{0, -2, math.NaN()} {
		src := patternAlpha(17, 11)
		pix := append([]uint8(nil), src...)

		BlurAlpha(pix, 17, 17, 11, r)

		if !bytes.Equal(pix, src) {
			t.Errorf("BlurAlpha(radius=%v) modified the buffer", r)
		}
	}
}

func TestBlurAlphaUniformInterior(t *testing.T) {
	const w, h = 64, 64
	pix := filledAlpha(w, h, 255)

	BlurAlpha(pix, w, w, h, 3)

	// Far from the border every tap reads 255.
	if got := pix[32*w+32]; got != 255 {
		t.Errorf("interior pixel = %d, want 255", got)
	}
	// Taps past the border read 0, so the corner darkens.
	if got := pix[0]; got >= 255 || got == 0 {
		t.Errorf("corner pixel = %d, want partially faded", got)
	}
}

func TestBlurAlphaSpreadsSymmetrically(t *testing.T) {
	const w, h = 21, 21
	pix := make([]uint8, w*h)
	pix[10*w+10] = 255

	BlurAlpha(pix, w, w, h, 2)

	center := pix[10*w+10]
	if center == 0 || center == 255 {
		t.Fatalf("center = %d, want partially blurred", center)
	}
	for d := 1; d <= 3; d++ {
		left, right := pix[10*w+10-d], pix[10*w+10+d]
		up, down := pix[(10-d)*w+10], pix[(10+d)*w+10]
		if left != right || up != down || left != up {
			t.Errorf("d=%d: left=%d right=%d up=%d down=%d, want equal", d, left, right, up, down)
		}
		if left > center {
			t.Errorf("d=%d: neighbor %d brighter than center %d", d, left, center)
		}
	}
	if pix[0] != 0 {
		t.Errorf("pixel beyond kernel reach = %d, want 0", pix[0])
	}
}

func TestBlurAlphaMatchesFull2DConvolution(t *testing.T) {
	const w, h = 24, 18
	const radius = 3.0
	src := patternAlpha(w, h)
	pix := append([]uint8(nil), src...)

	BlurAlpha(pix, w, w, h, radius)

	want := reference2D(src, w, h, GaussianKernel(radius))
	for i := range pix {
		if absDiff(pix[i], want[i]) > 1 {
			t.Fatalf("pixel %d = %d, reference %d (diff > 1)", i, pix[i], want[i])
		}
	}
}

func TestBlurAlphaDeterministic(t *testing.T) {
	const w, h = 40, 30
	a := patternAlpha(w, h)
	b := patternAlpha(w, h)

	BlurAlpha(a, w, w, h, 7.5)
	BlurAlpha(b, w, w, h, 7.5)

	if !bytes.Equal(a, b) {
		t.Error("same input and radius produced different output")
	}
}

func TestBlurAlphaRespectsStride(t *testing.T) {
	const w, h, stride = 8, 8, 12
	pix := make([]uint8, stride*h)
	for y := 0; y < h; y++ {
		for x := 0; x < stride; x++ {
			if x < w {
				pix[y*stride+x] = 255
			} else {
				pix[y*stride+x] = 7
			}
		}
	}

	BlurAlpha(pix, stride, w, h, 2)

	for y := 0; y < h; y++ {
		for x := w; x < stride; x++ {
			if pix[y*stride+x] != 7 {
				t.Fatalf("padding byte (%d,%d) = %d, want 7", x, y, pix[y*stride+x])
			}
		}
	}
}

func TestBlurAlphaInvalidArguments(t *testing.T) {
	// None of these may panic.
	BlurAlpha(nil, 0, 0, 0, 5)
	BlurAlpha(make([]uint8, 4), 2, 2, 2, 5)
	BlurAlpha(make([]uint8, 3), 2, 2, 2, 5)   // short buffer
	BlurAlpha(make([]uint8, 16), 2, 4, 4, 5)  // stride < width
	BlurAlpha(make([]uint8, 16), 4, -4, 4, 5) // negative width
}

func TestClampUint8(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{127.6, 128},
		{254.9, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := clampUint8(tt.in); got != tt.want {
			t.Errorf("clampUint8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// reference2D is the direct O(w*h*r²) convolution with the outer product
// of kernel, zero outside the buffer.
func reference2D(src []uint8, w, h int, kernel []float32) []uint8 {
	half := len(kernel) / 2
	out := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for ky := -half; ky <= half; ky++ {
				sy := y + ky
				if sy < 0 || sy >= h {
					continue
				}
				for kx := -half; kx <= half; kx++ {
					sx := x + kx
					if sx < 0 || sx >= w {
						continue
					}
					sum += float64(src[sy*w+sx]) * float64(kernel[ky+half]) * float64(kernel[kx+half])
				}
			}
			out[y*w+x] = uint8(math.Min(255, math.Round(sum)))
		}
	}
	return out
}

func BenchmarkBlurAlpha(b *testing.B) {
	const w, h = 400, 300
	radii := []float64{5, 12.5, 25}

	for _, r := range radii {
		b.Run(fmtRadius(r), func(b *testing.B) {
			pix := patternAlpha(w, h)
			b.SetBytes(w * h)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BlurAlpha(pix, w, w, h, r)
			}
		})
	}
}
