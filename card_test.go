package card_test

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/gogpu/card"
	"github.com/gogpu/card/surface"
)

func renderCard(t *testing.T, w, h int, pad, corner, elevation float64) *surface.ImageSurface {
	t.Helper()
	s, err := surface.NewImageSurface(w, h)
	if err != nil {
		t.Fatalf("NewImageSurface() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	s.Clear(color.White)

	r := card.New()
	r.SetBounds(w, h, card.UniformInsets(pad))
	r.SetCornerRadius(corner)
	r.SetElevation(elevation)
	if err := r.Render(s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return s
}

func TestRenderShadowFallsBelowCard(t *testing.T) {
	s := renderCard(t, 200, 150, 10, 10, 25)
	img := s.Image()

	// Card body (35..165 x 35..115) is opaque white.
	if c := img.RGBAAt(100, 75); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("card center = %v, want white", c)
	}

	below := img.RGBAAt(100, 120).R
	above := img.RGBAAt(100, 30).R
	if below >= 250 {
		t.Errorf("below card = %d, want visibly shaded", below)
	}
	if above <= below {
		t.Errorf("above card = %d not lighter than below = %d", above, below)
	}
	if c := img.RGBAAt(0, 0); c.R < 250 {
		t.Errorf("far corner = %v, want near white", c)
	}

	// 20% black can darken white to no less than 204.
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			if v := img.RGBAAt(x, y).R; v < 203 {
				t.Fatalf("pixel (%d,%d) = %d darker than the shadow opacity allows", x, y, v)
			}
		}
	}
}

func TestRenderNoElevationHasNoShadow(t *testing.T) {
	s, err := surface.NewImageSurface(200, 100)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	s.Clear(color.RGBA{40, 40, 40, 255})

	r := card.New()
	r.SetBounds(200, 100, card.Insets{})
	r.SetCornerRadius(20)
	if err := r.Render(s); err != nil {
		t.Fatal(err)
	}

	img := s.Image()
	if c := img.RGBAAt(100, 50); c.R != 255 {
		t.Errorf("card center = %v, want white", c)
	}
	// The rounded corner leaves the background showing.
	if c := img.RGBAAt(1, 1); c.R != 40 {
		t.Errorf("corner = %v, want untouched background", c)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	a := renderCard(t, 120, 90, 4, 14, 9).Snapshot()
	b := renderCard(t, 120, 90, 4, 14, 9).Snapshot()
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("byte %d differs: %d vs %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

func ExampleRenderer() {
	r := card.New(card.WithCornerRadius(12))
	r.SetBounds(200, 150, card.UniformInsets(10))
	r.SetElevation(25)

	s, err := surface.NewImageSurface(200, 150)
	if err != nil {
		panic(err)
	}
	defer s.Close()
	s.Clear(color.White)

	if err := r.Render(s); err != nil {
		panic(err)
	}
	fmt.Println(r.State(), r.ShadowRadius(), r.ShadowOffset(), r.ShapeRect())
	// Output: Clean 25 {0 12.5} {35 35 165 115}
}
