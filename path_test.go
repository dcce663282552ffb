package card

import (
	"math"
	"testing"

	"github.com/gogpu/card/internal/raster"
)

func TestPathBuilders(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Fatal("new path should be empty")
	}

	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadTo(5, 6, 7, 8)
	p.CubicTo(9, 10, 11, 12, 13, 14)
	p.Close()

	wantVerbs := []raster.PathVerb{
		raster.VerbMoveTo, raster.VerbLineTo, raster.VerbQuadTo, raster.VerbCubicTo, raster.VerbClose,
	}
	if len(p.Verbs()) != len(wantVerbs) {
		t.Fatalf("verbs = %v, want %v", p.Verbs(), wantVerbs)
	}
	for i, v := range wantVerbs {
		if p.Verbs()[i] != v {
			t.Errorf("verb[%d] = %v, want %v", i, p.Verbs()[i], v)
		}
	}
	if len(p.Points()) != 14 {
		t.Errorf("len(Points()) = %d, want 14", len(p.Points()))
	}
	if got := p.CurrentPoint(); got != Pt(1, 2) {
		t.Errorf("CurrentPoint() after Close = %v, want subpath start", got)
	}

	p.Clear()
	if !p.IsEmpty() || len(p.Points()) != 0 {
		t.Error("Clear() left elements behind")
	}
}

func TestPathCloneEqual(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(0, 0, 50, 30, 8)

	c := p.Clone()
	if !p.Equal(c) {
		t.Fatal("clone not equal to original")
	}
	c.LineTo(1, 1)
	if p.Equal(c) {
		t.Error("modified clone still equal")
	}

	var nilPath *Path
	if !nilPath.Equal(nil) || p.Equal(nil) {
		t.Error("nil comparison wrong")
	}
}

func TestRoundedRectangleShape(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(10, 20, 100, 60, 12)

	verbs := p.Verbs()
	if len(verbs) != 10 {
		t.Fatalf("len(verbs) = %d, want 10", len(verbs))
	}
	if verbs[0] != raster.VerbMoveTo || verbs[len(verbs)-1] != raster.VerbClose {
		t.Errorf("path not a single closed subpath: %v", verbs)
	}
	cubics := 0
	for _, v := range verbs {
		if v == raster.VerbCubicTo {
			cubics++
		}
	}
	if cubics != 4 {
		t.Errorf("corner curves = %d, want 4", cubics)
	}

	pts := p.Points()
	if pts[0] != 22 || pts[1] != 20 {
		t.Errorf("start = (%v, %v), want (22, 20)", pts[0], pts[1])
	}
	if b := p.Bounds(); b != (Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 80}) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestRoundedRectangleZeroRadius(t *testing.T) {
	for _, r := range []float64{0, -5, math.NaN()} {
		p := NewPath()
		p.RoundedRectangle(0, 0, 10, 10, r)

		want := NewPath()
		want.Rectangle(0, 0, 10, 10)
		if !p.Equal(want) {
			t.Errorf("radius %v: want plain rectangle", r)
		}
	}
}

func TestRoundedRectangleOversizeRadiusClamps(t *testing.T) {
	tests := []struct {
		name    string
		w, h, r float64
		clamped float64
	}{
		{"stadium", 100, 40, 100, 20},
		{"just over", 100, 40, 20.5, 20},
		{"circle", 40, 40, 1000, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPath()
			got.RoundedRectangle(0, 0, tt.w, tt.h, tt.r)
			want := NewPath()
			want.RoundedRectangle(0, 0, tt.w, tt.h, tt.clamped)
			if !got.Equal(want) {
				t.Error("oversize radius was not clamped to half the shorter side")
			}
		})
	}
}

func TestRoundedRectangleStadiumArea(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(5, 5, 100, 40, 500)

	m, err := RasterizeMask(p, 110, 50)
	if err != nil {
		t.Fatal(err)
	}
	var sum float64
	for _, v := range m.Data() {
		sum += float64(v) / 255
	}

	// 60x40 body plus two half discs of radius 20.
	want := 60*40 + math.Pi*20*20
	if math.Abs(sum-want)/want > 0.01 {
		t.Errorf("covered area = %.1f, want %.1f", sum, want)
	}
	// The flat top edge runs only between the caps.
	if m.At(55, 5) < 128 || m.At(6, 6) > 16 {
		t.Errorf("unexpected stadium edge: top=%d corner=%d", m.At(55, 5), m.At(6, 6))
	}
}

func TestRoundedRectangleNegativeSize(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(10, 10, -20, 30, 5)

	b := p.Bounds()
	if b.Width() != 0 {
		t.Errorf("width = %v, want 0", b.Width())
	}
}
