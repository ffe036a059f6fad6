package escape

import (
	"testing"

	"github.com/willbeason/escape-time/pkg/viewport"
)

func TestEvaluate_KnownPoints(t *testing.T) {
	const maxIterations = 200

	tests := []struct {
		name string
		c    viewport.Point
		want Result
	}{
		{"origin", viewport.Point{Re: 0, Im: 0}, Result{Count: maxIterations, Escaped: false}},
		{"period two", viewport.Point{Re: -1, Im: 0}, Result{Count: maxIterations, Escaped: false}},
		{"cusp", viewport.Point{Re: 0.25, Im: 0}, Result{Count: maxIterations, Escaped: false}},
		// z1 = 2 lands exactly on the threshold.
		{"two", viewport.Point{Re: 2, Im: 0}, Result{Count: 1, Escaped: true}},
		// z: 0, 1, 2.
		{"one", viewport.Point{Re: 1, Im: 0}, Result{Count: 2, Escaped: true}},
		{"far", viewport.Point{Re: -2, Im: -2}, Result{Count: 1, Escaped: true}},
		{"imaginary unit", viewport.Point{Re: 0, Im: 1}, Result{Count: maxIterations, Escaped: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.c, maxIterations); got != tt.want {
				t.Errorf("Evaluate(%v) = %+v, want %+v", tt.c, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Bounded(t *testing.T) {
	vp := viewport.Viewport{Width: 64, Height: 48, XScale: 4, YScale: 4}

	for _, maxIterations := range []int{1, 2, 7, 50} {
		for y := 0; y < vp.Height; y++ {
			for x := 0; x < vp.Width; x++ {
				r := Evaluate(vp.Map(x, y), maxIterations)
				if r.Count < 0 || r.Count > maxIterations {
					t.Fatalf("(%d, %d) max %d: count %d out of range", x, y, maxIterations, r.Count)
				}
				if r.Escaped != (r.Count < maxIterations) {
					t.Fatalf("(%d, %d) max %d: escaped %v with count %d", x, y, maxIterations, r.Escaped, r.Count)
				}
			}
		}
	}
}

func TestEvaluate_ConjugateSymmetry(t *testing.T) {
	// Rows y and 2*(Height/2)-y map to complex conjugates.
	for _, h := range []int{40, 41} {
		vp := viewport.Viewport{Width: 50, Height: h, XScale: 4, YScale: 4}
		mirror := 2 * (h / 2)

		for y := mirror - h + 1; y < h; y++ {
			if y < 0 {
				continue
			}
			for x := 0; x < vp.Width; x++ {
				c := vp.Map(x, y)
				m := vp.Map(x, mirror-y)
				if m.Im != -c.Im {
					t.Fatalf("Map(%d, %d).Im = %v, want %v", x, mirror-y, m.Im, -c.Im)
				}
				if a, b := Evaluate(c, 100), Evaluate(m, 100); a != b {
					t.Fatalf("height %d: rows %d and %d differ at x=%d: %+v vs %+v", h, y, mirror-y, x, a, b)
				}
			}
		}
	}
}

func TestStep(t *testing.T) {
	// (1+2i)^2 + (0.5-1i) = -3+4i + 0.5-1i
	zx, zy := Step(1, 2, Square(1), Square(2), 0.5, -1)
	if zx != -2.5 || zy != 3 {
		t.Errorf("Step() = (%v, %v), want (-2.5, 3)", zx, zy)
	}
}

func TestDefaultLaneWidth(t *testing.T) {
	switch w := DefaultLaneWidth(); w {
	case 4, 8, 16:
	default:
		t.Errorf("DefaultLaneWidth() = %d, want 4, 8 or 16", w)
	}
}
