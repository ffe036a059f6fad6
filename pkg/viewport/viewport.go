package viewport

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultWidth  = 8192
	DefaultHeight = 8192

	// DefaultScale is the width of the complex plane shown across the image.
	DefaultScale = 4.0
)

var ErrInvalid = errors.New("invalid viewport")

// A Point is a position in the complex plane.
type Point struct {
	Re, Im float32
}

// Viewport maps a Width x Height pixel grid onto the complex plane, centered
// on the origin. XScale and YScale are the extents of the plane covered
// horizontally and vertically.
type Viewport struct {
	Width, Height  int
	XScale, YScale float64
}

func New(width, height int, xScale, yScale float64) (Viewport, error) {
	vp := Viewport{Width: width, Height: height, XScale: xScale, YScale: yScale}
	return vp, vp.Validate()
}

func Default() Viewport {
	return Viewport{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		XScale: DefaultScale,
		YScale: DefaultScale,
	}
}

func (vp Viewport) Validate() error {
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalid, vp.Width, vp.Height)
	}
	if !validScale(vp.XScale) || !validScale(vp.YScale) {
		return fmt.Errorf("%w: scales (%g, %g) must be positive and finite", ErrInvalid, vp.XScale, vp.YScale)
	}
	return nil
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 1)
}

// Map returns the point for pixel (x, y).
func (vp Viewport) Map(x, y int) Point {
	return Point{Re: vp.re(x), Im: vp.im(y)}
}

// MapRow fills re with the real parts of pixels x0, x0+1, ... on row y and
// returns the row's imaginary part. re[i] is always Map(x0+i, y).Re.
func (vp Viewport) MapRow(x0, y int, re []float32) float32 {
	for i := range re {
		re[i] = vp.re(x0 + i)
	}
	return vp.im(y)
}

// Both coordinates are computed in float64 and rounded once, so every caller
// sees the same float32 for the same pixel.
func (vp Viewport) re(x int) float32 {
	return float32(float64(x-vp.Width/2) / (float64(vp.Width) / vp.XScale))
}

func (vp Viewport) im(y int) float32 {
	return float32(float64(y-vp.Height/2) / (float64(vp.Height) / vp.YScale))
}
