package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

const (
	// BytesPerPixel is the size of one RGB pixel in a row buffer.
	BytesPerPixel = 3

	// MaxFramebufferBytes bounds a single framebuffer allocation.
	MaxFramebufferBytes int64 = 1 << 32
)

var ErrAllocation = errors.New("framebuffer allocation failed")

// Framebuffer owns the pixels of one rendered image: Height rows of Width
// RGB pixels, stored contiguously. Rows are views into the same buffer and no
// two rows overlap.
//
// A Framebuffer implements image.Image with an opaque 8-bit RGB model, so
// encoders write it without conversion.
type Framebuffer struct {
	width, height int
	pix           []byte
	rows          [][]byte
}

// NewFramebuffer allocates a zeroed width x height framebuffer.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrAllocation, width, height)
	}
	if width > math.MaxInt/BytesPerPixel/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrAllocation, width, height)
	}

	stride := width * BytesPerPixel
	size := stride * height
	if int64(size) > MaxFramebufferBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrAllocation, size, MaxFramebufferBytes)
	}

	fb := &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]byte, size),
		rows:   make([][]byte, height),
	}
	for y := range fb.rows {
		fb.rows[y] = fb.pix[y*stride : (y+1)*stride : (y+1)*stride]
	}

	return fb, nil
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

// Row returns the row buffer for row y.
func (fb *Framebuffer) Row(y int) []byte {
	return fb.rows[y]
}

// Pix returns the whole buffer, row-major.
func (fb *Framebuffer) Pix() []byte {
	return fb.pix
}

// Release drops the pixel memory. The framebuffer must not be used
// afterwards. Release may be called more than once.
func (fb *Framebuffer) Release() {
	fb.pix = nil
	fb.rows = nil
}

func (fb *Framebuffer) Released() bool {
	return fb.pix == nil
}

func (fb *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

func (fb *Framebuffer) At(x, y int) color.Color {
	return fb.RGBAt(x, y)
}

func (fb *Framebuffer) RGBAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(fb.Bounds())) {
		return color.RGBA{}
	}
	p := fb.rows[y][x*BytesPerPixel : x*BytesPerPixel+BytesPerPixel]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
}

// Opaque is always true; encoders use it to drop the alpha channel.
func (fb *Framebuffer) Opaque() bool {
	return true
}
