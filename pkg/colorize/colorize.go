// Package colorize maps escape-time results to RGB pixels.
//
// Colorizers are pure: the same escape.Result always produces the same
// Pixel. All scaling of iteration counts to color values happens here; the
// evaluators only ever report raw counts.
package colorize

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/willbeason/escape-time/pkg/escape"
)

var ErrUnknownPolicy = errors.New("unknown color policy")

// Pixel is one 8-bit RGB sample.
type Pixel struct {
	R, G, B uint8
}

type Colorizer interface {
	Colorize(escape.Result) Pixel
}

// Grayscale scales the iteration count linearly onto 0-255, so points that
// never escape are white.
type Grayscale struct {
	MaxIterations int
}

func (g Grayscale) Colorize(r escape.Result) Pixel {
	if g.MaxIterations <= 0 {
		return Pixel{}
	}

	c := uint8(255 * r.Count / g.MaxIterations)
	return Pixel{R: c, G: c, B: c}
}

// Sinusoidal bands escaped points with one sine wave per channel. Points
// that never escape are black.
//
// Each channel is 255*sin(k*count) truncated toward zero and stored as its
// low eight bits, so negative half-waves wrap around instead of clamping.
type Sinusoidal struct{}

func (Sinusoidal) Colorize(r escape.Result) Pixel {
	if !r.Escaped {
		return Pixel{}
	}

	n := float64(r.Count)
	return Pixel{
		R: band(0.1 * n),
		G: band(0.2 * n),
		B: band(0.3 * n),
	}
}

func band(phase float64) uint8 {
	v := int(255 * math.Sin(phase))
	return uint8(v)
}

type Policy int

const (
	PolicyGrayscale Policy = iota
	PolicySinusoidal
)

func (p Policy) String() string {
	switch p {
	case PolicyGrayscale:
		return "gray"
	case PolicySinusoidal:
		return "sine"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "gray", "grey", "grayscale":
		return PolicyGrayscale, nil
	case "sine", "sin", "sinusoidal":
		return PolicySinusoidal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// New returns the Colorizer for p. maxIterations must match the cap the
// results were computed with.
func New(p Policy, maxIterations int) (Colorizer, error) {
	switch p {
	case PolicyGrayscale:
		if maxIterations < 1 {
			return nil, fmt.Errorf("grayscale needs a positive iteration cap, got %d", maxIterations)
		}
		return Grayscale{MaxIterations: maxIterations}, nil
	case PolicySinusoidal:
		return Sinusoidal{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, p)
	}
}
