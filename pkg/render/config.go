package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/willbeason/escape-time/pkg/colorize"
	"github.com/willbeason/escape-time/pkg/escape"
	"github.com/willbeason/escape-time/pkg/lanes"
	"github.com/willbeason/escape-time/pkg/viewport"
)

var ErrConfig = errors.New("invalid render configuration")

// Mode selects the evaluator used for each row.
type Mode int

const (
	// ModeVector evaluates LaneWidth pixels per batch.
	ModeVector Mode = iota
	// ModeScalar evaluates one pixel at a time.
	ModeScalar
)

func (m Mode) String() string {
	switch m {
	case ModeVector:
		return "vector"
	case ModeScalar:
		return "scalar"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "vector", "simd", "lanes":
		return ModeVector, nil
	case "scalar":
		return ModeScalar, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrConfig, s)
	}
}

// Config is everything that determines a rendered image. It does not change
// once a Renderer has been built from it.
type Config struct {
	Viewport      viewport.Viewport
	MaxIterations int

	Mode      Mode
	LaneWidth int
	// EarlyExit lets a batch stop once all of its lanes have escaped.
	EarlyExit bool

	Colors colorize.Policy
}

func DefaultConfig() Config {
	return Config{
		Viewport:      viewport.Default(),
		MaxIterations: escape.DefaultMaxIterations,
		Mode:          ModeVector,
		LaneWidth:     escape.DefaultLaneWidth(),
		EarlyExit:     true,
		Colors:        colorize.PolicyGrayscale,
	}
}

func (c Config) Validate() error {
	if err := c.Viewport.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d must be at least 1", ErrConfig, c.MaxIterations)
	}

	switch c.Mode {
	case ModeScalar:
	case ModeVector:
		if c.LaneWidth < 1 || c.LaneWidth > lanes.MaxWidth {
			return fmt.Errorf("%w: lane width %d not in [1, %d]", ErrConfig, c.LaneWidth, lanes.MaxWidth)
		}
	default:
		return fmt.Errorf("%w: unknown mode %v", ErrConfig, c.Mode)
	}

	if _, err := colorize.New(c.Colors, c.MaxIterations); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return nil
}
