// Package render assembles escape-time images row by row.
//
// A Renderer maps every pixel of a row to the complex plane, evaluates it
// with either the scalar or the lane-batched evaluator and writes the
// colorized bytes into that row's buffer. Rows do not depend on each other
// and can be rendered in any order.
package render

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/willbeason/escape-time/pkg/colorize"
	"github.com/willbeason/escape-time/pkg/escape"
)

// Sink consumes a finished image. It must not keep img after returning.
type Sink interface {
	Write(img image.Image) error
}

// Renderer renders images for one Config. It keeps per-row scratch space and
// must not be used from more than one goroutine at a time.
type Renderer struct {
	cfg       Config
	batch     *escape.Batch
	colorizer colorize.Colorizer
	results   []escape.Result
	logger    *slog.Logger
}

type Option func(*Renderer)

// WithLogger sets the logger progress is reported to. By default nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	colorizer, err := colorize.New(cfg.Colors, cfg.MaxIterations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	r := &Renderer{
		cfg:       cfg,
		colorizer: colorizer,
		results:   make([]escape.Result, cfg.Viewport.Width),
		logger:    newNopLogger(),
	}

	if cfg.Mode == ModeVector {
		r.batch, err = escape.NewBatch(cfg.LaneWidth, escape.WithEarlyExit(cfg.EarlyExit))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Renderer) Config() Config {
	return r.cfg
}

// RenderRow renders row y into row, which must hold Width*BytesPerPixel
// bytes. Pixel x is written to row[3x:3x+3].
func (r *Renderer) RenderRow(y int, row []byte) {
	vp := r.cfg.Viewport
	if len(row) != vp.Width*BytesPerPixel {
		panic(fmt.Sprintf("render: row of width %d given %d bytes", vp.Width, len(row)))
	}

	switch r.cfg.Mode {
	case ModeVector:
		r.batch.EvaluateRow(vp, y, r.cfg.MaxIterations, r.results)
	default:
		for x := range r.results {
			r.results[x] = escape.Evaluate(vp.Map(x, y), r.cfg.MaxIterations)
		}
	}

	for x, res := range r.results {
		p := r.colorizer.Colorize(res)
		o := x * BytesPerPixel
		row[o], row[o+1], row[o+2] = p.R, p.G, p.B
	}
}

// RenderTo renders every row of fb, which must match the configured viewport.
func (r *Renderer) RenderTo(fb *Framebuffer) error {
	vp := r.cfg.Viewport
	if fb.Released() {
		return fmt.Errorf("%w: framebuffer already released", ErrConfig)
	}
	if fb.Width() != vp.Width || fb.Height() != vp.Height {
		return fmt.Errorf("%w: framebuffer is %dx%d, viewport is %dx%d",
			ErrConfig, fb.Width(), fb.Height(), vp.Width, vp.Height)
	}

	start := time.Now()
	step := max(vp.Height/10, 1)
	for y := 0; y < vp.Height; y++ {
		r.RenderRow(y, fb.Row(y))
		if (y+1)%step == 0 {
			r.logger.Debug("rendered rows", "done", y+1, "of", vp.Height)
		}
	}

	r.logger.Info("rendered image",
		"width", vp.Width,
		"height", vp.Height,
		"mode", r.cfg.Mode.String(),
		"lanes", r.cfg.LaneWidth,
		"colors", r.cfg.Colors.String(),
		"elapsed", time.Since(start))

	return nil
}

// Render allocates a framebuffer and renders the whole image into it. The
// caller owns the result and should Release it when done.
func (r *Renderer) Render() (*Framebuffer, error) {
	vp := r.cfg.Viewport

	fb, err := NewFramebuffer(vp.Width, vp.Height)
	if err != nil {
		return nil, err
	}

	if err := r.RenderTo(fb); err != nil {
		fb.Release()
		return nil, err
	}

	return fb, nil
}

// Deliver renders an image, hands it to s and releases the framebuffer
// whether or not s succeeded. Errors from s are returned unchanged.
func (r *Renderer) Deliver(s Sink) error {
	fb, err := r.Render()
	if err != nil {
		return err
	}
	defer fb.Release()

	return s.Write(fb)
}
