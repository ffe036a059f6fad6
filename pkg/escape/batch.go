package escape

import (
	"errors"
	"fmt"

	"github.com/willbeason/escape-time/pkg/lanes"
	"github.com/willbeason/escape-time/pkg/viewport"
)

var ErrLaneWidth = errors.New("invalid lane width")

// Batch evaluates a fixed number of horizontally adjacent points at once.
//
// Each lane keeps its own iteration counter. A lane stops counting the first
// time its magnitude test fails and never resumes, even if its orbit later
// comes back inside the threshold. A Batch holds scratch state and must not
// be shared between goroutines.
type Batch struct {
	width     int
	earlyExit bool

	re, cx       lanes.F32
	zx, zy       lanes.F32
	zx2, zy2     lanes.F32
	magnitude    lanes.F32
	counts       lanes.I32
	active, live lanes.Mask

	steps int
}

type BatchOption func(*Batch)

// WithEarlyExit controls whether Evaluate stops as soon as every lane has
// escaped. It is on by default and never changes the results.
func WithEarlyExit(enabled bool) BatchOption {
	return func(b *Batch) {
		b.earlyExit = enabled
	}
}

func NewBatch(width int, opts ...BatchOption) (*Batch, error) {
	if width < 1 || width > lanes.MaxWidth {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrLaneWidth, width, lanes.MaxWidth)
	}

	b := &Batch{
		width:     width,
		earlyExit: true,
		re:        lanes.NewF32(width),
		cx:        lanes.NewF32(width),
		zx:        lanes.NewF32(width),
		zy:        lanes.NewF32(width),
		zx2:       lanes.NewF32(width),
		zy2:       lanes.NewF32(width),
		magnitude: lanes.NewF32(width),
		counts:    lanes.NewI32(width),
		active:    lanes.NewMask(width),
		live:      lanes.NewMask(width),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Width is the number of lanes.
func (b *Batch) Width() int {
	return b.width
}

// Steps is the number of recurrence steps the last Evaluate ran.
func (b *Batch) Steps() int {
	return b.steps
}

// Evaluate computes the results for the points (re[i], im). re and out must
// both have exactly Width elements.
func (b *Batch) Evaluate(re []float32, im float32, maxIterations int, out []Result) {
	if len(re) != b.width || len(out) != b.width {
		panic(fmt.Sprintf("escape: batch of width %d given %d points and %d results", b.width, len(re), len(out)))
	}

	copy(b.cx, re)
	b.zx.Splat(0)
	b.zy.Splat(0)
	b.counts.Splat(0)
	b.live.Fill(true)

	b.steps = 0
	for i := 0; i < maxIterations; i++ {
		b.steps++

		b.zx2.Mul(b.zx, b.zx)
		b.zy2.Mul(b.zy, b.zy)
		b.magnitude.Add(b.zx2, b.zy2)

		b.active.Less(b.magnitude, Threshold)
		b.active.And(b.live)
		b.counts.AddMasked(b.active, 1)
		copy(b.live, b.active)

		if b.earlyExit && !b.active.Any() {
			break
		}

		// Frozen lanes keep iterating; only their counters are fixed.
		for l := range b.zx {
			b.zx[l], b.zy[l] = Step(b.zx[l], b.zy[l], b.zx2[l], b.zy2[l], b.cx[l], im)
		}
	}

	for l, c := range b.counts {
		out[l] = newResult(int(c), maxIterations)
	}
}

// EvaluateRow fills out, which must have vp.Width elements, with the results
// for row y. Full batches go through the lanes; a trailing partial batch is
// evaluated point by point.
func (b *Batch) EvaluateRow(vp viewport.Viewport, y, maxIterations int, out []Result) {
	if len(out) != vp.Width {
		panic(fmt.Sprintf("escape: row of width %d given %d results", vp.Width, len(out)))
	}

	x := 0
	for ; x+b.width <= vp.Width; x += b.width {
		im := vp.MapRow(x, y, b.re)
		b.Evaluate(b.re, im, maxIterations, out[x:x+b.width])
	}

	for ; x < vp.Width; x++ {
		out[x] = Evaluate(vp.Map(x, y), maxIterations)
	}
}
