// Package escape evaluates the Mandelbrot escape time of points in the
// complex plane.
//
// Evaluate is the scalar reference. Batch runs the same recurrence over a
// row of consecutive pixels in lockstep lanes and produces exactly the
// counts Evaluate would.
package escape

import "github.com/willbeason/escape-time/pkg/viewport"

// DefaultMaxIterations caps the recurrence when no other limit is configured.
const DefaultMaxIterations = 200

// Result is the outcome of iterating one point.
type Result struct {
	// Count is the number of iterations completed before the point escaped,
	// or the iteration cap if it never did.
	Count int

	// Escaped is Count < the iteration cap.
	Escaped bool
}

func newResult(count, maxIterations int) Result {
	return Result{Count: count, Escaped: count < maxIterations}
}

// Evaluate iterates z <- z*z + c from z = 0 until |z|^2 reaches Threshold or
// maxIterations iterations have completed.
func Evaluate(c viewport.Point, maxIterations int) Result {
	var zx, zy float32

	count := 0
	for count < maxIterations {
		zx2, zy2 := Square(zx), Square(zy)
		// Negated so a NaN magnitude stops the loop, as a lane mask would.
		if !(zx2+zy2 < Threshold) {
			break
		}

		zx, zy = Step(zx, zy, zx2, zy2, c.Re, c.Im)
		count++
	}

	return newResult(count, maxIterations)
}
