package escape

// Threshold is the squared magnitude at which a point is considered escaped.
const Threshold = 4.0

// Square returns x*x rounded to float32.
func Square(x float32) float32 {
	return float32(x * x)
}

// Step advances z <- z*z + c given the squares of z's components, which the
// caller has already computed for the magnitude test.
//
// Every product is converted explicitly so the compiler may not fuse it into
// a multiply-add; the scalar and batch evaluators must round identically.
func Step(zx, zy, zx2, zy2, cx, cy float32) (float32, float32) {
	return zx2 - zy2 + cx, float32(2*zx*zy) + cy
}
