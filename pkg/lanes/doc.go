// Package lanes provides fixed-width data-parallel lane types.
//
// A lane vector is a slice whose length is fixed when it is created and
// never changes. Every operation is a simple loop over all lanes with no
// cross-lane dependency, which the Go compiler can turn into SIMD
// instructions where the target supports them. There is no unsafe and no
// assembly: the contract is lockstep element-wise arithmetic, not a
// specific instruction set.
//
// Binary operations write into the receiver:
//
//	sq := lanes.NewF32(8)
//	sq.Mul(x, x) // sq[i] = x[i] * x[i]
//
// All operands of one operation must have the same length.
//
// Products are rounded to float32 before they are used, so results never
// depend on whether the target fuses multiply and add.
package lanes
