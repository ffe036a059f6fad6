package escape

import "golang.org/x/sys/cpu"

// DefaultLaneWidth returns the number of float32 values that fit in the
// widest vector register the host CPU reports. Hosts that report nothing
// useful get 8, one AVX register.
func DefaultLaneWidth() int {
	switch {
	case cpu.X86.HasAVX512F:
		return 16
	case cpu.X86.HasAVX2, cpu.X86.HasAVX:
		return 8
	case cpu.ARM64.HasASIMD:
		return 4
	default:
		return 8
	}
}
