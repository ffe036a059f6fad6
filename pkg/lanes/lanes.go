package lanes

// MaxWidth is the widest lane vector callers are expected to build.
const MaxWidth = 64

// F32 is a vector of float32 lanes.
type F32 []float32

func NewF32(n int) F32 {
	return make(F32, n)
}

// Splat sets every lane to s.
func (v F32) Splat(s float32) {
	for i := range v {
		v[i] = s
	}
}

func (v F32) Add(a, b F32) {
	for i := range v {
		v[i] = a[i] + b[i]
	}
}

func (v F32) Sub(a, b F32) {
	for i := range v {
		v[i] = a[i] - b[i]
	}
}

func (v F32) Mul(a, b F32) {
	for i := range v {
		v[i] = float32(a[i] * b[i])
	}
}

// I32 is a vector of int32 lanes, used for per-lane counters.
type I32 []int32

func NewI32(n int) I32 {
	return make(I32, n)
}

func (v I32) Splat(s int32) {
	for i := range v {
		v[i] = s
	}
}

// AddMasked adds k to every lane whose mask bit is set.
func (v I32) AddMasked(m Mask, k int32) {
	for i := range v {
		if m[i] {
			v[i] += k
		}
	}
}

// Mask is a vector of per-lane booleans.
type Mask []bool

func NewMask(n int) Mask {
	return make(Mask, n)
}

func (m Mask) Fill(b bool) {
	for i := range m {
		m[i] = b
	}
}

// Less sets m[i] to a[i] < s. NaN lanes compare false.
func (m Mask) Less(a F32, s float32) {
	for i := range m {
		m[i] = a[i] < s
	}
}

// And clears every lane of m that is clear in other.
func (m Mask) And(other Mask) {
	for i := range m {
		m[i] = m[i] && other[i]
	}
}

// Any reports whether at least one lane is set.
func (m Mask) Any() bool {
	for _, b := range m {
		if b {
			return true
		}
	}
	return false
}

// Count returns the number of set lanes.
func (m Mask) Count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}
