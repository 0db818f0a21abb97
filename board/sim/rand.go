package sim

// Rand draws uniform integers in [0, n).
type Rand interface {
	Intn(n int) int
}

// Xorshift32 is a small allocation-free generator, good enough for pin bounces.
type Xorshift32 struct {
	state uint32
}

func NewXorshift32(seed uint32) *Xorshift32 {
	return &Xorshift32{state: seed}
}

// FoldSeed folds a 64-bit entropy sample into a non-zero seed.
func FoldSeed(v uint64) uint32 {
	s := uint32(v) ^ uint32(v>>32)
	if s == 0 {
		s = 0x6d2b79f5
	}
	return s
}

func (r *Xorshift32) Uint32() uint32 {
	r.state = xorshift32(r.state)
	return r.state
}

func (r *Xorshift32) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint32() % uint32(n))
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}
