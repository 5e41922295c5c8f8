package engine

// Random is the draw source for every random decision in the simulation
// Cell picks, item kinds, despawn deadlines and teleport directions all go through it
type Random interface {
	// Intn returns a value in [0, n); n <= 0 returns 0
	Intn(n int) int
}

// FastRand is a seedable xorshift generator
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// RangeInclusive draws uniformly from [lo, hi]
func RangeInclusive(r Random, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
