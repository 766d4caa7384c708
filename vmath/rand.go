package vmath

// FastRand is a xorshift64 generator. Every caller that needs randomness
// takes one explicitly, so a test can seed it and get reproducible runs.
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator; a zero seed is remapped since xorshift
// cannot leave the zero state.
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

// Intn returns a value in [0, n), 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a value in [min, max] inclusive
func (r *FastRand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [min, max)
func (r *FastRand) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
