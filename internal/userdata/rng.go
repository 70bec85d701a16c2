package userdata

import "math"

// LCG parameters. Changing any of them changes every generated record.
const (
	lcgMul = 9301
	lcgInc = 49297
	lcgMod = 233280
)

// rng is a linear congruential generator producing draws in [0, 1).
// It is not safe for concurrent use; each Generate call owns one.
type rng struct {
	state int64
}

func newRNG(seed int64) *rng {
	// reducing first keeps state*lcgMul inside int64 and leaves the
	// recurrence's result unchanged for non-negative seeds
	s := seed % lcgMod
	if s < 0 {
		s += lcgMod
	}
	return &rng{state: s}
}

// next advances the state and returns state/lcgMod.
func (r *rng) next() float64 {
	r.state = (r.state*lcgMul + lcgInc) % lcgMod
	return float64(r.state) / lcgMod
}

// intn returns floor(next() * n).
func (r *rng) intn(n int64) int64 {
	return int64(math.Floor(r.next() * float64(n)))
}

// pick returns a uniformly drawn element of s.
func pick[T any](r *rng, s []T) T {
	return s[r.intn(int64(len(s)))]
}
