package engine

import "hash/fnv"

// variance must be reproducible for a game across calls and processes, so
// the generator is a splitmix64 keyed by the game id rather than anything
// from math/rand. Unpredictability is explicitly not a requirement.

const varianceSalt = "jinx-v2"

// rng is a splitmix64 stream.
type rng struct {
	state uint64
}

// newRNG derives a generator from a seed string (game id plus salt).
func newRNG(seed string) *rng {
	h := fnv.New64a()
	h.Write([]byte(seed + varianceSalt))
	return &rng{state: h.Sum64()}
}

func (r *rng) next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Float64 returns a value in [0, 1).
func (r *rng) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// IntN returns a value in [0, n).
func (r *rng) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}
