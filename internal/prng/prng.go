// Package prng implements the Mulberry32 generator used for every
// reproducible random choice in the icon engine: organic variation,
// watercolor layers and procedural palettes.
//
// All arithmetic is unsigned 32-bit with wraparound, so a given seed yields
// the same stream on every platform.
package prng

// Next advances state by one Mulberry32 step and returns a value in [0, 1)
// together with the new state.
func Next(state uint32) (float64, uint32) {
	state += 0x6D2B79F5
	t := state
	t = (t ^ (t >> 15)) * (t | 1)
	t = (t + (t^(t>>7))*(t|61)) ^ t
	return float64(t^(t>>14)) / 4294967296, state
}

// Rand is a Mulberry32 stream. The zero value is a valid stream seeded with 0.
type Rand struct {
	state uint32
}

// New returns a stream seeded with seed.
func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	var v float64
	v, r.state = Next(r.state)
	return v
}

// Range returns the next value scaled into [min, max).
func (r *Rand) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Intn returns the next value as an integer in [0, n). It returns 0 when n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// State returns the current internal state.
func (r *Rand) State() uint32 {
	return r.state
}
