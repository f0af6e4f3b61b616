package engine

import (
	"math"

	"github.com/gielis/iconmaker/internal/prng"
)

const (
	minControlPoints = 8
	maxControlPoints = 24

	// angleDamping keeps angular displacement subtle next to the radial one.
	angleDamping = 0.25

	// angleSeedOffset decorrelates the angle envelope from the radius one.
	angleSeedOffset = 1000
)

// ControlPoints returns the envelope resolution for a curve of the given
// symmetry order: round(order*2) clamped to [8, 24].
func ControlPoints(order float64) int {
	n := int(math.Round(order * 2))
	return max(minControlPoints, min(maxControlPoints, n))
}

// Envelope is a smooth periodic function over [0, 1) built from evenly
// spaced random control points in [-1, 1].
type Envelope struct {
	points []float64
}

// NewEnvelope draws n control points from a Mulberry32 stream seeded with seed.
func NewEnvelope(seed uint32, n int) Envelope {
	if n < 1 {
		n = 1
	}
	rng := prng.New(seed)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = rng.Range(-1, 1)
	}
	return Envelope{points: pts}
}

// At returns the cosine-interpolated value at t. t wraps, so At(1) == At(0).
func (e Envelope) At(t float64) float64 {
	n := len(e.points)
	if n == 0 {
		return 0
	}
	t -= math.Floor(t)
	pos := t * float64(n)
	i := min(int(pos), n-1)
	f := pos - float64(i)
	w := (1 - math.Cos(f*math.Pi)) / 2
	return e.points[i]*(1-w) + e.points[(i+1)%n]*w
}
