package engine

import (
	"math"

	"github.com/gielis/iconmaker/internal/document"
)

const (
	// denominatorFloor keeps the superformula away from 0^(-1/n1).
	denominatorFloor = 1e-12

	// MaxRadius caps the unit radius of degenerate curves.
	MaxRadius = 1e6
)

// SuperformulaRadius evaluates Gielis' superformula at theta:
//
//	r = (|cos(m·θ/4)/a|^n2 + |sin(m·θ/4)/b|^n3)^(-1/n1)
//
// The result is always finite and non-negative.
func SuperformulaRadius(theta float64, p document.Superformula) float64 {
	t1 := math.Pow(math.Abs(math.Cos(p.M*theta/4)/p.A), p.N2)
	t2 := math.Pow(math.Abs(math.Sin(p.M*theta/4)/p.B), p.N3)
	denom := t1 + t2
	if !(denom >= denominatorFloor) { // also catches NaN
		denom = denominatorFloor
	}
	return clampRadius(math.Pow(denom, -1/p.N1))
}

// KnotAt evaluates the rosette at t in [0, 1]. The angle sweeps turns full
// revolutions while the radius oscillates lobes times.
func KnotAt(t float64, k document.Knot) (r, theta float64) {
	r = k.BaseRadius + k.Amplitude*math.Cos(2*k.Lobes*math.Pi*t)
	theta = 2 * k.Turns * math.Pi * t
	return clampRadius(r), theta
}

func clampRadius(r float64) float64 {
	switch {
	case math.IsNaN(r):
		return 0
	case r > MaxRadius:
		return MaxRadius
	case r < -MaxRadius:
		return -MaxRadius
	}
	return r
}

// polar evaluates the active curve at t in [0, 1].
func polar(c document.Curve, t float64) (r, theta float64) {
	switch c := c.(type) {
	case document.Knot:
		return KnotAt(t, c)
	case document.Superformula:
		theta = 2 * math.Pi * t
		return SuperformulaRadius(theta, c), theta
	}
	return 0, 0
}

// curveOrder is the symmetry order used to size variation envelopes.
func curveOrder(c document.Curve) float64 {
	switch c := c.(type) {
	case document.Knot:
		return c.Lobes
	case document.Superformula:
		return c.M
	}
	return 0
}
