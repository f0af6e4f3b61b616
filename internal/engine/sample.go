package engine

import (
	"math"

	"github.com/gielis/iconmaker/internal/document"
)

// Sample counts per consumer.
const (
	RenderSteps = 1500
	SVGSteps    = 360
	SmallSteps  = 180
	MediumSteps = 720
)

// StepsForSize picks a sample count for a raster export of px pixels.
func StepsForSize(px int) int {
	switch {
	case px <= 32:
		return SmallSteps
	case px <= 128:
		return MediumSteps
	default:
		return RenderSteps
	}
}

// Point is a canvas-space vertex.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sample returns steps+1 canvas-space points tracing the closed outline of
// s, applying the shape's own variation mode.
func Sample(s document.Shape, steps int) []Point {
	return SampleSeeded(s, steps, Seed(s))
}

// SampleSeeded is Sample with the texture seed supplied by the caller, for
// drawing a shape away from its canvas placement with its canvas texture.
func SampleSeeded(s document.Shape, steps int, seed uint32) []Point {
	return SampleVaried(s, steps, s.Variation.Amount(), seed)
}

// SampleVaried samples s with variation amount k and envelopes seeded from
// seed. k == 0 yields the unperturbed curve.
func SampleVaried(s document.Shape, steps int, k float64, seed uint32) []Point {
	steps = max(steps, 1)
	curve := s.Curve()

	var radial, angular Envelope
	varied := k != 0
	if varied {
		n := ControlPoints(curveOrder(curve))
		radial = NewEnvelope(seed, n)
		angular = NewEnvelope(seed+angleSeedOffset, n)
	}

	m := ShapeMatrix(s)
	pts := make([]Point, steps+1)
	for i := range pts {
		t := float64(i) / float64(steps)
		r, theta := polar(curve, t)
		if varied {
			r *= 1 + radial.At(t)*k
			theta += angular.At(t) * k * angleDamping
		}
		x, y := m.TransformPoint(r*math.Cos(theta), r*math.Sin(theta))
		pts[i] = Point{X: x, Y: y}
	}
	return pts
}
