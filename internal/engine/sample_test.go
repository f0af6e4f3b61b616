package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gielis/iconmaker/internal/document"
)

func TestCirclePresetHasConstantRadius(t *testing.T) {
	s := circleShape(100)
	pts := Sample(s, 360)
	require.Len(t, pts, 361)
	for i, p := range pts {
		d := math.Hypot(p.X-s.CX, p.Y-s.CY)
		require.InDelta(t, 100.0, d, 1e-9, "point %d", i)
	}
	assert.InDelta(t, pts[0].X, pts[360].X, 1e-9)
	assert.InDelta(t, pts[0].Y, pts[360].Y, 1e-9)
}

func TestZeroVariationIsIdentity(t *testing.T) {
	s := circleShape(80)
	s.Superformula = document.Superformula{M: 6, N1: 1, N2: 4, N3: 4, A: 1, B: 1}

	plain := SampleVaried(s, 360, 0, 1)
	assert.Equal(t, plain, SampleVaried(s, 360, 0, 999))

	s.Variation = document.VariationNone
	assert.Equal(t, plain, Sample(s, 360))

	for i, p := range plain {
		theta := 2 * math.Pi * float64(i) / 360
		r := SuperformulaRadius(theta, s.Superformula) * s.Radius
		assert.InDelta(t, s.CX+r*math.Cos(theta), p.X, 1e-9)
		assert.InDelta(t, s.CY+r*math.Sin(theta), p.Y, 1e-9)
	}
}

func TestVariationIsDeterministicAndClosed(t *testing.T) {
	s := circleShape(100)
	s.Superformula = document.Superformula{M: 6, N1: 1, N2: 4, N3: 4, A: 1, B: 1}
	s.Variation = document.VariationWild

	a := Sample(s, 720)
	b := Sample(s, 720)
	assert.Equal(t, a, b)
	assert.InDelta(t, a[0].X, a[720].X, 1e-9)
	assert.InDelta(t, a[0].Y, a[720].Y, 1e-9)

	s.Variation = document.VariationNone
	plain := Sample(s, 720)
	assert.NotEqual(t, plain, a)

	// Radial displacement is bounded by the variation amount.
	for i := range a {
		dv := math.Hypot(a[i].X-s.CX, a[i].Y-s.CY)
		dp := math.Hypot(plain[i].X-s.CX, plain[i].Y-s.CY)
		assert.LessOrEqual(t, math.Abs(dv-dp), dp*0.16+1e-9)
	}

	recolored := s
	recolored.Variation = document.VariationWild
	recolored.FillColor = "#123456"
	assert.Equal(t, a, Sample(recolored, 720))
}

func TestSampleKnot(t *testing.T) {
	s := circleShape(100)
	s.Knot = &document.Knot{Lobes: 5, Turns: 2, Amplitude: 0.35, BaseRadius: 0.65}
	pts := Sample(s, 1000)
	require.Len(t, pts, 1001)
	for _, p := range pts {
		d := math.Hypot(p.X-s.CX, p.Y-s.CY)
		assert.GreaterOrEqual(t, d, 30-1e-9)
		assert.LessOrEqual(t, d, 100+1e-9)
	}
	assert.InDelta(t, pts[0].X, pts[1000].X, 1e-9)
	assert.InDelta(t, pts[0].Y, pts[1000].Y, 1e-9)
}

func TestSampleAlwaysFinite(t *testing.T) {
	s := circleShape(100)
	s.Superformula = document.Superformula{M: 4, N1: 0, N2: 0, N3: 0, A: 0, B: 0}
	s.Variation = document.VariationHeavy
	for _, p := range Sample(s, 200) {
		assert.False(t, math.IsNaN(p.X) || math.IsInf(p.X, 0))
		assert.False(t, math.IsNaN(p.Y) || math.IsInf(p.Y, 0))
	}
	assert.Len(t, Sample(s, 0), 2)
}

func TestStepsForSize(t *testing.T) {
	assert.Equal(t, SmallSteps, StepsForSize(16))
	assert.Equal(t, SmallSteps, StepsForSize(32))
	assert.Equal(t, MediumSteps, StepsForSize(48))
	assert.Equal(t, RenderSteps, StepsForSize(256))
}

func TestEnvelope(t *testing.T) {
	assert.Equal(t, 8, ControlPoints(0))
	assert.Equal(t, 8, ControlPoints(4))
	assert.Equal(t, 12, ControlPoints(6))
	assert.Equal(t, 11, ControlPoints(5.4))
	assert.Equal(t, 24, ControlPoints(20))

	e := NewEnvelope(42, 12)
	require.Len(t, e.points, 12)
	assert.Equal(t, e, NewEnvelope(42, 12))
	assert.NotEqual(t, e, NewEnvelope(42+angleSeedOffset, 12))

	assert.Equal(t, e.At(0), e.At(1), "envelope wraps")
	for i, v := range e.points {
		assert.InDelta(t, v, e.At(float64(i)/12), 1e-9)
	}
	for tt := 0.0; tt < 1; tt += 0.001 {
		v := e.At(tt)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}

	// Smooth: neighboring samples never jump.
	prev := e.At(0)
	for i := 1; i <= 1000; i++ {
		v := e.At(float64(i) / 1000)
		assert.Less(t, math.Abs(v-prev), 0.05)
		prev = v
	}
}

func TestBoundsAndHitTest(t *testing.T) {
	big := circleShape(100)
	small := circleShape(20)
	shapes := []document.Shape{big, small}

	b := Bounds(Sample(big, RenderSteps))
	assert.InDelta(t, 92.0, b.X, 1e-6)
	assert.InDelta(t, 92.0, b.Y, 1e-6)
	assert.InDelta(t, 200.0, b.Width, 1e-6)
	assert.InDelta(t, 200.0, b.Height, 1e-6)

	assert.Equal(t, 1, HitTest(shapes, 192, 192))
	assert.Equal(t, 0, HitTest(shapes, 242, 192))
	assert.Equal(t, -1, HitTest(shapes, 10, 10))
	assert.Equal(t, -1, HitTest(nil, 192, 192))

	// Inside the bounding box of a star but outside its arms.
	star := circleShape(100)
	star.Superformula = document.Superformula{M: 4, N1: 0.5, N2: 0.5, N3: 0.5, A: 1, B: 1}
	assert.Equal(t, -1, HitTest([]document.Shape{star}, 192+60, 192+60))
	assert.Equal(t, 0, HitTest([]document.Shape{star}, 192+60, 192))

	sel := SelectionBounds(shapes, []int{1, 7})
	assert.InDelta(t, 40.0, sel.Width, 1e-6)
	assert.True(t, SelectionBounds(shapes, nil).IsEmpty())
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: -5, Width: 10, Height: 10}
	assert.Equal(t, Rect{X: 0, Y: -5, Width: 15, Height: 15}, a.Union(b))
	assert.Equal(t, a, Rect{}.Union(a))
	cx, cy := a.Center()
	assert.Equal(t, 5.0, cx)
	assert.Equal(t, 5.0, cy)
}

func TestContainsWinding(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	assert.True(t, Contains(square, 5, 5))
	assert.False(t, Contains(square, 15, 5))
	assert.False(t, Contains(square[:2], 5, 5))

	// Traversing the square twice still counts as inside under nonzero.
	double := append(append([]Point{}, square...), square[1:]...)
	assert.True(t, Contains(double, 5, 5))
}
