package document

import (
	"math"

	"github.com/gielis/iconmaker/internal/colors"
	"github.com/gielis/iconmaker/internal/prng"
)

// RandomDemo composes three to eight centered superformula layers. The same
// seed always yields the same composition.
func RandomDemo(seed uint32) []Shape {
	rng := prng.New(seed)
	palette := colors.Chromatic()

	count := rng.Intn(6) + 3
	shapes := make([]Shape, 0, count)
	for i := 0; i < count; i++ {
		curve := Superformula{
			M:  float64(rng.Intn(16) + 3),
			N1: tenths(rng.Range(0.5, 9.5)),
			N2: tenths(rng.Range(0.5, 9.5)),
			N3: tenths(rng.Range(0.5, 9.5)),
			A:  tenths(rng.Range(0.5, 2.5)),
			B:  tenths(rng.Range(0.5, 2.5)),
		}

		// Base 40 or 100 plus up to 40 or 60, so radii fall in [40, 160).
		sizeRange, sizeBase := 40.0, 100.0
		if rng.Float64() < 0.7 {
			sizeRange = 60
		}
		if rng.Float64() < 0.7 {
			sizeBase = 40
		}
		size := math.Floor(rng.Float64()*sizeRange + sizeBase)

		rotation := rng.Float64() * 2 * math.Pi
		opacity := rng.Range(0.4, 0.9)
		c := palette[rng.Intn(len(palette))]

		width := 0.0
		if rng.Float64() > 0.5 {
			width = float64(rng.Intn(3) + 1)
		}

		shapes = append(shapes, Shape{
			CX:           CanvasCenter,
			CY:           CanvasCenter,
			Radius:       size,
			Rotation:     rotation,
			Superformula: curve,
			FillColor:    must(colors.WithAlpha(c, opacity)),
			StrokeColor:  c,
			StrokeWidth:  width,
		})
	}
	return shapes
}

func tenths(v float64) float64 {
	return math.Round(v*10) / 10
}
