package engine

import (
	"math"

	"github.com/gielis/iconmaker/internal/colors"
	"github.com/gielis/iconmaker/internal/document"
	"github.com/gielis/iconmaker/internal/prng"
)

// FillKind enumerates fill strategies.
type FillKind int

const (
	FillNone FillKind = iota
	FillSolid
	FillGradient
	FillWatercolor
)

func (k FillKind) String() string {
	switch k {
	case FillSolid:
		return "solid"
	case FillGradient:
		return "gradient"
	case FillWatercolor:
		return "watercolor"
	default:
		return "none"
	}
}

// FallbackColor replaces fill colors that fail to parse.
var FallbackColor = colors.RGBA{R: 128, G: 128, B: 128, A: 1}

const (
	gradientOvershoot = 1.2

	watercolorSeedOffset = 12345
	maxWatercolorWiggle  = 0.95
)

// RadialGradient runs from Center at (CX, CY) to Edge at Radius, in canvas
// units.
type RadialGradient struct {
	CX, CY, Radius float64
	Center, Edge   colors.RGBA
}

// WatercolorLayer is one translucent pass of a watercolor fill.
type WatercolorLayer struct {
	Points []Point
	Color  colors.RGBA
}

// Fill describes how to paint the interior of a shape.
type Fill struct {
	Kind     FillKind
	Color    colors.RGBA // FillSolid
	Gradient RadialGradient
	Layers   []WatercolorLayer
}

// SelectFill resolves the fill strategy of s. Gradient wins over
// watercolor, which wins over solid. steps is the sample count used for
// watercolor layers. Unparseable colors return a *colors.ParseError.
func SelectFill(s document.Shape, steps int) (Fill, error) {
	return SelectFillSeeded(s, steps, Seed(s))
}

// SelectFillSeeded is SelectFill with the texture seed supplied by the
// caller.
func SelectFillSeeded(s document.Shape, steps int, seed uint32) (Fill, error) {
	if !s.HasFill() {
		return Fill{Kind: FillNone}, nil
	}
	base, err := colors.Parse(s.FillColor)
	if err != nil {
		return Fill{}, err
	}

	switch {
	case s.Gradient != nil && s.Gradient.EdgeColor != "":
		edge, err := colors.Parse(s.Gradient.EdgeColor)
		if err != nil {
			return Fill{}, err
		}
		return Fill{Kind: FillGradient, Gradient: RadialGradient{
			CX:     s.CX,
			CY:     s.CY,
			Radius: s.Radius * gradientOvershoot,
			Center: base,
			Edge:   edge,
		}}, nil

	case s.Watercolor != nil && s.Watercolor.Intensity > 0:
		return Fill{Kind: FillWatercolor, Layers: watercolorLayers(s, base, steps, seed)}, nil
	}
	return Fill{Kind: FillSolid, Color: base}, nil
}

// watercolorLayers draws, per layer and in this order: the opacity, the
// variation amount, then the color jitter.
func watercolorLayers(s document.Shape, base colors.RGBA, steps int, seed uint32) []WatercolorLayer {
	intensity := s.Watercolor.Intensity
	seed += watercolorSeedOffset
	rng := prng.New(seed)

	n := int(math.Ceil(intensity*0.15)) + 3
	layers := make([]WatercolorLayer, n)
	for i := range layers {
		opacity := base.A / float64(n) * rng.Range(0.6, 1.4)
		k := math.Min(intensity*0.3*rng.Range(0.5, 1.5)*0.02, maxWatercolorWiggle)
		jitter := int(math.Floor(intensity * 0.3 * rng.Range(-5, 5)))

		layers[i] = WatercolorLayer{
			Points: SampleVaried(s, steps, k, seed+uint32(i)+1),
			Color: colors.RGBA{
				R: shiftChannel(base.R, jitter),
				G: shiftChannel(base.G, jitter),
				B: shiftChannel(base.B, jitter),
				A: opacity,
			},
		}
	}
	return layers
}

func shiftChannel(c uint8, d int) uint8 {
	return uint8(max(0, min(255, int(c)+d)))
}
