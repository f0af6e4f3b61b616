package colors

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Oklab is a color in the Oklab perceptual space.
type Oklab struct {
	L, A, B float64
}

// OKLCH is the cylindrical form of Oklab: lightness, chroma and hue in
// degrees within [0, 360).
type OKLCH struct {
	L, C, H float64
}

// SRGBToLinear decodes one gamma-encoded sRGB component in [0, 1].
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB encodes one linear-light component back to sRGB gamma.
func LinearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// LinearToXYZ maps linear sRGB to CIE XYZ (D65).
func LinearToXYZ(r, g, b float64) (x, y, z float64) {
	return colorful.LinearRgbToXyz(r, g, b)
}

// XYZToLinear maps CIE XYZ (D65) back to linear sRGB.
func XYZToLinear(x, y, z float64) (r, g, b float64) {
	return colorful.XyzToLinearRgb(x, y, z)
}

// XYZToOklab applies the two Oklab matrices with the cube-root step between them.
func XYZToOklab(x, y, z float64) Oklab {
	l, a, b := colorful.XyzToOkLab(x, y, z)
	return Oklab{L: l, A: a, B: b}
}

// OklabToXYZ inverts XYZToOklab.
func OklabToXYZ(o Oklab) (x, y, z float64) {
	return colorful.OkLabToXyz(o.L, o.A, o.B)
}

// LCH converts to the cylindrical form.
func (o Oklab) LCH() OKLCH {
	h := math.Atan2(o.B, o.A) * 180 / math.Pi
	return OKLCH{L: o.L, C: math.Hypot(o.A, o.B), H: NormalizeHue(h)}
}

// Lab converts back to rectangular Oklab.
func (c OKLCH) Lab() Oklab {
	rad := c.H * math.Pi / 180
	return Oklab{L: c.L, A: c.C * math.Cos(rad), B: c.C * math.Sin(rad)}
}

// NormalizeHue wraps h into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// ToOklab converts an 8-bit color to Oklab, ignoring alpha.
func (c RGBA) ToOklab() Oklab {
	r := SRGBToLinear(float64(c.R) / 255)
	g := SRGBToLinear(float64(c.G) / 255)
	b := SRGBToLinear(float64(c.B) / 255)
	return XYZToOklab(LinearToXYZ(r, g, b))
}

// FromOklab converts o to an opaque 8-bit color, clipping out-of-gamut
// channels.
func FromOklab(o Oklab) RGBA {
	r, g, b := XYZToLinear(OklabToXYZ(o))
	return RGBA{
		R: quantize(LinearToSRGB(clamp(r, 0, 1))),
		G: quantize(LinearToSRGB(clamp(g, 0, 1))),
		B: quantize(LinearToSRGB(clamp(b, 0, 1))),
		A: 1,
	}
}

// HexToOKLCH parses s and returns its OKLCH coordinates.
func HexToOKLCH(s string) (OKLCH, error) {
	c, err := Parse(s)
	if err != nil {
		return OKLCH{}, err
	}
	return c.ToOklab().LCH(), nil
}

// OKLCHToHex converts c to #rrggbb.
func OKLCHToHex(c OKLCH) string {
	return FromOklab(c.Lab()).Hex()
}

func quantize(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}
