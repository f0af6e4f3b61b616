package colors

import "github.com/gielis/iconmaker/internal/prng"

// DefaultPalette is the static swatch list. The last six entries are greys.
var DefaultPalette = []string{
	"#FF6B6B", "#FF8E53", "#FFA64D", "#FFD93D", "#6BCF7F", "#4ECDC4",
	"#45B7D1", "#4D96FF", "#6C5CE7", "#A78BFA", "#F472B6", "#FB7185",
	"#EF4444", "#F97316", "#F59E0B", "#EAB308", "#22C55E", "#14B8A6",
	"#06B6D4", "#3B82F6", "#6366F1", "#8B5CF6", "#EC4899", "#F43F5E",
	"#DC2626", "#EA580C", "#D97706", "#CA8A04", "#16A34A", "#0D9488",
	"#0891B2", "#2563EB", "#4F46E5", "#7C3AED", "#DB2777", "#E11D48",
	"#000000", "#374151", "#6B7280", "#9CA3AF", "#D1D5DB", "#FFFFFF",
}

const greyCount = 6

// Chromatic returns the default palette without its greys.
func Chromatic() []string {
	return append([]string(nil), DefaultPalette[:len(DefaultPalette)-greyCount]...)
}

const (
	lightnessJitter = 0.1
	chromaJitter    = 0.025
	minLightness    = 0.3
	maxLightness    = 0.85
	minChroma       = 0.05
	maxChroma       = 0.25
)

var splitAngles = []float64{30, 60, 120}

// HarmonyOffsets picks the hue offsets for one palette: either
// complementary {0, 180} or split {0, +a, -a} with a in {30, 60, 120}.
func HarmonyOffsets(rng *prng.Rand) []float64 {
	if rng.Float64() < 0.25 {
		return []float64{0, 180}
	}
	a := splitAngles[rng.Intn(len(splitAngles))]
	return []float64{0, a, -a}
}

// HarmoniousLCH rotates base by each offset and jitters lightness and
// chroma independently per hue.
func HarmoniousLCH(base OKLCH, offsets []float64, rng *prng.Rand) []OKLCH {
	out := make([]OKLCH, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, OKLCH{
			L: clamp(base.L+rng.Range(-lightnessJitter, lightnessJitter), minLightness, maxLightness),
			C: clamp(base.C+rng.Range(-chromaJitter, chromaJitter), minChroma, maxChroma),
			H: NormalizeHue(base.H + off),
		})
	}
	return out
}

// Harmonious returns two or three hex colors related to base.
func Harmonious(base string, rng *prng.Rand) ([]string, error) {
	lch, err := HexToOKLCH(base)
	if err != nil {
		return nil, err
	}
	set := HarmoniousLCH(lch, HarmonyOffsets(rng), rng)
	hexes := make([]string, len(set))
	for i, c := range set {
		hexes[i] = OKLCHToHex(c)
	}
	return hexes, nil
}

// RandomPalette picks a chromatic base color and builds a harmonious set
// around it. The same seed always yields the same palette.
func RandomPalette(seed uint32) []string {
	rng := prng.New(seed)
	chromatic := Chromatic()
	base := chromatic[rng.Intn(len(chromatic))]
	// Every palette entry parses, so the error is impossible here.
	hexes, _ := Harmonious(base, rng)
	return hexes
}
