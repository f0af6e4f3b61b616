package document

import (
	"fmt"
	"math"

	"github.com/gielis/iconmaker/internal/colors"
)

// Demo is a named, read-only composition.
type Demo struct {
	Key  string
	Name string

	build func() []Shape
}

// Shapes builds a fresh copy of the demo's shapes.
func (d Demo) Shapes() []Shape {
	return d.build()
}

var demos = []Demo{
	{Key: "descendingStar", Name: "Descending Star", build: descendingStar},
	{Key: "bloomingFlower", Name: "Blooming Flower", build: bloomingFlower},
	{Key: "clockworkGears", Name: "Clockwork Gears", build: clockworkGears},
	{Key: "rainbowBurst", Name: "Rainbow Burst", build: rainbowBurst},
	{Key: "geometricMandala", Name: "Geometric Mandala", build: geometricMandala},
	{Key: "nestedSquares", Name: "Nested Squares", build: nestedSquares},
	{Key: "geminEye", Name: "Gemin-EYE", build: geminEye},
	{Key: "celticRosette", Name: "Celtic Rosette", build: celticRosette},
}

// Demos lists every demo in menu order.
func Demos() []Demo {
	return append([]Demo(nil), demos...)
}

// LookupDemo finds a demo by key.
func LookupDemo(key string) (Demo, bool) {
	for _, d := range demos {
		if d.Key == key {
			return d, true
		}
	}
	return Demo{}, false
}

func centered(radius, rotation float64, curve Superformula, fill, stroke string, width float64) Shape {
	return Shape{
		CX:           CanvasCenter,
		CY:           CanvasCenter,
		Radius:       radius,
		Rotation:     rotation,
		Superformula: curve,
		FillColor:    fill,
		StrokeColor:  stroke,
		StrokeWidth:  width,
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// must unwraps color helpers applied to the literal colors below.
func must(s string, err error) string {
	if err != nil {
		panic(err)
	}
	return s
}

func descendingStar() []Shape {
	palette := []string{
		"#FF6B6B", "#FF8E53", "#FFA64D", "#FFD93D", "#6BCF7F", "#4ECDC4",
		"#45B7D1", "#4D96FF", "#6C5CE7", "#A78BFA", "#F472B6", "#FB7185",
		"#EF4444", "#F97316", "#F59E0B",
	}
	shapes := make([]Shape, 0, 15)
	for i := 0; i < 15; i++ {
		f := float64(i)
		base := palette[i%len(palette)]
		light := must(colors.Lighten(base, f*3))
		shapes = append(shapes, centered(
			160-f*8,
			radians(f*8),
			sf(18-f, 0.5, 0.5, 0.5, 1, 1),
			must(colors.WithAlpha(light, 0.9-f*0.03)),
			must(colors.Lighten(base, f*2)),
			2,
		))
	}
	return shapes
}

func bloomingFlower() []Shape {
	petal := func(m float64) Superformula { return sf(m, 1, 4, 4, 1, 1) }
	return []Shape{
		centered(94, 0.3316125578789226, petal(6), "rgba(244, 114, 182, 0.5)", "#F472B6", 1),
		centered(94, 0.6632251157578452, petal(4), "rgba(236, 72, 153, 0.56)", "#EC4899", 1),
		centered(90, 1.413716694115407, petal(5), "rgba(219, 39, 119, 0.62)", "#DB2777", 1),
		centered(90, 2.199114857512855, petal(6), "rgba(190, 24, 93, 0.68)", "#BE185D", 1),
		centered(72, 0.715584993317675, petal(15), "rgba(159, 18, 57, 0.74)", "#9F1239", 1),
		centered(94, 0.8552113334772214, petal(8), "rgba(136, 19, 55, 0.8)", "#881337", 1),
		centered(67, 1.8151424220741028, petal(9), "rgba(112, 26, 71, 0.86)", "#701A47", 1),
		centered(67, 3.6477381366681487, petal(9), "rgba(93, 26, 87, 0.82)", "#5D1A57", 1),
		centered(18, 1.8325957145940461, circle, "rgba(234, 179, 8, 0.82)", "#a96800", 4),
		centered(10, 0.3316125578789226, circle, "rgba(255, 217, 61, 0.5)", "#F472B6", 0),
	}
}

func clockworkGears() []Shape {
	gears := []struct {
		teeth, size float64
		color       string
		rotation    float64
	}{
		{12, 140, "#6B7280", 0},
		{10, 110, "#9CA3AF", 18},
		{8, 85, "#D1D5DB", 22.5},
		{6, 60, "#E5E7EB", 30},
	}
	shapes := make([]Shape, 0, len(gears))
	for _, g := range gears {
		shapes = append(shapes, centered(
			g.size,
			radians(g.rotation),
			sf(g.teeth, 10, 10, 10, 1, 1),
			must(colors.WithAlpha(g.color, 0.7)),
			"#374151",
			3,
		))
	}
	return shapes
}

func rainbowBurst() []Shape {
	rainbow := []string{"#FF0000", "#FF7F00", "#FFFF00", "#00FF00", "#0000FF", "#4B0082", "#9400D3"}
	shapes := make([]Shape, 0, len(rainbow))
	for i, c := range rainbow {
		f := float64(i)
		shapes = append(shapes, centered(
			150-f*15,
			radians(f*25),
			sf(12, 0.5, 0.5, 0.5, 1, 1),
			must(colors.WithAlpha(c, 0.6)),
			c,
			2,
		))
	}
	return shapes
}

func geometricMandala() []Shape {
	layers := []struct {
		curve    Superformula
		size     float64
		color    string
		rotation float64
	}{
		{sf(8, 0.5, 0.5, 0.5, 1, 1), 150, "#6366F1", 0},
		{sf(8, 2, 2, 2, 1, 1), 120, "#8B5CF6", 22.5},
		{sf(8, 4, 4, 4, 1, 1), 90, "#A78BFA", 0},
		{sf(12, 1, 4, 4, 1, 1), 65, "#C4B5FD", 15},
		{sf(4, 2, 5, 5, 1, 1), 40, "#DDD6FE", 0},
	}
	shapes := make([]Shape, 0, len(layers))
	for _, l := range layers {
		shapes = append(shapes, centered(
			l.size,
			radians(l.rotation),
			l.curve,
			must(colors.WithAlpha(l.color, 0.7)),
			l.color,
			2,
		))
	}
	return shapes
}

func nestedSquares() []Shape {
	const (
		startRadius = 188.0
		minRadius   = 25.0
		ratio       = 167.0 / 188.0
	)
	step := radians(80)
	from := [3]float64{70, 130, 180}
	to := [3]float64{220, 220, 220}
	total := math.Ceil(math.Log(minRadius/startRadius) / math.Log(ratio))

	var shapes []Shape
	radius, rotation := startRadius, 0.0
	for i := 0; radius >= minRadius; i++ {
		t := float64(i) / (total - 1)
		var ch [3]int
		for j := range ch {
			ch[j] = int(math.Round(from[j] + (to[j]-from[j])*t))
		}
		shapes = append(shapes, centered(
			math.Round(radius),
			rotation,
			sf(4, 11, 11, 11, 1, 1),
			fmt.Sprintf("rgb(%d, %d, %d)", ch[0], ch[1], ch[2]),
			"#000000",
			2,
		))
		radius *= ratio
		rotation += step
	}
	return append(shapes, centered(186, 0, sf(8, 0.5, 0.5, 0.5, 1, 0.6), "rgba(255, 217, 61, 1)", "#d3d7da", 3))
}

func geminEye() []Shape {
	at := func(cx, cy float64, s Shape) Shape {
		s.CX, s.CY = cx, cy
		return s
	}
	return []Shape{
		centered(187, 0, sf(4, 0.6, 0.6, 0.7, 1, 1), "rgba(255, 217, 61, 1)", "#fec700", 6),
		centered(186, 0, sf(2, 0.5, 0.5, 0.5, 1, 1), "rgba(59, 130, 246, 0.82)", "#000000", 2),
		centered(157, 0, sf(2, 0.5, 0.5, 0.5, 1, 1), "rgba(255, 255, 255, 0.72)", "#000000", 1),
		centered(46, 0, circle, "rgba(255, 255, 255, 1)", "#000000", 1),
		centered(38, 0, circle, "rgba(88, 52, 0, 1)", "#000000", 1),
		centered(25, 0, circle, "rgba(0, 0, 0, 0.82)", "#000000", 2),
		at(175, 172, centered(10, 0, circle, "rgba(255, 255, 255, 1)", "#000000", 1)),
		at(73, 305, centered(41, math.Pi/2, sf(4, 0.6, 0.7, 0.8, 1, 1), "rgba(255, 217, 61, 1)", "#fec700", 3)),
		at(68, 52, centered(23, 0, sf(4, 0.6, 0.6, 0.6, 1, 1), "rgba(255, 217, 61, 1)", "#fec700", 2)),
	}
}

func celticRosette() []Shape {
	knot := func(s Shape, k Knot) Shape {
		s.Knot = &k
		return s
	}

	disc := centered(176, 0, circle, "rgba(20, 184, 166, 0.25)", "#0D9488", 2)
	disc.Variation = VariationLight

	outer := knot(centered(150, 0, circle, NoFill, "#0F766E", 4),
		Knot{Lobes: 5, Turns: 2, Amplitude: 0.35, BaseRadius: 0.65})
	outer.Variation = VariationMedium

	inner := knot(centered(110, radians(18), circle, "rgba(245, 158, 11, 0.35)", "#B45309", 2),
		Knot{Lobes: 7, Turns: 3, Amplitude: 0.25, BaseRadius: 0.75})
	inner.Watercolor = &Watercolor{Intensity: 40}

	core := centered(42, 0, sf(6, 1, 4, 4, 1, 1), "#FDE68A", "#92400E", 1)
	core.Gradient = &Gradient{EdgeColor: "#F59E0B"}

	return []Shape{disc, outer, inner, core}
}
