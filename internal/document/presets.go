package document

// Preset is a named curve template applied to an existing shape.
type Preset struct {
	Name         string
	Superformula Superformula
	Knot         *Knot
	// Radius replaces the shape radius when non-zero.
	Radius float64
}

// Apply returns a copy of s with the preset's curve. Superformula presets
// leave knot mode; knot presets keep the superformula fields untouched.
func (p Preset) Apply(s Shape) Shape {
	out := s.Clone()
	if p.Knot != nil {
		k := *p.Knot
		out.Knot = &k
	} else {
		out.Superformula = p.Superformula
		out.Knot = nil
	}
	if p.Radius > 0 {
		out.Radius = p.Radius
	}
	return out
}

func sf(m, n1, n2, n3, a, b float64) Superformula {
	return Superformula{M: m, N1: n1, N2: n2, N3: n3, A: a, B: b}
}

var circle = sf(4, 2, 2, 2, 1, 1)

var presets = []Preset{
	{Name: "circle", Superformula: circle},
	{Name: "square", Superformula: sf(4, 4, 4, 4, 1, 1)},
	{Name: "squircle", Superformula: sf(4, 11, 11, 11, 1, 1), Radius: 188},
	{Name: "star4", Superformula: sf(4, 0.5, 0.5, 0.5, 1, 1)},
	{Name: "star5", Superformula: sf(5, 0.5, 0.5, 0.5, 1, 1)},
	{Name: "star8", Superformula: sf(8, 0.5, 0.5, 0.5, 1, 1)},
	{Name: "flower", Superformula: sf(6, 1, 4, 4, 1, 1)},
	{Name: "gear", Superformula: sf(8, 10, 10, 10, 1, 1)},
	{Name: "diamond", Superformula: sf(4, 1, 1, 1, 1, 1)},
	{Name: "cross", Superformula: sf(4, 100, 100, 100, 1, 1)},
	{Name: "trefoil", Knot: &Knot{Lobes: 3, Turns: 1, Amplitude: 0.3, BaseRadius: 0.7}},
	{Name: "rosette", Knot: &Knot{Lobes: 5, Turns: 2, Amplitude: 0.35, BaseRadius: 0.65}},
}

// Presets returns all presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = p.clone()
	}
	return out
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p.clone(), true
		}
	}
	return Preset{}, false
}

func (p Preset) clone() Preset {
	if p.Knot != nil {
		k := *p.Knot
		p.Knot = &k
	}
	return p
}
