package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

const (
	// FormatVersion is written into every exported document.
	FormatVersion = "1.0"

	// CanvasSize is the native square canvas in canvas units.
	CanvasSize = 384
	// CanvasCenter is the center coordinate of the native canvas.
	CanvasCenter = CanvasSize / 2

	// NoFill is the FillColor value meaning the shape is not filled.
	NoFill = "none"
)

// Document is the persisted form of an icon: an ordered list of shapes,
// painted back to front.
type Document struct {
	Version string  `json:"version"`
	Shapes  []Shape `json:"shapes"`
}

// New returns a document holding shapes at the current format version.
func New(shapes []Shape) *Document {
	if shapes == nil {
		shapes = []Shape{}
	}
	return &Document{Version: FormatVersion, Shapes: shapes}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	shapes := make([]Shape, len(d.Shapes))
	for i, s := range d.Shapes {
		shapes[i] = s.Clone()
	}
	return &Document{Version: d.Version, Shapes: shapes}
}

// Curve is the path definition of a shape: either Superformula or Knot.
type Curve interface {
	isCurve()
}

// Superformula holds Gielis' six parameters.
type Superformula struct {
	M  float64
	N1 float64
	N2 float64
	N3 float64
	A  float64
	B  float64
}

func (Superformula) isCurve() {}

// Knot holds the parameters of a rosette/knot curve.
type Knot struct {
	Lobes      float64
	Turns      float64
	Amplitude  float64
	BaseRadius float64
}

func (Knot) isCurve() {}

// VariationMode names an amount of organic, hand-drawn perturbation.
type VariationMode string

const (
	VariationNone   VariationMode = "none"
	VariationLight  VariationMode = "light"
	VariationMedium VariationMode = "medium"
	VariationHeavy  VariationMode = "heavy"
	VariationWild   VariationMode = "wild"
)

var variationAmounts = map[VariationMode]float64{
	"":              0,
	VariationNone:   0,
	VariationLight:  0.03,
	VariationMedium: 0.06,
	VariationHeavy:  0.1,
	VariationWild:   0.16,
}

// Amount returns the variation amount in [0, 1). Unknown modes yield 0.
func (v VariationMode) Amount() float64 {
	return variationAmounts[v]
}

// Valid reports whether v is a known mode. The empty mode means none.
func (v VariationMode) Valid() bool {
	_, ok := variationAmounts[v]
	return ok
}

// Gradient turns the fill into a radial gradient from FillColor at the
// center to EdgeColor.
type Gradient struct {
	EdgeColor string
}

// Watercolor turns the fill into layered translucent washes.
// Intensity ranges over [0, 100].
type Watercolor struct {
	Intensity float64
}

// Shape is one layer of an icon.
type Shape struct {
	CX       float64
	CY       float64
	Radius   float64
	Rotation float64 // radians

	// Superformula is always kept, even when Knot is active, so documents
	// round-trip unchanged.
	Superformula Superformula
	Knot         *Knot

	FillColor   string
	StrokeColor string
	StrokeWidth float64
	Gradient    *Gradient
	Watercolor  *Watercolor
	Variation   VariationMode

	// Extra holds unknown JSON fields and the fields of switched-off modes,
	// preserved on export.
	Extra map[string]json.RawMessage
}

// Curve returns the active curve definition. Knot mode is selected by a
// knot with at least one lobe.
func (s Shape) Curve() Curve {
	if s.Knot != nil && s.Knot.Lobes > 0 {
		return *s.Knot
	}
	return s.Superformula
}

// HasFill reports whether the shape is filled.
func (s Shape) HasFill() bool {
	return s.FillColor != "" && s.FillColor != NoFill
}

// HasStroke reports whether the shape is outlined.
func (s Shape) HasStroke() bool {
	return s.StrokeWidth > 0
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	c := s
	if s.Knot != nil {
		k := *s.Knot
		c.Knot = &k
	}
	if s.Gradient != nil {
		g := *s.Gradient
		c.Gradient = &g
	}
	if s.Watercolor != nil {
		w := *s.Watercolor
		c.Watercolor = &w
	}
	if s.Extra != nil {
		c.Extra = maps.Clone(s.Extra)
	}
	return c
}

var (
	errNegativeRadius = errors.New("radius must not be negative")
	errNegativeStroke = errors.New("strokeWidth must not be negative")
)

// Validate checks the value ranges a renderer relies on.
func (s Shape) Validate() error {
	if s.Radius < 0 {
		return errNegativeRadius
	}
	if s.StrokeWidth < 0 {
		return errNegativeStroke
	}
	if !s.Variation.Valid() {
		return fmt.Errorf("unknown variation mode %q", s.Variation)
	}
	if s.Knot != nil {
		if s.Knot.Lobes < 0 {
			return fmt.Errorf("knotLobes must not be negative, got %v", s.Knot.Lobes)
		}
		if s.Knot.Lobes > 0 && s.Knot.Turns < 1 {
			return fmt.Errorf("knotTurns must be at least 1, got %v", s.Knot.Turns)
		}
	}
	if s.Watercolor != nil && (s.Watercolor.Intensity < 0 || s.Watercolor.Intensity > 100) {
		return fmt.Errorf("watercolorIntensity must be within [0, 100], got %v", s.Watercolor.Intensity)
	}
	return nil
}
