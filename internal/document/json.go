package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// shapeJSON is the flat wire form of a Shape, compatible with documents
// written by the browser editor.
type shapeJSON struct {
	CX       float64 `json:"cx"`
	CY       float64 `json:"cy"`
	Radius   float64 `json:"radius"`
	Rotation float64 `json:"rotation"`
	M        float64 `json:"m"`
	N1       float64 `json:"n1"`
	N2       float64 `json:"n2"`
	N3       float64 `json:"n3"`
	A        float64 `json:"a"`
	B        float64 `json:"b"`

	KnotLobes      *float64 `json:"knotLobes,omitempty"`
	KnotTurns      *float64 `json:"knotTurns,omitempty"`
	KnotAmplitude  *float64 `json:"knotAmplitude,omitempty"`
	KnotBaseRadius *float64 `json:"knotBaseRadius,omitempty"`

	FillColor           string        `json:"fillColor"`
	StrokeColor         string        `json:"strokeColor"`
	StrokeWidth         float64       `json:"strokeWidth"`
	GradientMode        bool          `json:"gradientMode,omitempty"`
	GradientEdgeColor   string        `json:"gradientEdgeColor,omitempty"`
	WatercolorMode      bool          `json:"watercolorMode,omitempty"`
	WatercolorIntensity float64       `json:"watercolorIntensity,omitempty"`
	Variation           VariationMode `json:"variation,omitempty"`
}

var shapeKeys = map[string]bool{
	"cx": true, "cy": true, "radius": true, "rotation": true,
	"m": true, "n1": true, "n2": true, "n3": true, "a": true, "b": true,
	"knotLobes": true, "knotTurns": true, "knotAmplitude": true, "knotBaseRadius": true,
	"fillColor": true, "strokeColor": true, "strokeWidth": true,
	"gradientMode": true, "gradientEdgeColor": true,
	"watercolorMode": true, "watercolorIntensity": true,
	"variation": true,
}

var (
	knotKeys       = []string{"knotLobes", "knotTurns", "knotAmplitude", "knotBaseRadius"}
	gradientKeys   = []string{"gradientMode", "gradientEdgeColor"}
	watercolorKeys = []string{"watercolorMode", "watercolorIntensity"}
)

// modeModeled reports whether key belongs to an optional mode that s holds
// in its typed fields. Keys of other modes travel through Extra untouched.
func (s Shape) modeModeled(key string) bool {
	switch key {
	case "knotLobes", "knotTurns", "knotAmplitude", "knotBaseRadius":
		return s.Knot != nil
	case "gradientMode", "gradientEdgeColor":
		return s.Gradient != nil
	case "watercolorMode", "watercolorIntensity":
		return s.Watercolor != nil
	}
	return true
}

// MarshalJSON writes the flat wire form and merges Extra back in. Inert
// mode fields kept in Extra are written only while the mode is unset.
func (s Shape) MarshalJSON() ([]byte, error) {
	w := shapeJSON{
		CX: s.CX, CY: s.CY, Radius: s.Radius, Rotation: s.Rotation,
		M: s.Superformula.M, N1: s.Superformula.N1, N2: s.Superformula.N2,
		N3: s.Superformula.N3, A: s.Superformula.A, B: s.Superformula.B,
		FillColor:   s.FillColor,
		StrokeColor: s.StrokeColor,
		StrokeWidth: s.StrokeWidth,
		Variation:   s.Variation,
	}
	if k := s.Knot; k != nil {
		w.KnotLobes, w.KnotTurns = &k.Lobes, &k.Turns
		w.KnotAmplitude, w.KnotBaseRadius = &k.Amplitude, &k.BaseRadius
	}
	if s.Gradient != nil {
		w.GradientMode = true
		w.GradientEdgeColor = s.Gradient.EdgeColor
	}
	if s.Watercolor != nil {
		w.WatercolorMode = true
		w.WatercolorIntensity = s.Watercolor.Intensity
	}

	data, err := json.Marshal(w)
	if err != nil || len(s.Extra) == 0 {
		return data, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if shapeKeys[k] && s.modeModeled(k) {
			continue
		}
		merged[k] = v
	}
	return json.Marshal(merged)
}

// UnmarshalJSON reads the flat wire form. Unknown fields, and the fields of
// modes that are switched off, are kept verbatim in Extra.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var w shapeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*s = Shape{
		CX: w.CX, CY: w.CY, Radius: w.Radius, Rotation: w.Rotation,
		Superformula: Superformula{M: w.M, N1: w.N1, N2: w.N2, N3: w.N3, A: w.A, B: w.B},
		FillColor:    w.FillColor,
		StrokeColor:  w.StrokeColor,
		StrokeWidth:  w.StrokeWidth,
		Variation:    w.Variation,
	}

	var inert []string
	if w.KnotLobes != nil && *w.KnotLobes != 0 {
		s.Knot = &Knot{Turns: 1, BaseRadius: 1}
		setIf(&s.Knot.Lobes, w.KnotLobes)
		setIf(&s.Knot.Turns, w.KnotTurns)
		setIf(&s.Knot.Amplitude, w.KnotAmplitude)
		setIf(&s.Knot.BaseRadius, w.KnotBaseRadius)
	} else {
		inert = append(inert, knotKeys...)
	}
	if w.GradientMode {
		s.Gradient = &Gradient{EdgeColor: w.GradientEdgeColor}
	} else {
		inert = append(inert, gradientKeys...)
	}
	if w.WatercolorMode {
		s.Watercolor = &Watercolor{Intensity: w.WatercolorIntensity}
	} else {
		inert = append(inert, watercolorKeys...)
	}

	for k, v := range raw {
		if !shapeKeys[k] {
			if err := s.keep(k, v); err != nil {
				return err
			}
		}
	}
	for _, k := range inert {
		if v, ok := raw[k]; ok {
			if err := s.keep(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Shape) keep(key string, v json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return err
	}
	if s.Extra == nil {
		s.Extra = make(map[string]json.RawMessage)
	}
	s.Extra[key] = json.RawMessage(buf.Bytes())
	return nil
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// MarshalIndent encodes the document the way the editor exports it.
func (d *Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Parse decodes and validates an imported document. Failures are returned
// as *ImportError; nothing is partially applied.
func Parse(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ImportError{Kind: SchemaError, Msg: "document must be a JSON object", Err: err}
		}
		return nil, &ImportError{Kind: ParseError, Msg: "invalid JSON", Err: err}
	}

	rawShapes, ok := top["shapes"]
	if !ok || bytes.Equal(bytes.TrimSpace(rawShapes), []byte("null")) {
		return nil, &ImportError{Kind: SchemaError, Msg: "missing shapes", Err: ErrMissingShapes}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(rawShapes, &items); err != nil {
		return nil, &ImportError{Kind: SchemaError, Msg: "shapes is not an array", Err: ErrMissingShapes}
	}

	doc := New(make([]Shape, 0, len(items)))
	if v, ok := top["version"]; ok {
		if err := json.Unmarshal(v, &doc.Version); err != nil {
			return nil, &ImportError{Kind: SchemaError, Msg: "version must be a string", Err: err}
		}
	}

	for i, item := range items {
		var s Shape
		if err := json.Unmarshal(item, &s); err != nil {
			return nil, &ImportError{Kind: SchemaError, Msg: fmt.Sprintf("shape %d", i), Err: err}
		}
		if err := s.Validate(); err != nil {
			return nil, &ImportError{Kind: SchemaError, Msg: fmt.Sprintf("shape %d", i), Err: err}
		}
		doc.Shapes = append(doc.Shapes, s)
	}
	return doc, nil
}
