package document

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gielis/iconmaker/internal/colors"
)

func twoShapeDocument() *Document {
	star := centered(120, 0.4, sf(5, 0.5, 0.5, 0.5, 1, 1), "rgba(255, 107, 107, 0.8)", "#FF6B6B", 2)
	star.Variation = VariationHeavy
	star.Gradient = &Gradient{EdgeColor: "#4D96FF"}

	knot := centered(90, 0, circle, NoFill, "#000000", 0)
	knot.Knot = &Knot{Lobes: 5, Turns: 2, Amplitude: 0.35, BaseRadius: 0.65}
	knot.Watercolor = &Watercolor{Intensity: 55}
	knot.Extra = map[string]json.RawMessage{"label": json.RawMessage(`"rosette"`)}

	return New([]Shape{star, knot})
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := twoShapeDocument()

	data, err := doc.MarshalIndent()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"version\": \"1.0\""))

	got, err := Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestShapeWireFormat(t *testing.T) {
	data, err := json.Marshal(twoShapeDocument().Shapes[1])
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 5.0, m["knotLobes"])
	assert.Equal(t, 0.65, m["knotBaseRadius"])
	assert.Equal(t, true, m["watercolorMode"])
	assert.Equal(t, 55.0, m["watercolorIntensity"])
	assert.Equal(t, "none", m["fillColor"])
	assert.Equal(t, "rosette", m["label"])
	assert.NotContains(t, m, "gradientMode")
	assert.NotContains(t, m, "variation")
}

func TestParsePreservesUnknownFields(t *testing.T) {
	in := `{"version":"1.0","shapes":[{"cx":10,"cy":20,"radius":30,"rotation":0,
		"m":4,"n1":2,"n2":2,"n3":2,"a":1,"b":1,"fillColor":"#fff","strokeColor":"#000",
		"strokeWidth":1,"meta": { "tags": ["a", "b"] },"locked":true}]}`

	doc, err := Parse([]byte(in))
	require.NoError(t, err)
	require.Len(t, doc.Shapes, 1)
	assert.Equal(t, json.RawMessage(`{"tags":["a","b"]}`), doc.Shapes[0].Extra["meta"])
	assert.Equal(t, json.RawMessage(`true`), doc.Shapes[0].Extra["locked"])

	out, err := json.Marshal(doc.Shapes[0])
	require.NoError(t, err)
	assert.Contains(t, string(out), `"meta":{"tags":["a","b"]}`)
	assert.Contains(t, string(out), `"locked":true`)
}

func TestParseKeepsInertModeFields(t *testing.T) {
	in := `{"cx":192,"cy":192,"radius":100,"rotation":0,"m":4,"n1":2,"n2":2,"n3":2,"a":1,"b":1,` +
		`"fillColor":"#FF6B6B","strokeColor":"#000000","strokeWidth":2,` +
		`"gradientMode":false,"gradientEdgeColor":"#00ff00",` +
		`"watercolorMode":false,"watercolorIntensity":40,"knotLobes":0}`

	doc, err := Parse([]byte(`{"version":"1.0","shapes":[` + in + `]}`))
	require.NoError(t, err)
	s := doc.Shapes[0]
	assert.Nil(t, s.Knot)
	assert.Nil(t, s.Gradient)
	assert.Nil(t, s.Watercolor)
	assert.Equal(t, s.Superformula, s.Curve())

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))

	again, err := Parse([]byte(`{"shapes":[` + string(out) + `]}`))
	require.NoError(t, err)
	if diff := cmp.Diff(s, again.Shapes[0]); diff != "" {
		t.Fatalf("second import mismatch (-want +got):\n%s", diff)
	}
}

func TestEnabledModeReplacesInertFields(t *testing.T) {
	doc, err := Parse([]byte(`{"shapes":[{"radius":10,"fillColor":"#fff",` +
		`"gradientMode":false,"gradientEdgeColor":"#00ff00","knotLobes":0,"knotTurns":3}]}`))
	require.NoError(t, err)
	s := doc.Shapes[0]
	s.Gradient = &Gradient{}
	s.Knot = &Knot{Lobes: 4, Turns: 1, BaseRadius: 1}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, true, m["gradientMode"])
	assert.NotContains(t, m, "gradientEdgeColor")
	assert.Equal(t, 4.0, m["knotLobes"])
	assert.Equal(t, 1.0, m["knotTurns"])
}

func TestParseKnotDefaults(t *testing.T) {
	doc, err := Parse([]byte(`{"shapes":[{"radius":50,"knotLobes":3}]}`))
	require.NoError(t, err)
	s := doc.Shapes[0]
	require.NotNil(t, s.Knot)
	assert.Equal(t, Knot{Lobes: 3, Turns: 1, Amplitude: 0, BaseRadius: 1}, *s.Knot)
	assert.Equal(t, FormatVersion, doc.Version)
	assert.Equal(t, *s.Knot, s.Curve())
}

func TestCurveSelection(t *testing.T) {
	s := centered(50, 0, sf(6, 1, 4, 4, 1, 1), "#fff", "#000", 1)
	assert.Equal(t, s.Superformula, s.Curve())

	s.Knot = &Knot{Lobes: 0, Turns: 1, BaseRadius: 1}
	assert.Equal(t, s.Superformula, s.Curve(), "zero lobes keep the superformula")

	s.Knot.Lobes = 4
	assert.Equal(t, *s.Knot, s.Curve())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		kind    ErrorKind
		missing bool
	}{
		{"syntax", `{"shapes": [`, ParseError, false},
		{"not json", `shapes`, ParseError, false},
		{"array root", `[1, 2]`, SchemaError, false},
		{"no shapes", `{"version":"1.0"}`, SchemaError, true},
		{"null shapes", `{"shapes":null}`, SchemaError, true},
		{"shapes object", `{"shapes":{}}`, SchemaError, true},
		{"bad field type", `{"shapes":[{"cx":"left"}]}`, SchemaError, false},
		{"bad variation", `{"shapes":[{"variation":"extreme"}]}`, SchemaError, false},
		{"negative stroke", `{"shapes":[{"strokeWidth":-1}]}`, SchemaError, false},
		{"knot without turns", `{"shapes":[{"knotLobes":3,"knotTurns":0}]}`, SchemaError, false},
		{"version number", `{"version":1,"shapes":[]}`, SchemaError, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse([]byte(tc.in))
			assert.Nil(t, doc)
			var ierr *ImportError
			require.True(t, errors.As(err, &ierr), "got %v", err)
			assert.Equal(t, tc.kind, ierr.Kind)
			assert.Equal(t, tc.missing, errors.Is(err, ErrMissingShapes))
		})
	}
}

func TestParseEmptyShapes(t *testing.T) {
	doc, err := Parse([]byte(`{"version":"1.0","shapes":[]}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Shapes)
}

func TestCloneIsDeep(t *testing.T) {
	orig := twoShapeDocument().Shapes[1]
	c := orig.Clone()
	c.Knot.Lobes = 9
	c.Watercolor.Intensity = 1
	c.Extra["label"] = json.RawMessage(`"changed"`)

	assert.Equal(t, 5.0, orig.Knot.Lobes)
	assert.Equal(t, 55.0, orig.Watercolor.Intensity)
	assert.Equal(t, json.RawMessage(`"rosette"`), orig.Extra["label"])
}

func TestVariationAmounts(t *testing.T) {
	assert.Equal(t, 0.0, VariationMode("").Amount())
	assert.Equal(t, 0.0, VariationNone.Amount())
	assert.Equal(t, 0.03, VariationLight.Amount())
	assert.Equal(t, 0.06, VariationMedium.Amount())
	assert.Equal(t, 0.1, VariationHeavy.Amount())
	assert.Equal(t, 0.16, VariationWild.Amount())
	assert.False(t, VariationMode("extreme").Valid())
}

func TestPresets(t *testing.T) {
	all := Presets()
	require.Len(t, all, 12)
	assert.Equal(t, "circle", all[0].Name)

	shape := centered(100, 0, sf(6, 1, 4, 4, 1, 1), "#fff", "#000", 1)
	shape.Knot = &Knot{Lobes: 3, Turns: 1, BaseRadius: 1}

	sq, ok := LookupPreset("squircle")
	require.True(t, ok)
	got := sq.Apply(shape)
	assert.Equal(t, 188.0, got.Radius)
	assert.Equal(t, sf(4, 11, 11, 11, 1, 1), got.Superformula)
	assert.Nil(t, got.Knot)
	assert.NotNil(t, shape.Knot, "apply must not modify its input")

	ro, ok := LookupPreset("rosette")
	require.True(t, ok)
	got = ro.Apply(shape)
	assert.Equal(t, 100.0, got.Radius)
	assert.Equal(t, shape.Superformula, got.Superformula)
	assert.Equal(t, Knot{Lobes: 5, Turns: 2, Amplitude: 0.35, BaseRadius: 0.65}, got.Curve())

	ro.Knot.Lobes = 99
	again, _ := LookupPreset("rosette")
	assert.Equal(t, 5.0, again.Knot.Lobes)

	_, ok = LookupPreset("blob")
	assert.False(t, ok)
}

func TestDemos(t *testing.T) {
	all := Demos()
	require.Len(t, all, 8)
	for _, d := range all {
		t.Run(d.Key, func(t *testing.T) {
			shapes := d.Shapes()
			require.NotEmpty(t, shapes)
			for i, s := range shapes {
				require.NoError(t, s.Validate(), "shape %d", i)
				if s.HasFill() {
					_, err := colors.Parse(s.FillColor)
					assert.NoError(t, err, "shape %d fill", i)
				}
				_, err := colors.Parse(s.StrokeColor)
				assert.NoError(t, err, "shape %d stroke", i)
			}
		})
	}

	d, ok := LookupDemo("nestedSquares")
	require.True(t, ok)
	squares := d.Shapes()
	require.Len(t, squares, 19)
	assert.Equal(t, "rgb(70, 130, 180)", squares[0].FillColor)
	assert.Equal(t, "rgb(220, 220, 220)", squares[17].FillColor)
	assert.Equal(t, 186.0, squares[18].Radius)

	star, _ := LookupDemo("descendingStar")
	first := star.Shapes()
	assert.Equal(t, 18.0, first[0].Superformula.M)
	assert.Equal(t, "rgba(255, 107, 107, 0.9)", first[0].FillColor)
	first[0].Radius = 1
	assert.Equal(t, 160.0, star.Shapes()[0].Radius, "demos hand out fresh copies")

	_, ok = LookupDemo("missing")
	assert.False(t, ok)
}

func TestRandomDemo(t *testing.T) {
	assert.Equal(t, RandomDemo(99), RandomDemo(99))

	for seed := uint32(0); seed < 50; seed++ {
		shapes := RandomDemo(seed)
		require.GreaterOrEqual(t, len(shapes), 3)
		require.LessOrEqual(t, len(shapes), 8)
		for _, s := range shapes {
			assert.GreaterOrEqual(t, s.Superformula.M, 3.0)
			assert.LessOrEqual(t, s.Superformula.M, 18.0)
			assert.GreaterOrEqual(t, s.Superformula.N1, 0.5)
			assert.LessOrEqual(t, s.Superformula.N1, 9.5)
			assert.GreaterOrEqual(t, s.Superformula.A, 0.5)
			assert.LessOrEqual(t, s.Superformula.B, 2.5)
			assert.GreaterOrEqual(t, s.Radius, 40.0)
			assert.Less(t, s.Radius, 160.0)
			assert.Contains(t, []float64{0, 1, 2, 3}, s.StrokeWidth)

			fill, err := colors.Parse(s.FillColor)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, fill.A, 0.4)
			assert.Less(t, fill.A, 0.9)
		}
	}
}
