package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gielis/iconmaker/internal/document"
)

func shape(radius float64) document.Shape {
	return document.Shape{
		CX:           document.CanvasCenter,
		CY:           document.CanvasCenter,
		Radius:       radius,
		Superformula: document.Superformula{M: 4, N1: 2, N2: 2, N3: 2, A: 1, B: 1},
		FillColor:    "#FF6B6B",
		StrokeColor:  "#000000",
		StrokeWidth:  1,
	}
}

func radii(e *Editor) []float64 {
	var out []float64
	for _, s := range e.Shapes() {
		out = append(out, s.Radius)
	}
	return out
}

func filled(n int) *Editor {
	e := New()
	for i := 1; i <= n; i++ {
		e.Add(shape(float64(i * 10)))
	}
	return e
}

func TestAddSelectsNewShape(t *testing.T) {
	e := New()
	assert.Equal(t, -1, e.Selected())
	assert.Equal(t, 0, e.Add(shape(10)))
	assert.Equal(t, 1, e.Add(shape(20)))
	assert.Equal(t, 1, e.Selected())
	assert.Equal(t, []float64{10, 20}, radii(e))
}

func TestShapesAreCopies(t *testing.T) {
	e := filled(1)
	got := e.Shapes()
	got[0].Radius = 999
	assert.Equal(t, []float64{10}, radii(e))
}

func TestDeleteSelectionFixup(t *testing.T) {
	cases := []struct {
		name     string
		selected int
		del      int
		want     int
	}{
		{"selected deleted picks previous", 2, 2, 1},
		{"first selected deleted picks new first", 0, 0, 0},
		{"below selection shifts down", 3, 1, 2},
		{"above selection keeps index", 1, 3, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := filled(4)
			require.NoError(t, e.Select(tc.selected))
			require.NoError(t, e.Delete(tc.del))
			assert.Equal(t, tc.want, e.Selected())
			assert.Equal(t, 3, e.Len())
		})
	}

	e := filled(1)
	require.NoError(t, e.Delete(0))
	assert.Equal(t, -1, e.Selected())

	assert.ErrorIs(t, e.Delete(0), ErrIndexOutOfRange)
}

func TestMoveKeepsSelectionOnSameShape(t *testing.T) {
	for _, tc := range []struct{ sel, from, to int }{
		{0, 0, 3}, {3, 0, 3}, {1, 0, 3}, {2, 3, 0}, {0, 3, 0}, {1, 2, 2},
	} {
		e := filled(4)
		require.NoError(t, e.Select(tc.sel))
		want := e.Shapes()[tc.sel].Radius

		require.NoError(t, e.Move(tc.from, tc.to))
		assert.Equal(t, want, e.Shapes()[e.Selected()].Radius, "%+v", tc)
	}

	e := filled(4)
	require.NoError(t, e.Move(0, 2))
	assert.Equal(t, []float64{20, 30, 10, 40}, radii(e))
	require.NoError(t, e.Move(3, 0))
	assert.Equal(t, []float64{40, 20, 30, 10}, radii(e))
	assert.ErrorIs(t, e.Move(0, 4), ErrIndexOutOfRange)
}

func TestUpdateTranslateSelect(t *testing.T) {
	e := filled(2)
	require.NoError(t, e.Update(0, shape(55)))
	assert.Equal(t, []float64{55, 20}, radii(e))
	assert.ErrorIs(t, e.Update(5, shape(1)), ErrIndexOutOfRange)

	require.NoError(t, e.Translate(1, 10, -5))
	got := e.Shapes()[1]
	assert.Equal(t, 202.0, got.CX)
	assert.Equal(t, 187.0, got.CY)

	require.NoError(t, e.Select(-1))
	assert.Equal(t, -1, e.Selected())
	assert.Error(t, e.Select(2))

	e.Clear()
	assert.Zero(t, e.Len())
	assert.Equal(t, -1, e.Selected())
}

func TestSelectAt(t *testing.T) {
	e := filled(3) // radii 10, 20, 30, all centered
	require.NoError(t, e.Select(-1))

	i, ok := e.SelectAt(192+25, 192)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 2, e.Selected())

	require.NoError(t, e.Move(2, 0)) // the largest now paints first
	assert.Equal(t, 2, e.HitTest(192, 192))

	_, ok = e.SelectAt(0, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, e.Selected())

	b := e.SelectionBounds()
	assert.InDelta(t, 60.0, b.Width, 1e-6)
}

func TestDemosAndPresets(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadDemo("rainbowBurst"))
	assert.Equal(t, 7, e.Len())
	assert.Equal(t, 6, e.Selected())

	err := e.LoadDemo("nope")
	assert.ErrorIs(t, err, ErrUnknownDemo)
	assert.Equal(t, 7, e.Len())

	require.NoError(t, e.ApplyPreset("gear", document.Shape{}))
	assert.Equal(t, 8.0, e.Shapes()[6].Superformula.M)
	assert.ErrorIs(t, e.ApplyPreset("blob", document.Shape{}), ErrUnknownPreset)

	require.NoError(t, e.Select(-1))
	assert.ErrorIs(t, e.ApplyPreset("gear", document.Shape{}), ErrNoSelection)

	empty := New()
	require.NoError(t, empty.ApplyPreset("squircle", shape(50)))
	require.Equal(t, 1, empty.Len())
	assert.Equal(t, 188.0, empty.Shapes()[0].Radius)
	assert.Equal(t, 0, empty.Selected())

	e.RandomDemo(5)
	first := e.Shapes()
	e.RandomDemo(5)
	assert.Equal(t, first, e.Shapes())
	assert.Equal(t, len(first)-1, e.Selected())
}

func TestImportLeavesStateOnFailure(t *testing.T) {
	e := filled(2)
	require.NoError(t, e.Select(1))

	err := e.Import([]byte(`{"version":"1.0"}`))
	var ierr *document.ImportError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, document.SchemaError, ierr.Kind)
	assert.Equal(t, []float64{10, 20}, radii(e))
	assert.Equal(t, 1, e.Selected())

	require.Error(t, e.Import([]byte(`{"shapes":[{"radius":5},{"radius":"x"}]}`)))
	assert.Equal(t, []float64{10, 20}, radii(e), "partially valid documents are not applied")

	require.NoError(t, e.Import([]byte(`{"shapes":[{"radius":5}]}`)))
	assert.Equal(t, []float64{5}, radii(e))
	assert.Equal(t, -1, e.Selected())
}

func TestExportImportRoundTrip(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadDemo("celticRosette"))
	data, err := e.Export()
	require.NoError(t, err)

	other := New()
	require.NoError(t, other.Import(data))
	assert.Equal(t, e.Shapes(), other.Shapes())

	cmds := other.DrawCommands(60)
	assert.NotEmpty(t, cmds)

	other.Load(document.New([]document.Shape{shape(1)}))
	assert.Equal(t, []float64{1}, radii(other))
}
