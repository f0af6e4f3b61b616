package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gielis/iconmaker/internal/document"
)

func get(t *testing.T, target string, into any) int {
	t.Helper()
	h := NewHandler()
	r := mux.NewRouter()
	r.HandleFunc("/presets", h.Presets)
	r.HandleFunc("/demos", h.Demos)
	r.HandleFunc("/demos/{key}", h.Demo)
	r.HandleFunc("/palette", h.Palette)
	r.HandleFunc("/palette/random", h.RandomPalette)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if into != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(into))
	}
	return rec.Code
}

func TestPresets(t *testing.T) {
	var presets []presetResponse
	require.Equal(t, http.StatusOK, get(t, "/presets", &presets))
	require.Len(t, presets, 12)
	assert.Equal(t, "circle", presets[0].Name)
	assert.False(t, presets[0].Knot)
	assert.Equal(t, 188.0, presets[2].Shape.Radius, "squircle sets its own radius")
	assert.True(t, presets[11].Knot)
	require.NotNil(t, presets[11].Shape.Knot)
	assert.Equal(t, 5.0, presets[11].Shape.Knot.Lobes)
}

func TestDemos(t *testing.T) {
	var demos []demoResponse
	require.Equal(t, http.StatusOK, get(t, "/demos", &demos))
	require.Len(t, demos, 8)
	assert.Equal(t, "nestedSquares", demos[5].Key)
	assert.Equal(t, 19, demos[5].Layers)

	var doc document.Document
	require.Equal(t, http.StatusOK, get(t, "/demos/celticRosette", &doc))
	assert.Equal(t, document.FormatVersion, doc.Version)
	d, _ := document.LookupDemo("celticRosette")
	assert.Equal(t, d.Shapes(), doc.Shapes)

	assert.Equal(t, http.StatusNotFound, get(t, "/demos/nope", nil))
}

func TestPalettes(t *testing.T) {
	var swatches []string
	require.Equal(t, http.StatusOK, get(t, "/palette", &swatches))
	assert.Len(t, swatches, 42)

	var a, b paletteResponse
	require.Equal(t, http.StatusOK, get(t, "/palette/random?seed=7", &a))
	require.Equal(t, http.StatusOK, get(t, "/palette/random?seed=7", &b))
	assert.Equal(t, uint32(7), a.Seed)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a.Colors)

	var drawn paletteResponse
	require.Equal(t, http.StatusOK, get(t, "/palette/random", &drawn))
	assert.NotEmpty(t, drawn.Colors)

	assert.Equal(t, http.StatusBadRequest, get(t, "/palette/random?seed=-1", nil))
}
