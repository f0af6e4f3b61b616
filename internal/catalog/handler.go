// Package catalog serves the read-only building blocks of the editor:
// curve presets, demo compositions and color palettes.
package catalog

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gielis/iconmaker/internal/colors"
	"github.com/gielis/iconmaker/internal/document"
)

type presetResponse struct {
	Name  string         `json:"name"`
	Knot  bool           `json:"knot"`
	Shape document.Shape `json:"shape"`
}

type demoResponse struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Layers int    `json:"layers"`
}

type paletteResponse struct {
	Seed   uint32   `json:"seed"`
	Colors []string `json:"colors"`
}

// template is what preset previews are applied to.
var template = document.Shape{
	CX:          document.CanvasCenter,
	CY:          document.CanvasCenter,
	Radius:      100,
	FillColor:   colors.DefaultPalette[0],
	StrokeColor: "#000000",
	StrokeWidth: 2,
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Presets handles GET /presets.
func (h *Handler) Presets(w http.ResponseWriter, r *http.Request) {
	presets := document.Presets()
	out := make([]presetResponse, len(presets))
	for i, p := range presets {
		out[i] = presetResponse{Name: p.Name, Knot: p.Knot != nil, Shape: p.Apply(template)}
	}
	writeJSON(w, http.StatusOK, out)
}

// Demos handles GET /demos.
func (h *Handler) Demos(w http.ResponseWriter, r *http.Request) {
	demos := document.Demos()
	out := make([]demoResponse, len(demos))
	for i, d := range demos {
		out[i] = demoResponse{Key: d.Key, Name: d.Name, Layers: len(d.Shapes())}
	}
	writeJSON(w, http.StatusOK, out)
}

// Demo handles GET /demos/{key} with the demo as an interchange document.
func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	d, ok := document.LookupDemo(mux.Vars(r)["key"])
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown demo"})
		return
	}
	writeJSON(w, http.StatusOK, document.New(d.Shapes()))
}

// Palette handles GET /palette.
func (h *Handler) Palette(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, colors.DefaultPalette)
}

// RandomPalette handles GET /palette/random. Without ?seed= a seed is
// drawn and echoed back so the palette can be reproduced.
func (h *Handler) RandomPalette(w http.ResponseWriter, r *http.Request) {
	seed := rand.Uint32()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "seed must be an unsigned 32-bit integer"})
			return
		}
		seed = uint32(n)
	}
	writeJSON(w, http.StatusOK, paletteResponse{Seed: seed, Colors: colors.RandomPalette(seed)})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
