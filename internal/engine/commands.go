package engine

import (
	"encoding/json"

	"github.com/gielis/iconmaker/internal/colors"
	"github.com/gielis/iconmaker/internal/document"
)

// DrawCommand is a single drawing operation for a browser canvas. Clients
// execute the list in order on a 2D context.
type DrawCommand struct {
	Op          string           `json:"op"`              // "fill" or "stroke"
	Shape       int              `json:"shape"`           // index in the shape list, for hit correlation
	Path        []float64        `json:"path"`            // x0, y0, x1, y1, ... closed
	Fill        string           `json:"fill,omitempty"`  // CSS color for solid and watercolor passes
	Gradient    *GradientCommand `json:"gradient,omitempty"`
	Stroke      string           `json:"stroke,omitempty"`
	StrokeWidth float64          `json:"strokeWidth,omitempty"`
}

// GradientCommand mirrors createRadialGradient(cx, cy, 0, cx, cy, r).
type GradientCommand struct {
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	Radius float64 `json:"r"`
	Center string  `json:"center"`
	Edge   string  `json:"edge"`
}

// CompileDrawCommands generates the draw command buffer for shapes in
// painter's order (back to front). Fills with unparseable colors fall back
// to FallbackColor.
func CompileDrawCommands(shapes []document.Shape, steps int) []DrawCommand {
	commands := make([]DrawCommand, 0, len(shapes)*2)
	for i, s := range shapes {
		commands = compileShape(commands, i, s, steps)
	}
	return commands
}

func compileShape(commands []DrawCommand, index int, s document.Shape, steps int) []DrawCommand {
	var outline []float64
	path := func() []float64 {
		if outline == nil {
			outline = flatten(Sample(s, steps))
		}
		return outline
	}

	fill, err := SelectFill(s, steps)
	if err != nil {
		fill = Fill{Kind: FillSolid, Color: FallbackColor}
	}

	switch fill.Kind {
	case FillSolid:
		commands = append(commands, DrawCommand{Op: "fill", Shape: index, Path: path(), Fill: fill.Color.CSS()})
	case FillGradient:
		g := fill.Gradient
		commands = append(commands, DrawCommand{Op: "fill", Shape: index, Path: path(), Gradient: &GradientCommand{
			CX: g.CX, CY: g.CY, Radius: g.Radius, Center: g.Center.CSS(), Edge: g.Edge.CSS(),
		}})
	case FillWatercolor:
		for _, layer := range fill.Layers {
			commands = append(commands, DrawCommand{Op: "fill", Shape: index, Path: flatten(layer.Points), Fill: layer.Color.CSS()})
		}
	}

	if s.HasStroke() {
		stroke := colors.ParseOr(s.StrokeColor, colors.RGBA{A: 1})
		commands = append(commands, DrawCommand{
			Op:          "stroke",
			Shape:       index,
			Path:        path(),
			Stroke:      stroke.CSS(),
			StrokeWidth: s.StrokeWidth,
		})
	}
	return commands
}

func flatten(pts []Point) []float64 {
	out := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		out = append(out, p.X, p.Y)
	}
	return out
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
