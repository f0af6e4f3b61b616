// Package render paints sampled shapes onto a 2D drawing surface.
package render

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/fogleman/gg"

	"github.com/gielis/iconmaker/internal/colors"
	"github.com/gielis/iconmaker/internal/document"
	"github.com/gielis/iconmaker/internal/engine"
)

// Surface is the subset of a 2D context the renderer drives. *gg.Context
// satisfies it. Fill and Stroke consume the current path.
type Surface interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()
	SetFillStyle(pattern gg.Pattern)
	SetStrokeStyle(pattern gg.Pattern)
	SetLineWidth(lineWidth float64)
	Fill()
	Stroke()
}

var _ Surface = (*gg.Context)(nil)

// DrawShape paints s at the given scale: the fill strategy first, then the
// stroke on top. Colors that fail to parse fall back to a neutral grey fill
// or a black stroke.
func DrawShape(dst Surface, s document.Shape, scale float64, steps int) {
	drawShape(dst, s, engine.Seed(s), scale, steps)
}

func drawShape(dst Surface, s document.Shape, seed uint32, scale float64, steps int) {
	var outline []engine.Point
	path := func() []engine.Point {
		if outline == nil {
			outline = engine.SampleSeeded(s, steps, seed)
		}
		return outline
	}

	fill, err := engine.SelectFillSeeded(s, steps, seed)
	if err != nil {
		slog.Debug("fill color fallback", "fill", s.FillColor, "error", err)
		fill = engine.Fill{Kind: engine.FillSolid, Color: engine.FallbackColor}
	}

	switch fill.Kind {
	case engine.FillSolid:
		trace(dst, path(), scale)
		dst.SetFillStyle(gg.NewSolidPattern(fill.Color.NRGBA()))
		dst.Fill()

	case engine.FillGradient:
		g := fill.Gradient
		grad := gg.NewRadialGradient(g.CX*scale, g.CY*scale, 0, g.CX*scale, g.CY*scale, g.Radius*scale)
		grad.AddColorStop(0, g.Center.NRGBA())
		grad.AddColorStop(1, g.Edge.NRGBA())
		trace(dst, path(), scale)
		dst.SetFillStyle(grad)
		dst.Fill()

	case engine.FillWatercolor:
		for _, layer := range fill.Layers {
			trace(dst, layer.Points, scale)
			dst.SetFillStyle(gg.NewSolidPattern(layer.Color.NRGBA()))
			dst.Fill()
		}
	}

	if s.HasStroke() {
		stroke, err := colors.Parse(s.StrokeColor)
		if err != nil {
			slog.Debug("stroke color fallback", "stroke", s.StrokeColor, "error", err)
			stroke = colors.RGBA{A: 1}
		}
		trace(dst, path(), scale)
		dst.SetStrokeStyle(gg.NewSolidPattern(stroke.NRGBA()))
		dst.SetLineWidth(s.StrokeWidth * scale)
		dst.Stroke()
	}
}

func trace(dst Surface, pts []engine.Point, scale float64) {
	dst.ClearPath()
	for i, p := range pts {
		if i == 0 {
			dst.MoveTo(p.X*scale, p.Y*scale)
		} else {
			dst.LineTo(p.X*scale, p.Y*scale)
		}
	}
	dst.ClosePath()
}

// Image rasterizes shapes onto a white size×size canvas, scaling the native
// canvas to fit.
func Image(shapes []document.Shape, size int) image.Image {
	dc := newCanvas(size)
	scale := float64(size) / document.CanvasSize
	steps := engine.StepsForSize(size)
	for _, s := range shapes {
		DrawShape(dc, s, scale, steps)
	}
	return dc.Image()
}

// ThumbnailRadius is the share of the thumbnail size used as shape radius.
const ThumbnailRadius = 0.4

// Thumbnail renders a single shape recentered in a size×size preview, its
// radius normalized to 0.4·size. Variation and watercolor keep the texture
// seeded from the shape's canvas placement.
func Thumbnail(s document.Shape, size int) image.Image {
	dc := newCanvas(size)
	drawShape(dc, thumbnailShape(s, size), engine.Seed(s), 1, engine.StepsForSize(size))
	return dc.Image()
}

func thumbnailShape(s document.Shape, size int) document.Shape {
	preview := s.Clone()
	preview.CX = float64(size) / 2
	preview.CY = float64(size) / 2
	preview.Radius = float64(size) * ThumbnailRadius
	return preview
}

func newCanvas(size int) *gg.Context {
	dc := gg.NewContext(size, size)
	dc.SetColor(color.White)
	dc.Clear()
	return dc
}
