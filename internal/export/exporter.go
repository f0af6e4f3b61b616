// Package export encodes icon documents as ICO, SVG, PNG and JSON files.
package export

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/gielis/iconmaker/internal/document"
	"github.com/gielis/iconmaker/internal/render"
)

// DefaultTouchIconSize is the Apple touch icon resolution.
const DefaultTouchIconSize = 180

// Exporter renders documents into downloadable files.
type Exporter struct {
	ICOSizes      []int
	TouchIconSize int
}

// NewExporter creates an exporter. Empty or zero arguments select the
// defaults.
func NewExporter(icoSizes []int, touchIconSize int) *Exporter {
	if len(icoSizes) == 0 {
		icoSizes = DefaultICOSizes
	}
	if touchIconSize <= 0 {
		touchIconSize = DefaultTouchIconSize
	}
	return &Exporter{ICOSizes: icoSizes, TouchIconSize: touchIconSize}
}

// ICO renders the shapes at every configured size and bundles them.
func (e *Exporter) ICO(w io.Writer, shapes []document.Shape) error {
	images := make([]image.Image, len(e.ICOSizes))
	for i, size := range e.ICOSizes {
		images[i] = render.Image(shapes, size)
	}
	if err := EncodeICO(w, images); err != nil {
		return fmt.Errorf("encode ico: %w", err)
	}
	return nil
}

// SVG writes the shapes as a vector document displayed at size pixels.
func (e *Exporter) SVG(w io.Writer, shapes []document.Shape, size int) error {
	if size <= 0 {
		size = DefaultSVGSize
	}
	return WriteSVG(w, shapes, size)
}

// PNG rasterizes the shapes onto a size×size image.
func (e *Exporter) PNG(w io.Writer, shapes []document.Shape, size int) error {
	if size <= 0 {
		size = document.CanvasSize
	}
	if err := imaging.Encode(w, render.Image(shapes, size), imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// TouchIcon writes the Apple touch icon PNG.
func (e *Exporter) TouchIcon(w io.Writer, shapes []document.Shape) error {
	return e.PNG(w, shapes, e.TouchIconSize)
}

// JSON writes the shapes as an indented document.
func (e *Exporter) JSON(w io.Writer, shapes []document.Shape) error {
	data, err := document.New(shapes).MarshalIndent()
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
