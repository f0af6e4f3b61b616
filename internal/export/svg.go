package export

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/gielis/iconmaker/internal/document"
	"github.com/gielis/iconmaker/internal/engine"
)

// DefaultSVGSize is the rendered width and height of exported SVGs.
const DefaultSVGSize = document.CanvasSize

// WriteSVG writes shapes as a standalone SVG document. The viewBox is the
// native canvas, so size only sets the displayed dimensions.
func WriteSVG(w io.Writer, shapes []document.Shape, size int) error {
	cw := &errWriter{w: w}
	canvas := svg.New(cw)
	canvas.Startview(size, size, 0, 0, document.CanvasSize, document.CanvasSize)
	canvas.Rect(0, 0, document.CanvasSize, document.CanvasSize, `fill="white"`)
	for _, s := range shapes {
		canvas.Path(PathData(engine.Sample(s, engine.SVGSteps)), paintAttrs(s)...)
	}
	canvas.End()
	if cw.err != nil {
		return fmt.Errorf("write svg: %w", cw.err)
	}
	return nil
}

// PathData formats points as an absolute closed path with two decimals.
func PathData(pts []engine.Point) string {
	var sb strings.Builder
	sb.Grow(len(pts) * 16)
	for i, p := range pts {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(strconv.FormatFloat(p.X, 'f', 2, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(p.Y, 'f', 2, 64))
	}
	sb.WriteString(" Z")
	return sb.String()
}

func paintAttrs(s document.Shape) []string {
	fill := `fill="none"`
	if s.HasFill() {
		fill = attr("fill", s.FillColor)
	}
	if !s.HasStroke() {
		return []string{fill, `stroke="none"`}
	}
	return []string{
		fill,
		attr("stroke", s.StrokeColor),
		attr("stroke-width", strconv.FormatFloat(s.StrokeWidth, 'f', -1, 64)),
	}
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

// errWriter remembers the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
