package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gielis/iconmaker/internal/document"
)

const (
	maxDocumentSize = 4 << 20 // 4MB
	maxRenderSize   = 2048
)

type format struct {
	contentType string
	filename    string
}

var formats = map[string]format{
	"ico":   {"image/x-icon", "favicon.ico"},
	"svg":   {"image/svg+xml", "icon.svg"},
	"png":   {"image/png", "icon.png"},
	"touch": {"image/png", "apple-touch-icon.png"},
	"json":  {"application/json", "icon-layers.json"},
}

type Handler struct {
	exporter *Exporter
}

func NewHandler(exporter *Exporter) *Handler {
	return &Handler{exporter: exporter}
}

// Export handles POST /export/{format}. The body is a document in the JSON
// interchange format; png and svg accept a ?size= override.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["format"]
	f, ok := formats[name]
	if !ok {
		http.Error(w, "invalid format: must be ico, svg, png, touch, or json", http.StatusBadRequest)
		return
	}

	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxRenderSize {
			http.Error(w, fmt.Sprintf("invalid size: must be 1-%d", maxRenderSize), http.StatusBadRequest)
			return
		}
		size = n
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
		return
	}
	doc, err := document.Parse(body)
	if err != nil {
		var ierr *document.ImportError
		if errors.As(err, &ierr) {
			http.Error(w, ierr.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("parse export document", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	switch name {
	case "ico":
		err = h.exporter.ICO(&buf, doc.Shapes)
	case "svg":
		err = h.exporter.SVG(&buf, doc.Shapes, size)
	case "png":
		err = h.exporter.PNG(&buf, doc.Shapes, size)
	case "touch":
		err = h.exporter.TouchIcon(&buf, doc.Shapes)
	case "json":
		err = h.exporter.JSON(&buf, doc.Shapes)
	}
	if err != nil {
		slog.Error("export failed", "format", name, "error", err)
		http.Error(w, "encoding failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", f.contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, f.filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())

	slog.Info("export complete", "format", name, "shapes", len(doc.Shapes), "size", buf.Len())
}
