package preview

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gielis/iconmaker/internal/document"
)

const maxShapeSize = 64 << 10 // 64KB

// ThumbnailResponse is returned from the create endpoint.
type ThumbnailResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Handler serves thumbnail rendering and retrieval endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a thumbnail handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /thumbnails with a single shape as the body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxShapeSize))
	if err != nil {
		http.Error(w, "shape too large", http.StatusRequestEntityTooLarge)
		return
	}

	var shape document.Shape
	if err := json.Unmarshal(body, &shape); err != nil {
		http.Error(w, "invalid shape: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := shape.Validate(); err != nil {
		http.Error(w, "invalid shape: "+err.Error(), http.StatusBadRequest)
		return
	}

	key, _, err := h.service.Thumbnail(shape)
	if err != nil {
		slog.Error("render thumbnail", "error", err)
		http.Error(w, "failed to render thumbnail", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ThumbnailResponse{
		Key: key,
		URL: fmt.Sprintf("/thumbnails/%s.png", key),
	})
}

// Serve handles GET /thumbnails/{key}.png.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	data, ok := h.service.Lookup(mux.Vars(r)["key"])
	if !ok {
		http.Error(w, "thumbnail not found", http.StatusNotFound)
		return
	}
	// Keys are content fingerprints, so entries never change.
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
