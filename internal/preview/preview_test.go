package preview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gielis/iconmaker/internal/document"
)

func star() document.Shape {
	return document.Shape{
		CX: 100, CY: 120, Radius: 80,
		Superformula: document.Superformula{M: 5, N1: 0.5, N2: 0.5, N3: 0.5, A: 1, B: 1},
		FillColor:    "#FFD93D", StrokeColor: "#000000", StrokeWidth: 1,
	}
}

func TestFingerprintIgnoresPlacement(t *testing.T) {
	a := star()
	b := star()
	b.CX, b.CY, b.Radius = 10, 10, 5
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.Len(t, Fingerprint(a), 32)

	changes := []func(*document.Shape){
		func(s *document.Shape) { s.FillColor = "#FFD93E" },
		func(s *document.Shape) { s.Rotation = 0.1 },
		func(s *document.Shape) { s.Superformula.N2 = 0.6 },
		func(s *document.Shape) { s.Variation = document.VariationWild },
		func(s *document.Shape) { s.Knot = &document.Knot{Lobes: 3, Turns: 1, BaseRadius: 1} },
		func(s *document.Shape) { s.Gradient = &document.Gradient{EdgeColor: "#fff"} },
		func(s *document.Shape) { s.Watercolor = &document.Watercolor{Intensity: 30} },
	}
	for i, change := range changes {
		c := star()
		change(&c)
		assert.NotEqual(t, Fingerprint(a), Fingerprint(c), "change %d", i)
	}

	inert := star()
	inert.Knot = &document.Knot{Lobes: 0, Turns: 4}
	assert.Equal(t, Fingerprint(a), Fingerprint(inert), "a knot without lobes is not drawn")
}

func TestFingerprintFollowsTexture(t *testing.T) {
	a := star()
	a.Variation = document.VariationMedium
	b := a
	b.CX = 300
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b), "placement seeds the variation")

	wash := star()
	wash.Watercolor = &document.Watercolor{Intensity: 30}
	moved := wash
	moved.Radius = 40
	assert.NotEqual(t, Fingerprint(wash), Fingerprint(moved), "placement seeds the watercolor layers")

	still := wash
	still.Watercolor = &document.Watercolor{Intensity: 0}
	stillMoved := still
	stillMoved.Radius = 40
	assert.Equal(t, Fingerprint(still), Fingerprint(stillMoved))
}

func TestCacheEvictsOldest(t *testing.T) {
	c := NewCache(2)
	c.Put("a", []byte("1"))
	c.Put("b", []byte("2"))
	c.Put("a", []byte("3"))
	c.Put("c", []byte("4"))

	_, ok := c.Get("a")
	assert.False(t, ok)
	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, []byte("2"), got)
	assert.Equal(t, 2, c.Len())
}

func TestCacheConcurrentUse(t *testing.T) {
	c := NewCache(16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("%d-%d", i, j%20)
				c.Put(key, []byte(key))
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}

func TestServiceRendersOnce(t *testing.T) {
	cache := NewCache(4)
	svc := NewService(cache, 0)

	key, data, err := svc.Thumbnail(star())
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, DefaultSize, cfg.Width)

	moved := star()
	moved.CX = 300
	again, data2, err := svc.Thumbnail(moved)
	require.NoError(t, err)
	assert.Equal(t, key, again)
	assert.Equal(t, data, data2)
	assert.Equal(t, 1, cache.Len())
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/thumbnails", h.Create).Methods("POST")
	r.HandleFunc("/thumbnails/{key}.png", h.Serve).Methods("GET")
	return r
}

func TestHandlerCreateAndServe(t *testing.T) {
	router := newRouter(NewHandler(NewService(NewCache(8), 32)))

	body, err := json.Marshal(star())
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/thumbnails", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ThumbnailResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, Fingerprint(star()), resp.Key)
	assert.Equal(t, "/thumbnails/"+resp.Key+".png", resp.URL)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, resp.URL, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
	cfg, _, err := image.DecodeConfig(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
}

func TestHandlerErrors(t *testing.T) {
	router := newRouter(NewHandler(NewService(NewCache(8), 32)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/thumbnails/deadbeef.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for _, body := range []string{`{"radius":`, `{"radius":-4}`, `{"variation":"extreme"}`} {
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/thumbnails", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}
