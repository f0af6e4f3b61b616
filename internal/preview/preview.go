// Package preview renders and caches the small per-layer thumbnails shown in
// the layer list.
package preview

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/crypto/blake2b"

	"github.com/gielis/iconmaker/internal/document"
	"github.com/gielis/iconmaker/internal/engine"
	"github.com/gielis/iconmaker/internal/render"
)

// DefaultSize is the thumbnail edge length in pixels.
const DefaultSize = 48

// Fingerprint identifies how a shape looks in a thumbnail. Position and
// radius are left out because thumbnails recenter and rescale the shape,
// except through the texture seed of varied or watercolor shapes.
func Fingerprint(s document.Shape) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	sf := s.Superformula
	parts := []string{
		f(sf.M), f(sf.N1), f(sf.N2), f(sf.N3), f(sf.A), f(sf.B),
		s.FillColor, s.StrokeColor, f(s.StrokeWidth), f(s.Rotation),
		string(s.Variation),
	}
	if k, ok := s.Curve().(document.Knot); ok {
		parts = append(parts, "knot", f(k.Lobes), f(k.Turns), f(k.Amplitude), f(k.BaseRadius))
	}
	if s.Gradient != nil {
		parts = append(parts, "gradient", s.Gradient.EdgeColor)
	}
	if s.Watercolor != nil {
		parts = append(parts, "watercolor", f(s.Watercolor.Intensity))
	}
	if s.Variation.Amount() != 0 || (s.Watercolor != nil && s.Watercolor.Intensity > 0) {
		parts = append(parts, "seed", strconv.FormatUint(uint64(engine.Seed(s)), 10))
	}
	sum := blake2b.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:16])
}

// Service renders thumbnails through a cache.
type Service struct {
	cache *Cache
	size  int
}

// NewService creates a thumbnail service rendering size-pixel previews.
func NewService(cache *Cache, size int) *Service {
	if size <= 0 {
		size = DefaultSize
	}
	return &Service{cache: cache, size: size}
}

// Thumbnail returns the fingerprint and PNG bytes for s, rendering it on a
// cache miss.
func (s *Service) Thumbnail(shape document.Shape) (string, []byte, error) {
	key := Fingerprint(shape)
	if data, ok := s.cache.Get(key); ok {
		return key, data, nil
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, render.Thumbnail(shape, s.size), imaging.PNG); err != nil {
		return "", nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	s.cache.Put(key, buf.Bytes())
	return key, buf.Bytes(), nil
}

// Lookup returns a previously rendered thumbnail.
func (s *Service) Lookup(key string) ([]byte, bool) {
	return s.cache.Get(key)
}
