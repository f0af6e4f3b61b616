package engine

import (
	"strconv"
	"strings"

	"github.com/gielis/iconmaker/internal/document"
)

// Seed derives the random seed for a shape's organic texture from its
// geometry only. Recoloring a shape keeps its texture.
//
// The canonical string is "cx|cy|radius|rotation|m|n1|n2|n3|a|b" in every
// curve mode; knot shapes hash their inert superformula fields.
func Seed(s document.Shape) uint32 {
	p := s.Superformula
	fields := []float64{s.CX, s.CY, s.Radius, s.Rotation, p.M, p.N1, p.N2, p.N3, p.A, p.B}

	var b strings.Builder
	for i, v := range fields {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(formatNumber(v))
	}
	return hashString(b.String())
}

// formatNumber writes the shortest decimal that round-trips v, with no
// exponent and no negative zero.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// hashString folds s with hash*31 + byte in signed 32-bit arithmetic and
// returns the absolute value.
func hashString(s string) uint32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}
