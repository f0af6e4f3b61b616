// Package colors parses the CSS color strings stored on shapes, converts
// between sRGB and the Oklab/OKLCH perceptual spaces, and synthesizes
// harmonious palettes.
package colors

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParseError reports a color string that could not be understood.
// Callers usually fall back to a safe solid color instead of propagating it.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse color %q: %s", e.Input, e.Reason)
}

// RGBA is an 8-bit sRGB color with a CSS-style alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

var rgbFunc = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([\d.]+)\s*)?\)$`)

// Parse accepts #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b), rgba(r, g, b, a),
// white and black.
func Parse(s string) (RGBA, error) {
	in := strings.TrimSpace(s)
	switch strings.ToLower(in) {
	case "white":
		return RGBA{255, 255, 255, 1}, nil
	case "black":
		return RGBA{0, 0, 0, 1}, nil
	case "", "none":
		return RGBA{}, &ParseError{Input: s, Reason: "no color"}
	}

	if strings.HasPrefix(in, "#") {
		return parseHex(s, in[1:])
	}

	m := rgbFunc.FindStringSubmatch(strings.ToLower(in))
	if m == nil {
		return RGBA{}, &ParseError{Input: s, Reason: "unrecognized format"}
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(m[i+1])
		if err != nil || v > 255 {
			return RGBA{}, &ParseError{Input: s, Reason: "channel out of range"}
		}
		ch[i] = uint8(v)
	}
	alpha := 1.0
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil || a > 1 {
			return RGBA{}, &ParseError{Input: s, Reason: "alpha out of range"}
		}
		alpha = a
	}
	return RGBA{ch[0], ch[1], ch[2], alpha}, nil
}

func parseHex(orig, digits string) (RGBA, error) {
	switch len(digits) {
	case 3:
		v, err := strconv.ParseUint(digits, 16, 16)
		if err != nil {
			return RGBA{}, &ParseError{Input: orig, Reason: "invalid hex digits"}
		}
		r, g, b := uint8(v>>8&0xF), uint8(v>>4&0xF), uint8(v&0xF)
		return RGBA{r * 17, g * 17, b * 17, 1}, nil
	case 6, 8:
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return RGBA{}, &ParseError{Input: orig, Reason: "invalid hex digits"}
		}
		if len(digits) == 6 {
			return RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 1}, nil
		}
		return RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), float64(uint8(v)) / 255}, nil
	default:
		return RGBA{}, &ParseError{Input: orig, Reason: "hex color must have 3, 6 or 8 digits"}
	}
}

// ParseOr parses s and returns fallback when s is not a valid color.
func ParseOr(s string, fallback RGBA) RGBA {
	c, err := Parse(s)
	if err != nil {
		return fallback
	}
	return c
}

// Hex returns the color as #rrggbb, dropping alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS returns the color as an rgba() string.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// NRGBA converts to a non-premultiplied image color.
func (c RGBA) NRGBA() color.NRGBA {
	a := math.Round(clamp(c.A, 0, 1) * 255)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// WithAlpha formats hex with the given alpha as an rgba() string.
func WithAlpha(hex string, alpha float64) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	c.A = alpha
	return c.CSS(), nil
}

// Lighten adds round(2.55*percent) to every channel of hex, clamped to
// [0, 255], and returns the #rrggbb result.
func Lighten(hex string, percent float64) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	amt := int(math.Round(2.55 * percent))
	c.R = clampByte(int(c.R) + amt)
	c.G = clampByte(int(c.G) + amt)
	c.B = clampByte(int(c.B) + amt)
	return c.Hex(), nil
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
