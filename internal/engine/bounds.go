package engine

import (
	"math"

	"github.com/gielis/iconmaker/internal/document"
)

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains checks if a point is inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Center returns the center point of the rect.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Bounds returns the bounding box of pts.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether (x, y) is inside the closed polygon pts under the
// nonzero winding rule, the default of canvas isPointInPath.
func Contains(pts []Point, x, y float64) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	winding := 0
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
		if a.Y <= y {
			if b.Y > y && cross > 0 {
				winding++
			}
		} else if b.Y <= y && cross < 0 {
			winding--
		}
	}
	return winding != 0
}

// HitTest returns the index of the topmost shape whose outline contains
// (x, y), or -1.
func HitTest(shapes []document.Shape, x, y float64) int {
	// Front to back: later shapes paint on top.
	for i := len(shapes) - 1; i >= 0; i-- {
		pts := Sample(shapes[i], RenderSteps)
		if !Bounds(pts).Contains(x, y) {
			continue
		}
		if Contains(pts, x, y) {
			return i
		}
	}
	return -1
}

// SelectionBounds returns the combined bounding box of the shapes at the
// given indices. Out-of-range indices are ignored.
func SelectionBounds(shapes []document.Shape, indices []int) Rect {
	var result Rect
	for _, i := range indices {
		if i < 0 || i >= len(shapes) {
			continue
		}
		result = result.Union(Bounds(Sample(shapes[i], RenderSteps)))
	}
	return result
}
