// Package editor holds the mutable state of one icon editing session: the
// ordered shape list and the selection.
package editor

import (
	"errors"
	"fmt"

	"github.com/gielis/iconmaker/internal/document"
	"github.com/gielis/iconmaker/internal/engine"
)

var (
	ErrIndexOutOfRange = errors.New("shape index out of range")
	ErrNoSelection     = errors.New("no shape selected")
	ErrUnknownDemo     = errors.New("unknown demo")
	ErrUnknownPreset   = errors.New("unknown preset")
)

// noSelection marks an empty selection.
const noSelection = -1

// Editor owns the shape list and selection. It is not safe for concurrent
// use; each session owns its own Editor.
type Editor struct {
	shapes   []document.Shape
	selected int
}

// New creates an empty editor.
func New() *Editor {
	return &Editor{selected: noSelection}
}

// --- Commands ---

// Add appends s on top and selects it.
func (e *Editor) Add(s document.Shape) int {
	e.shapes = append(e.shapes, s.Clone())
	e.selected = len(e.shapes) - 1
	return e.selected
}

// Update replaces the shape at i.
func (e *Editor) Update(i int, s document.Shape) error {
	if err := e.check(i); err != nil {
		return err
	}
	e.shapes[i] = s.Clone()
	return nil
}

// Delete removes the shape at i. Deleting the selected shape selects the
// one below it.
func (e *Editor) Delete(i int) error {
	if err := e.check(i); err != nil {
		return err
	}
	e.shapes = append(e.shapes[:i], e.shapes[i+1:]...)

	switch {
	case e.selected == i:
		e.selected = noSelection
		if len(e.shapes) > 0 {
			e.selected = max(0, i-1)
		}
	case e.selected > i:
		e.selected--
	}
	return nil
}

// Move reorders the shape at from to index to. The selection follows the
// shape it pointed at.
func (e *Editor) Move(from, to int) error {
	if err := e.check(from); err != nil {
		return err
	}
	if err := e.check(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	moved := e.shapes[from]
	e.shapes = append(e.shapes[:from], e.shapes[from+1:]...)
	e.shapes = append(e.shapes[:to], append([]document.Shape{moved}, e.shapes[to:]...)...)

	switch sel := e.selected; {
	case sel == from:
		e.selected = to
	case from < sel && sel <= to:
		e.selected--
	case to <= sel && sel < from:
		e.selected++
	}
	return nil
}

// Translate moves the shape at i by (dx, dy) canvas units.
func (e *Editor) Translate(i int, dx, dy float64) error {
	if err := e.check(i); err != nil {
		return err
	}
	e.shapes[i].CX += dx
	e.shapes[i].CY += dy
	return nil
}

// Clear removes every shape.
func (e *Editor) Clear() {
	e.shapes = nil
	e.selected = noSelection
}

// Select selects the shape at i; -1 clears the selection.
func (e *Editor) Select(i int) error {
	if i == noSelection {
		e.selected = noSelection
		return nil
	}
	if err := e.check(i); err != nil {
		return err
	}
	e.selected = i
	return nil
}

// SelectAt selects the topmost shape under (x, y). It reports whether a
// shape was hit; a miss leaves the selection unchanged.
func (e *Editor) SelectAt(x, y float64) (int, bool) {
	i := engine.HitTest(e.shapes, x, y)
	if i < 0 {
		return i, false
	}
	e.selected = i
	return i, true
}

// LoadDemo replaces the shapes with a demo and selects the top layer.
func (e *Editor) LoadDemo(key string) error {
	d, ok := document.LookupDemo(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDemo, key)
	}
	e.replace(d.Shapes())
	return nil
}

// RandomDemo replaces the shapes with a seeded random composition.
func (e *Editor) RandomDemo(seed uint32) {
	e.replace(document.RandomDemo(seed))
}

// ApplyPreset applies a named preset to the selected shape. With no
// shapes at all, template gets the preset and is added as the first layer.
func (e *Editor) ApplyPreset(name string, template document.Shape) error {
	p, ok := document.LookupPreset(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	if len(e.shapes) == 0 {
		e.Add(p.Apply(template))
		return nil
	}
	if e.selected == noSelection {
		return ErrNoSelection
	}
	e.shapes[e.selected] = p.Apply(e.shapes[e.selected])
	return nil
}

// Import replaces the shapes with a JSON document. On failure the current
// shapes and selection are left untouched.
func (e *Editor) Import(data []byte) error {
	doc, err := document.Parse(data)
	if err != nil {
		return err
	}
	e.shapes = doc.Shapes
	e.selected = noSelection
	return nil
}

// Load replaces the shapes with a copy of doc.
func (e *Editor) Load(doc *document.Document) {
	shapes := make([]document.Shape, len(doc.Shapes))
	for i, s := range doc.Shapes {
		shapes[i] = s.Clone()
	}
	e.shapes = shapes
	e.selected = noSelection
}

// --- Queries ---

// Shapes returns a copy of the shape list, back to front.
func (e *Editor) Shapes() []document.Shape {
	out := make([]document.Shape, len(e.shapes))
	for i, s := range e.shapes {
		out[i] = s.Clone()
	}
	return out
}

// Len returns the number of shapes.
func (e *Editor) Len() int {
	return len(e.shapes)
}

// Selected returns the selected index, or -1.
func (e *Editor) Selected() int {
	return e.selected
}

// Document snapshots the shapes as a persistable document.
func (e *Editor) Document() *document.Document {
	return document.New(e.Shapes())
}

// Export encodes the shapes as indented JSON.
func (e *Editor) Export() ([]byte, error) {
	data, err := e.Document().MarshalIndent()
	if err != nil {
		return nil, fmt.Errorf("export document: %w", err)
	}
	return data, nil
}

// HitTest returns the topmost shape under (x, y), or -1.
func (e *Editor) HitTest(x, y float64) int {
	return engine.HitTest(e.shapes, x, y)
}

// SelectionBounds returns the bounding box of the selected shape.
func (e *Editor) SelectionBounds() engine.Rect {
	if e.selected == noSelection {
		return engine.Rect{}
	}
	return engine.SelectionBounds(e.shapes, []int{e.selected})
}

// DrawCommands compiles the current shapes for a canvas client.
func (e *Editor) DrawCommands(steps int) []engine.DrawCommand {
	return engine.CompileDrawCommands(e.shapes, steps)
}

func (e *Editor) replace(shapes []document.Shape) {
	e.shapes = shapes
	e.selected = len(shapes) - 1
}

func (e *Editor) check(i int) error {
	if i < 0 || i >= len(e.shapes) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return nil
}
