// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggevent

import (
	"slices"

	"github.com/samber/lo"
)

// Helper draws a list of shapes onto one surface and routes clicks to the
// shapes whose paths contain them.
//
// Helper is NOT safe for concurrent use. Host UI toolkits deliver pointer
// events on a single goroutine, which is all it needs.
type Helper[S Surface] struct {
	surface S
	shapes  []*Shape[S]
}

// NewHelper creates a Helper drawing onto surface, starting with shapes in
// the given order.
func NewHelper[S Surface](surface S, shapes ...*Shape[S]) *Helper[S] {
	h := &Helper[S]{surface: surface}
	h.Add(shapes...)
	return h
}

// Add appends shapes after the existing ones. Nil shapes are ignored.
func (h *Helper[S]) Add(shapes ...*Shape[S]) {
	for _, sh := range shapes {
		if sh == nil {
			Logger().Debug("ggevent: ignoring nil shape in Add")
			continue
		}
		h.shapes = append(h.shapes, sh)
	}
}

// Remove deletes the first occurrence of shape and reports whether it was
// found. The remaining shapes keep their order.
func (h *Helper[S]) Remove(shape *Shape[S]) bool {
	i := lo.IndexOf(h.shapes, shape)
	if i < 0 {
		return false
	}
	h.shapes = slices.Delete(h.shapes, i, i+1)
	return true
}

// Shapes returns a copy of the shape list in drawing order.
func (h *Helper[S]) Shapes() []*Shape[S] {
	return slices.Clone(h.shapes)
}

// Len returns the number of shapes.
func (h *Helper[S]) Len() int {
	return len(h.shapes)
}

// Surface returns the surface shapes are drawn onto.
func (h *Helper[S]) Surface() S {
	return h.surface
}

// SetSurface replaces the surface used by later passes.
func (h *Helper[S]) SetSurface(s S) {
	h.surface = s
}

// DrawShapes draws every shape in insertion order without a click.
func (h *Helper[S]) DrawShapes() {
	h.drawShapes(nil)
}

// OnClick redraws every shape, hit-testing each against (x, y), and returns
// how many click functions ran. The coordinate lives only for this pass, so
// a later DrawShapes never sees it.
func (h *Helper[S]) OnClick(x, y float64) int {
	at := Pt(x, y)
	return h.drawShapes(&at)
}

func (h *Helper[S]) drawShapes(at *Point) int {
	s := h.surface
	hits := 0
	// Range over a snapshot: callbacks may Add or Remove shapes.
	for _, sh := range slices.Clone(h.shapes) {
		if !sh.PreDraw(s) {
			continue
		}
		sh.Draw(s)
		if sh.PostDraw(s, at) {
			hits++
		}
	}
	return hits
}
