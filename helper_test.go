// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggevent

import (
	"slices"
	"testing"
)

func TestHelperDrawOrder(t *testing.T) {
	var order []string
	record := func(name string) *Shape[*mockSurface] {
		return &Shape[*mockSurface]{
			Name:     name,
			DrawFunc: func(*mockSurface) { order = append(order, name) },
		}
	}

	h := NewHelper(&mockSurface{}, record("a"), record("b"))
	h.Add(record("c"))

	for pass := 0; pass < 3; pass++ {
		h.DrawShapes()
	}

	want := []string{"a", "b", "c", "a", "b", "c", "a", "b", "c"}
	if !slices.Equal(order, want) {
		t.Errorf("draw order = %v, want %v", order, want)
	}
}

func TestHelperSkipsShapesWithoutDrawOrClose(t *testing.T) {
	s := &mockSurface{}
	clicked := false
	h := NewHelper(s, &Shape[*mockSurface]{ClickFunc: func() { clicked = true }})

	if n := h.OnClick(1, 1); n != 0 {
		t.Errorf("OnClick() = %d, want 0", n)
	}
	if clicked {
		t.Error("click function of a skipped shape ran")
	}
	if len(s.calls) != 0 {
		t.Errorf("skipped shape touched the surface: %v", s.calls)
	}
}

func TestHelperCloseOnlyShape(t *testing.T) {
	s := &mockSurface{}
	closed := 0
	h := NewHelper(s, &Shape[*mockSurface]{CloseFunc: func() { closed++ }})

	h.DrawShapes()

	if closed != 1 {
		t.Errorf("close function ran %d times, want 1", closed)
	}
	if want := []string{"begin"}; !slices.Equal(s.calls, want) {
		t.Errorf("calls = %v, want %v", s.calls, want)
	}
}

func TestHelperOnClick(t *testing.T) {
	var left, right int
	h := NewHelper(&mockSurface{},
		rectShape("left", 0, 0, 50, 50, &left),
		rectShape("right", 50, 0, 50, 50, &right),
	)

	tests := []struct {
		name      string
		x, y      float64
		wantHits  int
		wantLeft  int
		wantRight int
	}{
		{"left", 10, 10, 1, 1, 0},
		{"right", 60, 10, 1, 1, 1},
		{"outside", 10, 80, 0, 1, 1},
		{"left again", 49, 49, 1, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.OnClick(tt.x, tt.y); got != tt.wantHits {
				t.Errorf("OnClick() = %d, want %d", got, tt.wantHits)
			}
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("clicks left=%d right=%d, want left=%d right=%d",
					left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestHelperOverlappingShapesBothFire(t *testing.T) {
	var a, b int
	h := NewHelper(&mockSurface{},
		rectShape("a", 0, 0, 100, 100, &a),
		rectShape("b", 25, 25, 50, 50, &b),
	)

	if n := h.OnClick(50, 50); n != 2 {
		t.Errorf("OnClick() = %d, want 2", n)
	}
	if a != 1 || b != 1 {
		t.Errorf("clicks a=%d b=%d, want 1 each", a, b)
	}
}

func TestHelperClickDoesNotOutliveOnClick(t *testing.T) {
	s := &mockSurface{}
	clicks := 0
	h := NewHelper(s, rectShape("r", 0, 0, 10, 10, &clicks))

	h.OnClick(5, 5)
	s.calls = nil
	h.DrawShapes()

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	for _, c := range s.calls {
		if c != "begin" && c != "rect" && c != "close" {
			t.Errorf("DrawShapes after OnClick hit-tested: %v", s.calls)
			break
		}
	}
}

func TestHelperReentrantClick(t *testing.T) {
	var inner, outer int
	var h *Helper[*mockSurface]

	first := &Shape[*mockSurface]{
		DrawFunc: func(s *mockSurface) { s.rect(0, 0, 10, 10) },
		ClickFunc: func() {
			outer++
			// A nested pass with its own click must not leak into the outer one.
			h.OnClick(500, 500)
		},
	}
	second := rectShape("second", 0, 0, 10, 10, &inner)

	h = NewHelper(&mockSurface{}, first, second)

	if n := h.OnClick(5, 5); n != 2 {
		t.Errorf("OnClick() = %d, want 2", n)
	}
	if outer != 1 || inner != 1 {
		t.Errorf("outer=%d inner=%d, want 1 each", outer, inner)
	}
}

func TestHelperAddRemove(t *testing.T) {
	var n int
	a := rectShape("a", 0, 0, 1, 1, &n)
	b := rectShape("b", 0, 0, 1, 1, &n)
	c := rectShape("c", 0, 0, 1, 1, &n)

	h := NewHelper[*mockSurface](nil)
	h.Add(a, nil, b, c)
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	if !h.Remove(b) {
		t.Error("Remove(b) = false, want true")
	}
	if h.Remove(b) {
		t.Error("second Remove(b) = true, want false")
	}
	if got := h.Shapes(); !slices.Equal(got, []*Shape[*mockSurface]{a, c}) {
		t.Errorf("Shapes() = %v, want [a c]", got)
	}

	// Shapes returns a copy.
	got := h.Shapes()
	got[0] = nil
	if h.Shapes()[0] != a {
		t.Error("mutating Shapes() result changed the helper")
	}
}

func TestHelperNilSurface(t *testing.T) {
	clicks := 0
	h := NewHelper[*mockSurface](nil, rectShape("r", 0, 0, 10, 10, &clicks))

	h.DrawShapes()
	if n := h.OnClick(5, 5); n != 0 {
		t.Errorf("OnClick() = %d, want 0", n)
	}

	s := &mockSurface{}
	h.SetSurface(s)
	if h.Surface() != s {
		t.Error("Surface() did not return the surface set via SetSurface")
	}
	if n := h.OnClick(5, 5); n != 1 {
		t.Errorf("OnClick() after SetSurface = %d, want 1", n)
	}
}
