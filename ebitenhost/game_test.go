// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenhost

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggevent"
	"github.com/gogpu/ggevent/canvas"
	"github.com/quasilyte/gmath"
)

func TestNewRequiresCanvas(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoCanvas) {
		t.Errorf("New(nil) error = %v, want ErrNoCanvas", err)
	}
	if _, err := New(ggevent.NewHelper[*canvas.Canvas](nil)); !errors.Is(err, ErrNoCanvas) {
		t.Errorf("New(helper without canvas) error = %v, want ErrNoCanvas", err)
	}
}

func TestGameStep(t *testing.T) {
	c, err := canvas.New(120, 80)
	if err != nil {
		t.Fatalf("canvas.New() = %v", err)
	}
	defer c.Close()

	clicks := 0
	h := ggevent.NewHelper(c, &ggevent.Shape[*canvas.Canvas]{
		DrawFunc:  func(c *canvas.Canvas) { c.Rect(10, 10, 40, 40) },
		CloseFunc: canvas.FillCloser(c),
		ClickFunc: func() { clicks++ },
	})

	g, err := New(h)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	g.Background = gg.RGB(0.5, 0.5, 0.5)

	var observed []int
	g.OnHits = func(n int, _ gmath.Vec) { observed = append(observed, n) }

	if w, hgt := g.Layout(640, 480); w != 120 || hgt != 80 {
		t.Errorf("Layout() = %dx%d, want 120x80", w, hgt)
	}

	g.Step(gmath.Vec{}, false)
	if n := g.Step(gmath.Vec{X: 20, Y: 20}, true); n != 1 {
		t.Errorf("Step(inside) = %d, want 1", n)
	}
	if n := g.Step(gmath.Vec{X: 100, Y: 70}, true); n != 0 {
		t.Errorf("Step(outside) = %d, want 0", n)
	}

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if len(observed) != 2 || observed[0] != 1 || observed[1] != 0 {
		t.Errorf("OnHits observed %v, want [1 0]", observed)
	}

	// Background was repainted before the last pass.
	if got := c.Image().RGBAAt(100, 70); got.R < 120 || got.R > 135 {
		t.Errorf("background pixel = %v, want mid grey", got)
	}
}
