// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenhost runs a ggevent.Helper inside an ebiten window: ebiten
// delivers pointer presses, the helper redraws its canvas every frame, and
// the canvas pixels are presented on screen.
package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggevent"
	"github.com/gogpu/ggevent/canvas"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gmath"
)

// ErrNoCanvas is returned when the helper has no canvas to draw onto.
var ErrNoCanvas = errors.New("ebitenhost: helper has no canvas")

// Game implements ebiten.Game around a helper drawing onto a canvas.
type Game struct {
	// Background is painted over the whole canvas before every pass.
	Background gg.RGBA

	// OnHits, when set, is called after every click with the number of
	// shapes whose click function ran.
	OnHits func(n int, at gmath.Vec)

	helper *ggevent.Helper[*canvas.Canvas]
	frame  *ebiten.Image
	dirty  bool
}

// New creates a Game for h. The helper's surface must be set.
func New(h *ggevent.Helper[*canvas.Canvas]) (*Game, error) {
	if h == nil || h.Surface() == nil {
		return nil, ErrNoCanvas
	}
	return &Game{
		Background: gg.White,
		helper:     h,
	}, nil
}

// Helper returns the helper driven by the game.
func (g *Game) Helper() *ggevent.Helper[*canvas.Canvas] {
	return g.helper
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	at, clicked := Clicked()
	g.Step(at, clicked)
	return nil
}

// Step runs one frame's pass: a click pass when clicked is set, a plain
// redraw otherwise. It returns the number of click functions that ran.
func (g *Game) Step(at gmath.Vec, clicked bool) int {
	c := g.helper.Surface()
	c.ClearWithColor(g.Background)
	g.dirty = true

	if !clicked {
		g.helper.DrawShapes()
		return 0
	}

	n := g.helper.OnClick(at.X, at.Y)
	ggevent.Logger().Info("ebitenhost: click", "x", at.X, "y", at.Y, "hits", n)
	if g.OnHits != nil {
		g.OnHits(n, at)
	}
	return n
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	c := g.helper.Surface()
	if g.frame == nil || g.frame.Bounds().Dx() != c.Width() || g.frame.Bounds().Dy() != c.Height() {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(c.Width(), c.Height())
		g.dirty = true
	}
	if g.dirty {
		g.frame.WritePixels(c.Pixels())
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

// Layout implements ebiten.Game. The logical screen is the canvas, so
// cursor positions arrive in canvas pixels.
func (g *Game) Layout(int, int) (int, int) {
	c := g.helper.Surface()
	return c.Width(), c.Height()
}

// Run opens a window scale times the canvas size and blocks until it is
// closed.
func Run(g *Game, title string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	c := g.helper.Surface()

	ebiten.SetWindowSize(c.Width()*scale, c.Height()*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenhost: run: %w", err)
	}
	return nil
}
