// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package demo builds the scene shown by ggeventdemo and ggeventshot.
package demo

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggevent"
	"github.com/gogpu/ggevent/canvas"
)

type shape = ggevent.Shape[*canvas.Canvas]

// palette is cycled by the circle on every click.
var palette = []string{"#e74c3c", "#f39c12", "#27ae60", "#2980b9", "#8e44ad"}

// Scene is a helper preloaded with four shapes:
//
//   - a circle that changes colour when clicked
//   - a rounded button whose label counts clicks
//   - a five-pointed star filled even-odd, so its centre is a hole
//   - a frame around the canvas with only a close function, which never
//     receives clicks
type Scene struct {
	Helper *ggevent.Helper[*canvas.Canvas]

	// Geometry in canvas pixels, derived from the canvas size.
	Circle     gg.Point
	Radius     float64
	Button     gg.Rect
	Star       gg.Point
	StarRadius float64

	CircleClicks int
	ButtonClicks int
	StarClicks   int
	FrameClicks  int
}

// New lays the scene out for c.
func New(c *canvas.Canvas) *Scene {
	w, h := float64(c.Width()), float64(c.Height())
	unit := math.Min(w, h)

	s := &Scene{
		Circle:     gg.Pt(w*0.2, h*0.5),
		Radius:     unit * 0.15,
		Button:     gg.Rect{Min: gg.Pt(w*0.38, h*0.4), Max: gg.Pt(w*0.62, h*0.6)},
		Star:       gg.Pt(w*0.8, h*0.5),
		StarRadius: unit * 0.2,
	}

	s.Helper = ggevent.NewHelper(c,
		s.circle(c),
		s.button(c),
		s.star(c),
		s.frame(c),
	)
	return s
}

func (s *Scene) circle(c *canvas.Canvas) *shape {
	return &shape{
		Name: "circle",
		DrawFunc: func(c *canvas.Canvas) {
			c.SetHexColor(palette[s.CircleClicks%len(palette)])
			c.Circle(s.Circle.X, s.Circle.Y, s.Radius)
		},
		CloseFunc: canvas.FillCloser(c),
		ClickFunc: func() { s.CircleClicks++ },
	}
}

func (s *Scene) button(c *canvas.Canvas) *shape {
	return &shape{
		Name: "button",
		DrawFunc: func(c *canvas.Canvas) {
			b := s.Button
			c.RoundedRect(b.Min.X, b.Min.Y, b.Width(), b.Height(), b.Height()*0.2)
		},
		CloseFunc: func() {
			canvas.FillStrokeCloser(c, "#34495e", "#2c3e50", 2)()

			c.SetHexColor("#ecf0f1")
			label := fmt.Sprintf("Clicked %d", s.ButtonClicks)
			center := s.Button.Min.Add(s.Button.Max).Mul(0.5)
			if err := c.FillTextCentered(label, center.X, center.Y); err != nil {
				ggevent.Logger().Warn("demo: button label", "err", err)
			}
		},
		ClickFunc: func() { s.ButtonClicks++ },
	}
}

func (s *Scene) star(c *canvas.Canvas) *shape {
	return &shape{
		Name: "star",
		DrawFunc: func(c *canvas.Canvas) {
			// Even-odd must stay in effect until PostDraw has hit-tested.
			c.SetFillRule(gg.FillRuleEvenOdd)
			c.SetHexColor("#f1c40f")
			for i, k := range []int{0, 2, 4, 1, 3} {
				a := -math.Pi/2 + float64(k)*2*math.Pi/5
				x := s.Star.X + s.StarRadius*math.Cos(a)
				y := s.Star.Y + s.StarRadius*math.Sin(a)
				if i == 0 {
					c.MoveTo(x, y)
				} else {
					c.LineTo(x, y)
				}
			}
		},
		CloseFunc: func() {
			canvas.FillCloser(c)()
			c.SetFillRule(gg.FillRuleNonZero)
		},
		ClickFunc: func() { s.StarClicks++ },
	}
}

func (s *Scene) frame(c *canvas.Canvas) *shape {
	w, h := float64(c.Width()), float64(c.Height())
	return &shape{
		Name: "frame",
		CloseFunc: func() {
			c.SetHexColor("#7f8c8d")
			c.SetLineWidth(4)
			c.Rect(2, 2, w-4, h-4)
			if err := c.Stroke(); err != nil {
				ggevent.Logger().Warn("demo: frame stroke", "err", err)
			}
		},
		ClickFunc: func() { s.FrameClicks++ },
	}
}
