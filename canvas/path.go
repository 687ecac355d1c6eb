// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import "github.com/gogpu/gg"

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.moveTo(gg.Pt(x, y))
}

// LineTo adds a line to (x, y). Without a current point it behaves like
// MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	c.lineTo(gg.Pt(x, y))
}

// QuadraticTo adds a quadratic Bezier curve.
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	ctrl, pt := gg.Pt(cx, cy), gg.Pt(x, y)
	if !c.path.HasCurrentPoint() {
		c.moveTo(ctrl)
	}
	c.dc.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)

	m := c.dc.GetTransform()
	dctrl, dpt := m.TransformPoint(ctrl), m.TransformPoint(pt)
	c.path.QuadraticTo(dctrl.X, dctrl.Y, dpt.X, dpt.Y)
}

// CubicTo adds a cubic Bezier curve.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1, ctrl2, pt := gg.Pt(c1x, c1y), gg.Pt(c2x, c2y), gg.Pt(x, y)
	if !c.path.HasCurrentPoint() {
		c.moveTo(ctrl1)
	}
	c.dc.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)

	m := c.dc.GetTransform()
	d1, d2, dpt := m.TransformPoint(ctrl1), m.TransformPoint(ctrl2), m.TransformPoint(pt)
	c.path.CubicTo(d1.X, d1.Y, d2.X, d2.Y, dpt.X, dpt.Y)
}

// Rect adds a closed rectangle subpath.
func (c *Canvas) Rect(x, y, w, h float64) {
	p := gg.NewPath()
	p.Rectangle(x, y, w, h)
	c.AppendPath(p)
}

// RoundedRect adds a closed rectangle subpath with corner radius r.
func (c *Canvas) RoundedRect(x, y, w, h, r float64) {
	p := gg.NewPath()
	p.RoundedRectangle(x, y, w, h, r)
	c.AppendPath(p)
}

// Circle adds a closed circle subpath.
func (c *Canvas) Circle(x, y, r float64) {
	p := gg.NewPath()
	p.Circle(x, y, r)
	c.AppendPath(p)
}

// Ellipse adds a closed ellipse subpath.
func (c *Canvas) Ellipse(x, y, rx, ry float64) {
	p := gg.NewPath()
	p.Ellipse(x, y, rx, ry)
	c.AppendPath(p)
}

// Arc adds a circular arc from angle1 to angle2 (radians). When the path
// already has a current point, a straight line joins it to the arc start.
func (c *Canvas) Arc(x, y, r, angle1, angle2 float64) {
	p := gg.NewPath()
	p.Arc(x, y, r, angle1, angle2)
	c.appendPath(p, c.path.HasCurrentPoint())
}

// RegularPolygon adds a closed polygon with n sides inscribed in a circle
// of radius r, first vertex at the top.
func (c *Canvas) RegularPolygon(n int, x, y, r float64) {
	c.AppendPath(gg.BuildPath().Polygon(x, y, r, n).Build())
}

// AppendPath adds every element of p, in user space, to the current path.
func (c *Canvas) AppendPath(p *gg.Path) {
	c.appendPath(p, false)
}

// appendPath replays p into both the context and the mirror. With connect
// set, the first MoveTo becomes a LineTo.
func (c *Canvas) appendPath(p *gg.Path, connect bool) {
	if p == nil {
		return
	}
	m := c.dc.GetTransform()
	for i, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			if i == 0 && connect {
				c.lineTo(e.Point)
			} else {
				c.moveTo(e.Point)
			}
		case gg.LineTo:
			c.lineTo(e.Point)
		case gg.QuadTo:
			c.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
			ctrl, pt := m.TransformPoint(e.Control), m.TransformPoint(e.Point)
			c.path.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case gg.CubicTo:
			c.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			c1, c2, pt := m.TransformPoint(e.Control1), m.TransformPoint(e.Control2), m.TransformPoint(e.Point)
			c.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case gg.Close:
			c.dc.ClosePath()
			c.path.Close()
		}
	}
}

func (c *Canvas) moveTo(pt gg.Point) {
	c.dc.MoveTo(pt.X, pt.Y)
	d := c.dc.GetTransform().TransformPoint(pt)
	c.path.MoveTo(d.X, d.Y)
}

func (c *Canvas) lineTo(pt gg.Point) {
	if !c.path.HasCurrentPoint() {
		c.moveTo(pt)
		return
	}
	c.dc.LineTo(pt.X, pt.Y)
	d := c.dc.GetTransform().TransformPoint(pt)
	c.path.LineTo(d.X, d.Y)
}

// contains tests pt against p, closing any open subpath the way a fill
// would.
func contains(p *gg.Path, pt gg.Point, rule gg.FillRule) bool {
	w := closedForHitTest(p).Winding(pt)
	if rule == gg.FillRuleEvenOdd {
		return w%2 != 0
	}
	return w != 0
}

func closedForHitTest(p *gg.Path) *gg.Path {
	out := gg.NewPath()
	open := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			if open {
				out.Close()
			}
			out.MoveTo(e.Point.X, e.Point.Y)
			open = false
		case gg.LineTo:
			out.LineTo(e.Point.X, e.Point.Y)
			open = true
		case gg.QuadTo:
			out.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
			open = true
		case gg.CubicTo:
			out.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			open = true
		case gg.Close:
			out.Close()
			open = false
		}
	}
	if open {
		out.Close()
	}
	return out
}
