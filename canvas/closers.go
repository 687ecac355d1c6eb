// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import "github.com/gogpu/ggevent"

var _ ggevent.Surface = (*Canvas)(nil)

// FillCloser returns a close function for ggevent.Shape that closes the
// current subpath and fills it. Fill errors are logged at warn level since
// close functions cannot return them.
func FillCloser(c *Canvas) func() {
	return func() {
		c.ClosePath()
		if err := c.Fill(); err != nil {
			ggevent.Logger().Warn("canvas: fill in close function failed", "err", err)
		}
	}
}

// StrokeCloser returns a close function that closes the current subpath
// and strokes it.
func StrokeCloser(c *Canvas) func() {
	return func() {
		c.ClosePath()
		if err := c.Stroke(); err != nil {
			ggevent.Logger().Warn("canvas: stroke in close function failed", "err", err)
		}
	}
}

// FillStrokeCloser returns a close function that fills with fill, then
// strokes with stroke at the given line width.
func FillStrokeCloser(c *Canvas, fill, stroke string, lineWidth float64) func() {
	return func() {
		c.ClosePath()
		c.SetHexColor(fill)
		if err := c.Fill(); err != nil {
			ggevent.Logger().Warn("canvas: fill in close function failed", "err", err)
		}
		c.SetHexColor(stroke)
		c.SetLineWidth(lineWidth)
		if err := c.Stroke(); err != nil {
			ggevent.Logger().Warn("canvas: stroke in close function failed", "err", err)
		}
	}
}
