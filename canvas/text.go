// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// FillText draws s with its baseline starting at (x, y) in user space.
// Text is painted immediately and does not join the path, so it never
// affects IsPointInPath.
func (c *Canvas) FillText(s string, x, y float64) error {
	return c.drawText(s, x, y, 0, 0)
}

// FillTextCentered draws s centered on (x, y) in user space.
func (c *Canvas) FillTextCentered(s string, x, y float64) error {
	return c.drawText(s, x, y, 0.5, 0.5)
}

// MeasureText returns the advance width and line height of s.
func (c *Canvas) MeasureText(s string) (w, h float64, err error) {
	if err := c.ensureFace(); err != nil {
		return 0, 0, err
	}
	w, h = c.dc.MeasureString(s)
	return w, h, nil
}

func (c *Canvas) drawText(s string, x, y, ax, ay float64) error {
	if err := c.ensureFace(); err != nil {
		return err
	}
	// gg draws strings in device space.
	dx, dy := c.dc.TransformPoint(x, y)
	c.dc.DrawStringAnchored(s, dx, dy, ax, ay)
	return nil
}

// ensureFace loads the label face on first use.
func (c *Canvas) ensureFace() error {
	if c.face != nil {
		return nil
	}
	if c.fontSource == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return fmt.Errorf("canvas: load Go Regular: %w", err)
		}
		c.fontSource = src
		c.ownsSource = true
	}
	c.face = c.fontSource.Face(c.fontSize)
	c.dc.SetFont(c.face)
	return nil
}
