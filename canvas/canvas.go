// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
)

// Common errors returned by Canvas operations.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrNilContext is returned when a nil gg.Context is wrapped.
	ErrNilContext = errors.New("canvas: nil gg.Context")
)

// DefaultFontSize is the label size used when no WithFontSize option is given.
const DefaultFontSize = 14

// Canvas is a gg.Context with canvas2d path semantics: the path survives
// Fill and Stroke until the next BeginPath, and IsPointInPath tests pixel
// coordinates against it.
//
// The path is mirrored in device space as it is built, so hit tests stay
// correct under Translate, Scale and Rotate.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	dc *gg.Context

	// path mirrors dc's current path with the transform already applied.
	path *gg.Path
	rule gg.FillRule

	fontSize   float64
	fontSource *text.FontSource
	ownsSource bool
	face       text.Face
}

// New creates a Canvas backed by a new gg.Context of the given size.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return newCanvas(gg.NewContext(width, height, o.contextOpts...), o), nil
}

// Wrap adopts an existing gg.Context. The context's current path is
// discarded so that the mirror starts in sync.
func Wrap(dc *gg.Context, opts ...Option) (*Canvas, error) {
	if dc == nil {
		return nil, ErrNilContext
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dc.ClearPath()
	return newCanvas(dc, o), nil
}

func newCanvas(dc *gg.Context, o options) *Canvas {
	dc.SetFillRule(o.fillRule)
	return &Canvas{
		dc:         dc,
		path:       gg.NewPath(),
		rule:       o.fillRule,
		fontSize:   o.fontSize,
		fontSource: o.fontSource,
	}
}

// Context returns the underlying gg.Context. Path operations made on it
// directly bypass the hit-test mirror.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.dc.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.dc.Height()
}

// Close releases the underlying context and the bundled font, if loaded.
func (c *Canvas) Close() error {
	var errs []error
	if c.ownsSource && c.fontSource != nil {
		errs = append(errs, c.fontSource.Close())
		c.fontSource = nil
		c.face = nil
	}
	errs = append(errs, c.dc.Close())
	return errors.Join(errs...)
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.dc.ClearPath()
	c.path.Clear()
}

// ClosePath closes the current subpath. It does nothing on an empty path.
func (c *Canvas) ClosePath() {
	if !c.path.HasCurrentPoint() {
		return
	}
	c.dc.ClosePath()
	c.path.Close()
}

// IsPointInPath reports whether the pixel (x, y) lies inside the current
// path under the canvas fill rule. Open subpaths are treated as closed, and
// the current transform is not applied to (x, y).
func (c *Canvas) IsPointInPath(x, y float64) bool {
	return contains(c.path, gg.Pt(x, y), c.rule)
}

// Fill paints the interior of the current path and keeps the path.
func (c *Canvas) Fill() error {
	if err := c.dc.FillPreserve(); err != nil {
		return fmt.Errorf("canvas: fill: %w", err)
	}
	return nil
}

// Stroke paints the outline of the current path and keeps the path.
func (c *Canvas) Stroke() error {
	if err := c.dc.StrokePreserve(); err != nil {
		return fmt.Errorf("canvas: stroke: %w", err)
	}
	return nil
}

// SetFillRule sets the rule for both Fill and IsPointInPath.
func (c *Canvas) SetFillRule(rule gg.FillRule) {
	c.rule = rule
	c.dc.SetFillRule(rule)
}

// FillRule returns the current fill rule.
func (c *Canvas) FillRule() gg.FillRule {
	return c.rule
}

// SetColor sets the fill and stroke color.
func (c *Canvas) SetColor(col color.Color) {
	c.dc.SetColor(col)
}

// SetRGB sets the color from components in [0, 1].
func (c *Canvas) SetRGB(r, g, b float64) {
	c.dc.SetRGB(r, g, b)
}

// SetRGBA sets the color from components in [0, 1].
func (c *Canvas) SetRGBA(r, g, b, a float64) {
	c.dc.SetRGBA(r, g, b, a)
}

// SetHexColor sets the color from a "#rrggbb" style string.
func (c *Canvas) SetHexColor(hex string) {
	c.dc.SetHexColor(hex)
}

// SetLineWidth sets the stroke width.
func (c *Canvas) SetLineWidth(width float64) {
	c.dc.SetLineWidth(width)
}

// Save pushes the current transform.
func (c *Canvas) Save() {
	c.dc.Push()
}

// Restore pops the transform pushed by the matching Save.
func (c *Canvas) Restore() {
	c.dc.Pop()
}

// Translate moves the origin by (x, y).
func (c *Canvas) Translate(x, y float64) {
	c.dc.Translate(x, y)
}

// Scale scales the user space.
func (c *Canvas) Scale(x, y float64) {
	c.dc.Scale(x, y)
}

// Rotate rotates the user space by angle radians.
func (c *Canvas) Rotate(angle float64) {
	c.dc.Rotate(angle)
}

// ClearWithColor fills the whole canvas with col. The path is kept.
func (c *Canvas) ClearWithColor(col gg.RGBA) {
	c.dc.ClearWithColor(col)
}

// Image returns a copy of the canvas pixels.
func (c *Canvas) Image() *image.RGBA {
	img := c.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}

// Pixels returns the canvas as premultiplied RGBA bytes, row by row.
func (c *Canvas) Pixels() []byte {
	return c.Image().Pix
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}
