// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	// Non-zero hit testing, 14pt Go Regular labels
//	c, err := canvas.New(800, 600)
//
//	// Even-odd hit testing and larger labels
//	c, err := canvas.New(800, 600, canvas.WithFillRule(gg.FillRuleEvenOdd), canvas.WithFontSize(20))
type Option func(*options)

type options struct {
	fillRule    gg.FillRule
	fontSize    float64
	fontSource  *text.FontSource
	contextOpts []gg.ContextOption
}

func defaultOptions() options {
	return options{
		fillRule: gg.FillRuleNonZero,
		fontSize: DefaultFontSize,
	}
}

// WithFillRule sets the rule used both for filling and for IsPointInPath.
func WithFillRule(rule gg.FillRule) Option {
	return func(o *options) {
		o.fillRule = rule
	}
}

// WithFontSize sets the label size in points. Non-positive sizes are ignored.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithFontSource uses src for labels instead of the bundled Go Regular font.
// The caller keeps ownership of src.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.fontSource = src
	}
}

// WithContextOptions passes options through to gg.NewContext. It has no
// effect on Wrap.
//
//	c, err := canvas.New(800, 600, canvas.WithContextOptions(gg.WithPixmap(pm)))
func WithContextOptions(opts ...gg.ContextOption) Option {
	return func(o *options) {
		o.contextOpts = append(o.contextOpts, opts...)
	}
}
