// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggevent

import "github.com/samber/lo"

// Surface is the part of a drawing context the shape lifecycle relies on.
// [github.com/gogpu/ggevent/canvas.Canvas] is the gg-backed implementation;
// anything with canvas2d-style path handling can satisfy it.
type Surface interface {
	// BeginPath discards the current path.
	BeginPath()

	// ClosePath closes the current subpath.
	ClosePath()

	// IsPointInPath reports whether the pixel coordinate lies inside the
	// current path.
	IsPointInPath(x, y float64) bool
}

// Point is a click position in surface pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// present reports whether s holds a usable surface. A typed nil pointer
// stored in S counts as missing.
func present[S Surface](s S) bool {
	return !lo.IsNil(s)
}
