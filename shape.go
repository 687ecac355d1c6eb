// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggevent

// Shape is something drawn onto a surface that can react to clicks.
//
// Each field is optional. DrawFunc builds (and usually paints) the shape's
// path; CloseFunc finishes it, for example by filling or stroking, and
// replaces the surface's ClosePath when set; ClickFunc runs when a click
// lands inside the path DrawFunc built.
//
// A shape with neither DrawFunc nor CloseFunc is skipped by [Helper].
type Shape[S Surface] struct {
	// Name identifies the shape in log output.
	Name string

	DrawFunc  func(S)
	CloseFunc func()
	ClickFunc func()
}

// PreDraw prepares the surface for the shape. It reports false, without
// touching the surface, when the surface is missing or the shape has
// nothing to draw or close. Otherwise it begins a new path.
func (sh *Shape[S]) PreDraw(s S) bool {
	if sh == nil || !present(s) || (sh.DrawFunc == nil && sh.CloseFunc == nil) {
		Logger().Debug("ggevent: surface or draw function missing in PreDraw", sh.attrs()...)
		return false
	}
	s.BeginPath()
	return true
}

// Draw runs DrawFunc against the surface. It does nothing when either is
// missing.
func (sh *Shape[S]) Draw(s S) {
	if sh == nil || !present(s) || sh.DrawFunc == nil {
		Logger().Debug("ggevent: surface or draw function missing in Draw", sh.attrs()...)
		return
	}
	sh.DrawFunc(s)
}

// PostDraw hit-tests the click at against the path built by Draw, runs
// ClickFunc on a hit, and then closes the path with CloseFunc or, failing
// that, the surface's ClosePath. A nil at means no click accompanies this
// pass. PostDraw reports whether ClickFunc ran.
func (sh *Shape[S]) PostDraw(s S, at *Point) bool {
	if sh == nil || !present(s) {
		Logger().Debug("ggevent: surface missing in PostDraw", sh.attrs()...)
		return false
	}

	hit := false
	if sh.ClickFunc != nil && at != nil && s.IsPointInPath(at.X, at.Y) {
		sh.ClickFunc()
		hit = true
	}

	if sh.CloseFunc != nil {
		sh.CloseFunc()
	} else {
		s.ClosePath()
	}
	return hit
}

func (sh *Shape[S]) attrs() []any {
	if sh == nil {
		return []any{"shape", nil}
	}
	if sh.Name == "" {
		return nil
	}
	return []any{"shape", sh.Name}
}
