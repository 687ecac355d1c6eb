// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggevent makes shapes drawn on a 2D surface clickable.
//
// # Overview
//
// A [Shape] bundles three optional callbacks: one that draws, one that
// closes the path (fill, stroke, or anything else), and one that runs when
// the shape is clicked. A [Helper] owns the shapes and the surface. Each
// pass walks the shapes in insertion order and runs the lifecycle
//
//	PreDraw  -> begin a new path (skip the shape when nothing can be drawn)
//	Draw     -> DrawFunc builds the path
//	PostDraw -> hit-test the click against that path, then close it
//
// Hit testing is delegated to the surface, which already knows the path the
// shape just built.
//
// # Quick Start
//
//	c, _ := canvas.New(640, 480)
//	h := ggevent.NewHelper(c)
//
//	h.Add(&ggevent.Shape[*canvas.Canvas]{
//	    DrawFunc: func(c *canvas.Canvas) {
//	        c.SetRGB(1, 0, 0)
//	        c.Circle(320, 240, 80)
//	    },
//	    CloseFunc: canvas.FillCloser(c),
//	    ClickFunc: func() { fmt.Println("circle clicked") },
//	})
//
//	h.DrawShapes()       // every frame
//	n := h.OnClick(x, y) // on pointer press, n callbacks ran
//
// # Missing collaborators
//
// A missing surface, draw function or close function is never an error:
// the step is skipped and a debug record is written to [Logger].
//
// # Thread Safety
//
// Helper is not safe for concurrent use. The click coordinate is passed
// through each pass rather than stored, so a callback that triggers another
// pass cannot corrupt the one in progress.
package ggevent
