// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas provides a gg-backed [ggevent.Surface].
//
// gg.Context clears its path on Fill and keeps it private, which leaves
// nothing to hit-test once a shape is painted. Canvas follows the HTML
// canvas model instead:
//
//   - BeginPath starts a fresh path
//   - Fill and Stroke paint the path and keep it
//   - IsPointInPath tests device pixels against the path, honouring the
//     fill rule and treating open subpaths as closed
//
// Path building goes through Canvas so that every segment is mirrored, with
// the current transform applied, into a gg.Path used for hit testing.
//
// # Usage
//
//	c, err := canvas.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	c.BeginPath()
//	c.Translate(100, 100)
//	c.Rect(0, 0, 50, 50)
//	c.SetRGB(0, 0, 1)
//	_ = c.Fill()
//
//	c.IsPointInPath(125, 125) // true
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use.
package canvas
