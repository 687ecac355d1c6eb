// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command ggeventshot renders the demo scene headlessly, replays clicks
// against it and saves the final frame as PNG.
//
//	ggeventshot -click 128,180 -click 320,180 -output shot.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggevent"
	"github.com/gogpu/ggevent/canvas"
	"github.com/gogpu/ggevent/internal/demo"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 360, "image height")
		output  = flag.String("output", "ggevent.png", "output file")
		verbose = flag.Bool("v", false, "debug logging")
		clicks  []gg.Point
	)
	flag.Func("click", "click position `x,y` (repeatable, applied in order)", func(s string) error {
		p, err := parsePoint(s)
		if err != nil {
			return err
		}
		clicks = append(clicks, p)
		return nil
	})
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ggevent.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	c, err := canvas.New(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Close()

	scene := demo.New(c)

	for _, p := range clicks {
		c.ClearWithColor(gg.White)
		n := scene.Helper.OnClick(p.X, p.Y)
		ggevent.Logger().Info("click", "x", p.X, "y", p.Y, "hits", n)
	}

	// Final frame reflects every click.
	c.ClearWithColor(gg.White)
	scene.Helper.DrawShapes()

	if err := c.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d): circle=%d button=%d star=%d\n",
		*output, *width, *height, scene.CircleClicks, scene.ButtonClicks, scene.StarClicks)
}

func parsePoint(s string) (gg.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gg.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return gg.Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return gg.Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return gg.Pt(x, y), nil
}
