// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command ggeventdemo opens a window with the demo scene. Click the shapes.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggevent"
	"github.com/gogpu/ggevent/canvas"
	"github.com/gogpu/ggevent/ebitenhost"
	"github.com/gogpu/ggevent/internal/demo"
	"github.com/pkg/profile"
	"github.com/quasilyte/gmath"
)

func main() {
	var (
		width      = flag.Int("width", 640, "canvas width")
		height     = flag.Int("height", 360, "canvas height")
		scale      = flag.Int("scale", 2, "window scale")
		verbose    = flag.Bool("v", false, "debug logging")
		cpuprofile = flag.String("cpuprofile", "", "write a CPU profile into `dir`")
	)
	flag.Parse()

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile)).Stop()
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ggevent.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	c, err := canvas.New(*width, *height)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	scene := demo.New(c)

	game, err := ebitenhost.New(scene.Helper)
	if err != nil {
		log.Fatal(err)
	}
	game.OnHits = func(n int, at gmath.Vec) {
		if n == 0 {
			return
		}
		ggevent.Logger().Info("hit",
			"at", at,
			"circle", scene.CircleClicks,
			"button", scene.ButtonClicks,
			"star", scene.StarClicks)
	}

	if err := ebitenhost.Run(game, "ggevent demo", *scale); err != nil {
		log.Fatal(err)
	}
}
