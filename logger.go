// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggevent

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that discards every record.
// Enabled reports false so callers skip building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. SetLogger may race with logging from
// host callbacks, so access is atomic.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggevent and its sub-packages, and
// forwards it to gg so renderer diagnostics end up in the same place.
// By default nothing is logged. Pass nil to restore silence.
//
// Log levels used by ggevent:
//   - [slog.LevelDebug]: a lifecycle step was skipped because the surface,
//     draw function or close function is missing
//   - [slog.LevelInfo]: click hits reported by hosts
//   - [slog.LevelWarn]: fill or stroke failures inside close functions
//
// Example:
//
//	ggevent.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger. Sub-packages (canvas, ebitenhost) call
// it to share configuration with the root package.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
