package loom

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records. Enabled returns false so callers
// skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger used by loom. By default loom produces
// no log output. Pass nil to restore the silent default.
//
// Levels used by loom:
//   - slog.LevelDebug: per-dispatch diagnostics (region growth, layout)
//   - slog.LevelWarn: protocol violations (out-of-range layout sizes,
//     non-finite geometry, env misuse). The frame always continues with
//     best-effort geometry.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current loom logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
