// Package log builds the slog.Logger used by the inputsim binary.
//
// Without a log file, records below error go to stdout and errors go to
// stderr. With a log file, the console gets everything on stderr so stdout
// stays clean for command output.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace sits below Debug and additionally enables the raw batch dump.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to a slog.Level. Unknown names yield Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MultiHandler fans out records to multiple handlers.
type MultiHandler struct{ hs []slog.Handler }

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		_ = h.Handle(ctx, r.Clone())
	}
	return nil
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return MultiHandler{hs: m.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })}
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	return MultiHandler{hs: m.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })}
}

func (m MultiHandler) each(fn func(slog.Handler) slog.Handler) []slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = fn(h)
	}
	return out
}

// LevelFilter passes a record to h only when pass accepts its level.
type LevelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// ConsoleHandler splits output by severity: errors to stderr, the rest to
// stdout.
func ConsoleHandler(stdout, stderr io.Writer, level slog.Level) slog.Handler {
	return MultiHandler{hs: []slog.Handler{
		LevelFilter{
			pass: func(l slog.Level) bool { return l < slog.LevelError },
			h:    slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level}),
		},
		LevelFilter{
			pass: func(l slog.Level) bool { return l >= slog.LevelError },
			h:    slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelError}),
		},
	}}
}

// SetupLogger builds the process logger. The returned closers must be closed
// on exit.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	if logFile == "" {
		return slog.New(ConsoleHandler(os.Stdout, os.Stderr, level)), nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(MultiHandler{hs: []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
		slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}),
	}})
	return logger, []io.Closer{f}, nil
}
