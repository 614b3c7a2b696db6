// Package log provides the default ErrorHandler and the logger construction used by the binaries.
package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// NewDefault returns an instance of default error handler writing to the given logger.
// A nil logger falls back to slog.Default().
func NewDefault(l *slog.Logger) *Default {
	if l == nil {
		l = slog.Default()
	}

	return &Default{l}
}

// Default is the default implementation of the error handler.
type Default struct {
	l *slog.Logger
}

// Error logs the given error at error level.
func (d *Default) Error(ctx context.Context, err error) {
	d.l.ErrorContext(ctx, "request failed", slog.Any("error", err))
}

// New returns a JSON logger writing to w at the given level name (debug, info, warn, error).
// Unknown levels default to info.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
