package main

import (
	"io"
	"log/slog"
)

// Logger wraps slog.Logger so progress output stays off stdout, which carries answers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing text or JSON records to w.
func NewLogger(w io.Writer, format string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger discards all records.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}
