// Package logging provides structured logging configuration using slog.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// handlerType specifies the output format for the logger.
type handlerType int

const (
	handlerText handlerType = iota
	handlerJSON
)

// setup configures the global slog logger. Debug mode lowers the level from
// Info to Debug; output goes to w, defaulting to stderr.
func setup(debug bool, w io.Writer, ht handlerType) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if ht == handlerJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// Setup configures the global slog logger with text output.
func Setup(debug bool, w io.Writer) {
	setup(debug, w, handlerText)
}

// SetupJSON configures the global slog logger with JSON output, for runs whose
// stderr is consumed by machines (for example under an MCP host).
func SetupJSON(debug bool, w io.Writer) {
	setup(debug, w, handlerJSON)
}
