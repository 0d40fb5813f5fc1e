// Package logging builds the structured logger shared by the command-line tools.
package logging

import (
	"io"
	"log/slog"
)

var Levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var Formats = []string{"text", "json"}

// New creates a logger writing to out. Unknown levels fall back to info and unknown formats to text
func New(level, format string, out io.Writer) *slog.Logger {
	slogLevel, ok := Levels[level]
	if !ok {
		slogLevel = slog.LevelInfo
	}

	options := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(out, options)
	} else {
		handler = slog.NewTextHandler(out, options)
	}

	return slog.New(handler)
}
