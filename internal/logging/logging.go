// Package logging configures process-wide structured logging and hands out
// component-scoped child loggers.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Init installs the default slog handler. If w is nil, os.Stderr is used.
// Format must be "text" or "json"; anything else falls back to text.
func Init(level slog.Level, format string, w ...io.Writer) {
	var writer io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		writer = w[0]
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// Child returns a logger tagged with the originating component name.
func Child(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
