package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs a JSON logger on stdout tagged with the service name and
// returns its handler so it can be combined with other sinks later.
func Setup(service string) slog.Handler {
	handler := NewJSONHandler(os.Stdout)
	slog.SetDefault(slog.New(handler).With("service", service))
	return handler
}

func NewJSONHandler(w io.Writer) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}
