package logging

import (
	"io"
	"log/slog"
	"os"
)

// New initializes a new slog logger writing to stdout and sets it as the default.
// format is "json" for production; anything else selects the text handler
// used during development.
func New(format string) *slog.Logger {
	logger := NewWithWriter(os.Stdout, format)
	slog.SetDefault(logger)
	return logger
}

// NewWithWriter builds the logger without installing it, which lets tests and
// the CLI direct output elsewhere.
func NewWithWriter(w io.Writer, format string) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true, // Adds source file and line number
		})
	}
	return slog.New(handler)
}
