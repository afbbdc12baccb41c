package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a slog.Logger writing JSON records to w at the given level.
// The level name is parsed with Level; unknown or empty names mean info.
func New(level string, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       Level(level),
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// Level parses a textual level name into a slog.Level. Names are matched
// case-insensitively; anything unrecognized defaults to info.
func Level(name string) slog.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
