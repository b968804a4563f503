package vklayers

import (
	"log/slog"
	"os"
)

// NewLogger builds the logger the layers hand to their subpackages.
// Interception events log at debug so an enabled layer stays quiet in
// normal runs; compile failures and malformed chains log at warn.
func NewLogger(s Settings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(s.LogLevel)}

	var handler slog.Handler
	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
