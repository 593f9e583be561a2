// Package logger builds the application logger from configuration.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"bunsetsu/config"
)

// New creates a *slog.Logger from cfg and installs it as the default.
// Format "json" produces structured output; anything else is the
// human-readable text handler. Output goes to stderr so command results on
// stdout stay clean.
func New(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
