package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type LoggerConfiguration struct {
	LogLevel slog.Level
	Writer   io.Writer
}

// NewLogger builds a text slog logger writing to config.Writer, stderr when unset.
func NewLogger(config *LoggerConfiguration) *slog.Logger {
	if config.Writer == nil {
		config.Writer = os.Stderr
	}

	return slog.New(slog.NewTextHandler(config.Writer, &slog.HandlerOptions{
		Level: config.LogLevel,
	}))
}

// ParseLevel maps debug, info, warn and error (any case) to a slog.Level.
// Anything else is info.
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

// SetDefault sets the default logger
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// G returns the global logger instance
func G() *slog.Logger {
	return slog.Default()
}

// Game returns a logger scoped to the game loop.
func Game() *slog.Logger {
	return slog.With("component", "game")
}

// UI returns a logger scoped to rendering and input.
func UI() *slog.Logger {
	return slog.With("component", "ui")
}
