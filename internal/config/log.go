package config

import (
	"log/slog"
	"os"
	"strings"
)

// SetLogLevel installs the default slog logger, reading the level from LOG_LEVEL.
func SetLogLevel() {
	level, ok := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if !ok {
		slog.Error("Invalid log level", "level", os.Getenv("LOG_LEVEL"))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func parseLogLevel(value string) (slog.Level, bool) {
	switch strings.ToUpper(value) {
	case "", "INFO":
		return slog.LevelInfo, true
	case "DEBUG":
		return slog.LevelDebug, true
	case "WARN":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
