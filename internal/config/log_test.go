package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
		ok    bool
	}{
		{value: "", want: slog.LevelInfo, ok: true},
		{value: "debug", want: slog.LevelDebug, ok: true},
		{value: "INFO", want: slog.LevelInfo, ok: true},
		{value: "Warn", want: slog.LevelWarn, ok: true},
		{value: "ERROR", want: slog.LevelError, ok: true},
		{value: "verbose", want: slog.LevelInfo, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			level, ok := parseLogLevel(tt.value)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, level)
		})
	}
}
