package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log, err := New(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "entries", 2)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "entries=2")

	_, err = New(&buf, "nope")
	require.Error(t, err)
}
