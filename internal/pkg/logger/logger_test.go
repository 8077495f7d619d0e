package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestInitSlog(t *testing.T) {
	zapLogger, err := NewZapLogger("warn")
	require.NoError(t, err)
	assert.True(t, zapLogger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, zapLogger.Core().Enabled(zapcore.InfoLevel))

	InitSlog(zapLogger, "warn")
	assert.True(t, Enabled(slog.LevelError))
	assert.False(t, Enabled(slog.LevelDebug))

	adapter := NewSlogAdapter()
	adapter.Info("suppressed")
	adapter.Warn("visible", "key", "value")
}
