package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *slog.Logger

// ParseLevel maps a level name to a slog level; unknown names map to INFO.
func ParseLevel(levelStr string) (slog.Level, bool) {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO", "":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewZapLogger builds the zap logger behind slog. It writes to stderr so that
// command output on stdout stays clean.
func NewZapLogger(levelStr string) (*zap.Logger, error) {
	level, _ := ParseLevel(levelStr)

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.Level = zap.NewAtomicLevelAt(toZapLevel(level))
	zapCfg.DisableStacktrace = true
	return zapCfg.Build()
}

func toZapLevel(level slog.Level) zapcore.Level {
	switch {
	case level <= slog.LevelDebug:
		return zapcore.DebugLevel
	case level <= slog.LevelInfo:
		return zapcore.InfoLevel
	case level <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// InitSlog installs a slog logger backed by zapLogger as the global and default logger.
func InitSlog(zapLogger *zap.Logger, levelStr string) {
	level, ok := ParseLevel(levelStr)

	handlerOptions := slogzap.Option{
		Level:  level,
		Logger: zapLogger,
	}
	globalLogger = slog.New(handlerOptions.NewZapHandler())
	slog.SetDefault(globalLogger)

	if !ok {
		globalLogger.Warn("Invalid log level string, defaulting to INFO", "input", levelStr)
	}
}

func ensureInitialized() {
	if globalLogger == nil {
		globalLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

// Debug logs a message at DebugLevel.
func Debug(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Debug(msg, args...)
}

// Info logs a message at InfoLevel.
func Info(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Info(msg, args...)
}

// Warn logs a message at WarnLevel.
func Warn(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Warn(msg, args...)
}

// Error logs a message at ErrorLevel.
func Error(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Error(msg, args...)
}

// Enabled reports whether messages at level would be logged.
func Enabled(level slog.Level) bool {
	ensureInitialized()
	return globalLogger.Enabled(context.Background(), level)
}
