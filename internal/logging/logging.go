// Package logging builds the zap loggers used by the example programs and tests.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a config level name to a zap level. The empty string means info.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zap.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// New returns a production (JSON) logger at the given level.
func New(level string) (*zap.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(l)
	return cfg.Build()
}

// NewConsole returns a human readable logger writing to stdout.
func NewConsole(level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		level,
	)
	return zap.New(consoleCore)
}

// Install replaces zap's global logger and returns a func that restores the
// previous one after syncing the installed logger.
func Install(logger *zap.Logger) func() {
	restore := zap.ReplaceGlobals(logger)
	return func() {
		// stdout sync fails on some terminals; nothing useful to do about it
		_ = logger.Sync()
		restore()
	}
}
