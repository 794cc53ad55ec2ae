// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level,
// defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// New builds a tint logger writing to w. Colour is only used when w is a
// terminal-backed writer the caller vouches for.
func New(w io.Writer, level string, color bool) *slog.Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	})
	return slog.New(handler)
}

// InitLogger installs a stderr logger as the default.
func InitLogger(level string) *slog.Logger {
	logger := New(os.Stderr, level, true)
	slog.SetDefault(logger)
	return logger
}

// InitFileLogger installs a logger appending to path as the default. The
// terminal UI owns stdout and stderr, so its logs go to a file. An empty
// path discards logs.
func InitFileLogger(path, level string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		logger := New(io.Discard, level, false)
		slog.SetDefault(logger)
		return logger, io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := New(f, level, false)
	slog.SetDefault(logger)
	return logger, f, nil
}
