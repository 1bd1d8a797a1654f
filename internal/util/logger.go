// internal/util/logger.go
package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var logger *slog.Logger

// InitLogger initializes the global structured logger at the given level.
// Logs go to stderr so they never interleave with the walkthrough output on stdout.
func InitLogger(level slog.Level) {
	logger = NewLogger(os.Stderr, level)
	slog.SetDefault(logger)
}

// NewLogger builds a JSON logger writing to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true, // Add file and line number to logs
		Level:     level,
	})
	return slog.New(handler)
}

// GetLogger returns the initialized global logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger(slog.LevelInfo)
	}
	return logger
}

// ParseLevel maps a textual level (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", s, ErrInvalidInput)
}
