package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
)

// newLogger builds the process logger: tinted output on stderr, or a JSON
// handler appending to logFile so the chat surface stays clean. A log file
// that cannot be opened falls back to stderr with a warning.
func newLogger(verbose bool, logFile string) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	if logFile != "" {
		file, err := openLogFile(logFile)
		if err == nil {
			return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{
				Level: level,
			}))
		}
		fmt.Fprintf(os.Stderr, "warning: %v, logging to stderr\n", err)
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	}))
}

// openLogFile opens path for appending, creating parent directories. The
// file stays open for the process lifetime.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
