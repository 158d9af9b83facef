// Package logging provides structured logging for tabgroups.
// It wraps Go's log/slog package to produce JSON-formatted logs so the
// silent-failure paths of the registry (host capture faults, backend read
// faults) leave a debuggable trail without surfacing errors to callers.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger provides structured logging with persistent attributes.
// It is safe for concurrent use.
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

// NewLogger creates a Logger that writes JSON-formatted logs to logPath.
// If logPath is empty, logs go to stderr.
func NewLogger(logPath string, level string) (*Logger, error) {
	var writer io.Writer
	var file *os.File

	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		var err error
		file, err = os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writer = file
	} else {
		writer = os.Stderr
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return &Logger{
		logger: slog.New(handler),
		file:   file,
	}, nil
}

// Nop returns a Logger that discards everything. Used as the default when
// callers do not care about logs, so the registry never nil-checks.
func Nop() *Logger {
	handler := slog.NewJSONHandler(io.Discard, nil)
	return &Logger{logger: slog.New(handler)}
}

// parseLevel converts a string log level to slog.Level.
// Defaults to INFO if the level string is not recognized.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithWorkspace returns a child Logger with the workspace key added to all entries.
func (l *Logger) WithWorkspace(key string) *Logger {
	return &Logger{logger: l.logger.With(slog.String("workspace", key)), file: l.file}
}

// With returns a child Logger with arbitrary key-value attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), file: l.file}
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs a message at INFO level.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a message at WARN level.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
