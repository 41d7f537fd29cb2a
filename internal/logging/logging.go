// Package logging configures the structured JSON logger. The terminal is
// owned by the UI, so records go to a file instead of stdout.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger bundles the slog logger with its level and the file it writes to.
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
	file  *os.File
}

// Open creates the parent directories of path, opens the file for append
// and returns a JSON logger at the given level. An empty path discards all
// records.
func Open(path, level string) (*Logger, error) {
	lv := &slog.LevelVar{}
	lv.Set(ParseLevel(level))

	if strings.TrimSpace(path) == "" {
		return &Logger{Logger: newLogger(io.Discard, lv), level: lv}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Logger{Logger: newLogger(file, lv), level: lv, file: file}, nil
}

// New returns a logger writing JSON records to w.
func New(w io.Writer, level string) *Logger {
	lv := &slog.LevelVar{}
	lv.Set(ParseLevel(level))
	return &Logger{Logger: newLogger(w, lv), level: lv}
}

func newLogger(w io.Writer, lv *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lv,
		AddSource: false,
	}))
}

// SetLevel changes the minimum level at runtime.
func (l *Logger) SetLevel(level string) {
	l.level.Set(ParseLevel(level))
}

// Level reports the current minimum level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
