// Package logger builds the slog.Logger handed to jarray by the CLI.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`  // DEBUG, INFO, WARN, ERROR
	Format string `mapstructure:"format"` // text, json
	Output string `mapstructure:"output"` // stdout, stderr, or file path
}

// ParseLevel maps a level name to its slog.Level. Matching is case
// insensitive and an empty name means INFO.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// ValidFormat reports whether format names a supported handler.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "text", "json", "":
		return true
	default:
		return false
	}
}

// New builds a logger from cfg. The returned closer releases the log file
// when Output is a path and is a no-op otherwise.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if !ValidFormat(cfg.Format) {
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		w = os.Stdout
	case "stderr", "":
		w = os.Stderr
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", cfg.Output, err)
		}
		w, closer = f, f
	}

	return NewWithWriter(w, level, cfg.Format), closer, nil
}

// NewWithWriter builds a logger writing to w. Used directly by tests.
func NewWithWriter(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
