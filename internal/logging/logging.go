// Package logging builds the charmbracelet/log loggers used across the
// program. The interactive TUI owns the terminal, so its logs go to a file
// or nowhere; the SSH server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Level  string    // debug, info, warn, error; empty means info
	File   string    // Append to this file when set
	Prefix string    // Shown before every message
	Output io.Writer // Used when File is empty; nil discards
}

// Logger is a logger plus the file it may own.
type Logger struct {
	*log.Logger
	closer io.Closer
}

// New builds a logger from opts.
func New(opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	var (
		w      = opts.Output
		closer io.Closer
	)
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("logging: cannot open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = io.Discard
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return &Logger{Logger: l, closer: closer}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l, _ := New(Options{})
	return l
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
