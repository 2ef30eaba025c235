package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions configures where and how much the Logger writes
type LogOptions struct {
	Level      string
	File       string // rotating log file, empty disables it
	MaxSizeMB  int
	MaxBackups int
}

// Logger wraps slog with printf-style level methods
type Logger struct {
	slog   *slog.Logger
	closer io.Closer
}

// NewLogger creates a logger writing to stderr and, optionally, a rotating file
func NewLogger(opts LogOptions) *Logger {
	var out io.Writer = os.Stderr
	var closer io.Closer
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stderr, rotator)
		closer = rotator
	}
	l := NewLoggerTo(out, opts.Level)
	l.closer = closer
	return l
}

// NewLoggerTo creates a logger writing to w, mostly useful in tests
func NewLoggerTo(w io.Writer, level string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{slog: slog.New(handler)}
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.slog.Info(fmt.Sprintf(msg, args...))
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.slog.Warn(fmt.Sprintf(msg, args...))
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.slog.Error(fmt.Sprintf(msg, args...))
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.slog.Debug(fmt.Sprintf(msg, args...))
}

func parseLevel(level string) slog.Level {
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
