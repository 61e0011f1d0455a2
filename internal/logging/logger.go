// Package logging provides a structured logging wrapper around Go's log/slog
// with file output, log rotation and timing helpers.
//
// A terminal UI owns stdout, so logs only ever go to a file. Without a file
// every call is a noop.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger.
type Logger struct {
	logger *slog.Logger
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	// FormatText outputs human-readable text logs
	FormatText LogFormat = "text"
	// FormatJSON outputs structured JSON logs
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the path to the log file (empty = no logging)
	FilePath string
	// Level is the minimum log level
	Level slog.Level
	// Format is the output format (text or json)
	Format LogFormat
	// MaxSizeMB is the maximum size in MB before rotation
	MaxSizeMB int
	// MaxBackups is the maximum number of old log files to keep
	MaxBackups int
}

var (
	mu           sync.Mutex
	globalLogger *Logger
	writer       *lumberjack.Logger
	noopLogger   = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init initializes the global logger. An empty FilePath disables logging.
// Calling Init again closes the previous log file.
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	closeWriter()

	if config.FilePath == "" {
		globalLogger = noopLogger
		return nil
	}

	writer = &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	globalLogger = &Logger{logger: slog.New(handler)}
	return nil
}

// Get returns the global logger, or a noop logger before Init.
func Get() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

// Component returns the global logger tagged with a component name.
func Component(name string) *Logger {
	return Get().With("component", name)
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a new Logger with the given key-value pairs added as context
func (l *Logger) With(args ...any) *Logger {
	if l == noopLogger {
		return l
	}
	return &Logger{logger: l.logger.With(args...)}
}

// IsEnabled returns true if logging is enabled (not noop)
func (l *Logger) IsEnabled() bool {
	return l != noopLogger
}

// Package-level convenience functions

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// IsEnabled returns true if logging is enabled globally
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts a level name to slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// ParseFormat converts a format name to LogFormat.
func ParseFormat(format string) (LogFormat, error) {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON, nil
	case "text", "":
		return FormatText, nil
	default:
		return FormatText, fmt.Errorf("unknown log format %q", format)
	}
}

// Shutdown closes the log file and disables logging.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	globalLogger = noopLogger
	return closeWriter()
}

func closeWriter() error {
	if writer == nil {
		return nil
	}
	err := writer.Close()
	writer = nil
	return err
}
