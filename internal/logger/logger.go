package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// countingHandler wraps another handler and counts warnings and errors, so
// that the CLI can report failed render passes on exit.
type countingHandler struct {
	inner  slog.Handler
	warns  *atomic.Int64
	errors *atomic.Int64
}

func (h *countingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *countingHandler) Handle(ctx context.Context, r slog.Record) error {
	switch {
	case r.Level >= slog.LevelError:
		h.errors.Add(1)
	case r.Level >= slog.LevelWarn:
		h.warns.Add(1)
	}
	return h.inner.Handle(ctx, r)
}

func (h *countingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &countingHandler{inner: h.inner.WithAttrs(attrs), warns: h.warns, errors: h.errors}
}

func (h *countingHandler) WithGroup(name string) slog.Handler {
	return &countingHandler{inner: h.inner.WithGroup(name), warns: h.warns, errors: h.errors}
}

var (
	// Log is the global structured logger
	Log *slog.Logger
	// LogPath is the path to the current log file, empty when logging to stderr
	LogPath string

	logWriter *lumberjack.Logger
	warnCount atomic.Int64
	errCount  atomic.Int64
)

// InitLogger initializes the global logger with the specified level. With an
// empty logPath, JSON records go to stderr; otherwise they go to a rotating
// file at logPath.
func InitLogger(level LogLevel, logPath string) {
	var writer io.Writer = os.Stderr
	LogPath = logPath
	if logPath != "" {
		logWriter = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		writer = logWriter
	}
	Log = New(writer, level)
	slog.SetDefault(Log)
}

// New returns a JSON logger writing to w that contributes to the package's
// warning and error counts.
func New(w io.Writer, level LogLevel) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level.slogLevel()})
	return slog.New(&countingHandler{
		inner:  jsonHandler,
		warns:  &warnCount,
		errors: &errCount,
	})
}

// Close closes the log file
func Close() {
	if logWriter != nil {
		logWriter.Close()
	}
}

// getLogger returns the global logger, or the default slog logger if not initialized.
func getLogger() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	getLogger().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	getLogger().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	getLogger().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	getLogger().Error(msg, args...)
}

// With creates a new logger with additional attributes
func With(args ...any) *slog.Logger {
	return getLogger().With(args...)
}

// Get returns the global logger.
func Get() *slog.Logger {
	return getLogger()
}

// GetCounts returns the number of warnings and errors logged so far.
func GetCounts() (warn, err int64) {
	return warnCount.Load(), errCount.Load()
}

// ClearCounts resets the warning and error counters.
func ClearCounts() {
	warnCount.Store(0)
	errCount.Store(0)
}
