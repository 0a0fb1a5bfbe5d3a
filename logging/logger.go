package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// LogLevel is a thin enum for user friendly level configuration decoupled from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the minimal logging interface used by the dispatch engine.
// This allows users to provide their own logger implementation or use the built-in adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// Output formats accepted by LoggerConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatAuto = "auto"
)

// DispatchLogger wraps slog.Logger adding contextual cloning helpers and
// dispatch specific logging helpers. It is cheap to copy via With* methods.
type DispatchLogger struct {
	logger    *slog.Logger
	level     LogLevel
	context   map[string]any
	component string
	methodID  string
	method    string
}

// LoggerConfig configures construction of a DispatchLogger.
type LoggerConfig struct {
	Level       LogLevel
	Format      string // json, text or auto
	Output      io.Writer
	AddSource   bool
	Component   string
	CustomAttrs map[string]any
}

// DefaultLoggerConfig returns a baseline info level configuration writing to
// stderr, text on a terminal and JSON otherwise.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: FormatAuto, Output: os.Stderr, CustomAttrs: map[string]any{}}
}

// NewLogger builds a DispatchLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *DispatchLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if resolveFormat(cfg.Format, out) == FormatText {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	ctx := make(map[string]any, len(cfg.CustomAttrs))
	for k, v := range cfg.CustomAttrs {
		ctx[k] = v
	}
	return &DispatchLogger{logger: slog.New(handler), level: cfg.Level, context: ctx, component: cfg.Component}
}

// resolveFormat maps "auto" (or "") to text for terminals and JSON otherwise.
func resolveFormat(format string, out io.Writer) string {
	switch format {
	case FormatJSON, FormatText:
		return format
	}
	if f, ok := out.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return FormatText
		}
	}
	return FormatJSON
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *DispatchLogger) clone() *DispatchLogger {
	cp := *l
	cp.context = make(map[string]any, len(l.context))
	for k, v := range l.context {
		cp.context[k] = v
	}
	return &cp
}

// WithContext adds a key/value attribute that will be attached to every log entry.
func (l *DispatchLogger) WithContext(key string, value any) *DispatchLogger {
	nl := l.clone()
	nl.context[key] = value
	return nl
}

// WithComponent sets the logical component (method, table, example, etc.).
func (l *DispatchLogger) WithComponent(c string) *DispatchLogger {
	nl := l.clone()
	nl.component = c
	return nl
}

// WithMethod attaches multimethod identifiers.
func (l *DispatchLogger) WithMethod(id, name string) *DispatchLogger {
	nl := l.clone()
	nl.methodID = id
	nl.method = name
	return nl
}

func (l *DispatchLogger) buildAttrs() []any {
	attrs := make([]any, 0, len(l.context)+3)
	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}
	if l.methodID != "" {
		attrs = append(attrs, slog.String("method_id", l.methodID))
	}
	if l.method != "" {
		attrs = append(attrs, slog.String("method", l.method))
	}
	for k, v := range l.context {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}

func (l *DispatchLogger) log(level slog.Level, allowed bool, msg string, args ...any) {
	if !allowed {
		return
	}
	l.logger.Log(context.Background(), level, msg, append(l.buildAttrs(), args...)...)
}

// Debug logs at debug level.
func (l *DispatchLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, l.level <= LogLevelDebug, msg, args...)
}

// Info logs at info level.
func (l *DispatchLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, l.level <= LogLevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *DispatchLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, l.level <= LogLevelWarn, msg, args...)
}

// Error logs at error level.
func (l *DispatchLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, l.level <= LogLevelError, msg, args...)
}

// LogResolution records how a single invocation was resolved and how long the
// selected handler ran. Failed handlers are logged at error level.
func (l *DispatchLogger) LogResolution(source string, dur time.Duration, err error) {
	args := []any{slog.String("source", source), slog.Duration("duration", dur), slog.Bool("success", err == nil)}
	if err != nil {
		l.Error("multimethod.invoke.failed", append(args, slog.String("error", err.Error()))...)
		return
	}
	l.Debug("multimethod.invoke.completed", args...)
}

// LogUnmatched records an invocation that no branch answered. It is an
// expected outcome, and clone chains report it once per level, so it is
// logged at debug level.
func (l *DispatchLogger) LogUnmatched(source string, dur time.Duration, err error) {
	l.Debug("multimethod.invoke.unmatched", slog.String("source", source), slog.Duration("duration", dur), slog.String("error", err.Error()))
}

// NoOpLogger discards all log messages. Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// NewSlogLogger creates a new DispatchLogger with the specified configuration.
func NewSlogLogger(level LogLevel, format string, addSource bool) *DispatchLogger {
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if format != "" {
		cfg.Format = format
	}
	cfg.AddSource = addSource
	return NewLogger(cfg)
}
