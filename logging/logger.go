package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
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

// Logger defines the minimal logging interface for DialogMesh.
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

// DialogLogger wraps slog.Logger adding contextual cloning helpers and
// dialogue convenience methods. It is cheap to copy via With* methods.
type DialogLogger struct {
	logger    *slog.Logger
	level     LogLevel
	component string
	sessionID string
	turn      int
}

// LoggerConfig configures construction of a DialogLogger.
type LoggerConfig struct {
	Level     LogLevel
	Format    string // json or text
	Output    io.Writer
	AddSource bool
	Component string
	SessionID string
}

// DefaultLoggerConfig returns a baseline JSON info level configuration.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "json", Output: os.Stdout}
}

// NewLogger builds a DialogLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *DialogLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(cfg.Output, opts)
	} else {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	}
	return &DialogLogger{logger: slog.New(handler), level: cfg.Level, component: cfg.Component, sessionID: cfg.SessionID}
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

// WithComponent sets the logical component (engine, nlu, nlg, domain).
func (l *DialogLogger) WithComponent(c string) *DialogLogger {
	nl := *l
	nl.component = c
	return &nl
}

// WithSession attaches a session identifier.
func (l *DialogLogger) WithSession(sid string) *DialogLogger {
	nl := *l
	nl.sessionID = sid
	return &nl
}

// WithTurn attaches the current turn number.
func (l *DialogLogger) WithTurn(turn int) *DialogLogger {
	nl := *l
	nl.turn = turn
	return &nl
}

func (l *DialogLogger) buildAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 4)
	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}
	if l.sessionID != "" {
		attrs = append(attrs, slog.String("session_id", l.sessionID))
	}
	if l.turn > 0 {
		attrs = append(attrs, slog.Int("turn", l.turn))
	}
	return attrs
}

func (l *DialogLogger) log(level slog.Level, allowed bool, msg string, args ...any) {
	if !allowed {
		return
	}
	attrs := l.buildAttrs()
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			attrs = append(attrs, slog.Any(key, args[i+1]))
		}
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Debug logs at debug level.
func (l *DialogLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, l.level <= LogLevelDebug, msg, args...)
}

// Info logs at info level.
func (l *DialogLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, l.level <= LogLevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *DialogLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, l.level <= LogLevelWarn, msg, args...)
}

// Error logs at error level.
func (l *DialogLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, l.level <= LogLevelError, msg, args...)
}

// LogInterpretation records the outcome of interpreting a user utterance.
func (l *DialogLogger) LogInterpretation(utterance string, move string, dur time.Duration, err error) {
	attrs := l.buildAttrs()
	attrs = append(attrs, slog.String("utterance", utterance), slog.Duration("duration", dur))
	level := slog.LevelInfo
	msg := "Interpretation completed"
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		level = slog.LevelError
		msg = "Interpretation failed"
	} else if move == "" {
		attrs = append(attrs, slog.Bool("understood", false))
		msg = "Interpretation yielded no move"
	} else {
		attrs = append(attrs, slog.String("move", move))
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// LogTurn records aggregate turn metrics.
func (l *DialogLogger) LogTurn(systemMove string, dur time.Duration) {
	attrs := l.buildAttrs()
	attrs = append(attrs, slog.Duration("duration", dur))
	if systemMove != "" {
		attrs = append(attrs, slog.String("system_move", systemMove))
	}
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, "Turn completed", attrs...)
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

// NewSlogLogger creates a new DialogLogger with the specified configuration.
func NewSlogLogger(level LogLevel, format string, addSource bool) *DialogLogger {
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if format != "" {
		cfg.Format = format
	}
	cfg.AddSource = addSource
	return NewLogger(cfg)
}
