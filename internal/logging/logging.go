// Package logging provides the leveled, structured logger used across inputq.
package logging

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
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

// ParseLogLevel parses a string into a LogLevel. Unknown names yield info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug", "DEBUG":
		return LogLevelDebug
	case "info", "INFO":
		return LogLevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LogLevelWarn
	case "error", "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// ValidLogLevel reports whether s is a level name accepted on the command line.
func ValidLogLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix names the logger in every line.
	Prefix string
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelInfo,
		Output: os.Stderr,
		Prefix: "inputq",
	}
}

// Logger provides leveled, structured logging. Loggers derived with
// WithField share level, output and enablement with their parent.
type Logger struct {
	sugar    *zap.SugaredLogger
	level    zap.AtomicLevel
	out      *swapWriter
	disabled *atomic.Bool
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	level := zap.NewAtomicLevelAt(cfg.Level.zapLevel())
	out := &swapWriter{w: cfg.Output}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.CallerKey = ""
	encCfg.StacktraceKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(out), level)
	base := zap.New(core)
	if cfg.Prefix != "" {
		base = base.Named(cfg.Prefix)
	}

	return &Logger{
		sugar:    base.Sugar(),
		level:    level,
		out:      out,
		disabled: new(atomic.Bool),
	}
}

// NullLogger is a logger that discards all output.
var NullLogger = newNop()

func newNop() *Logger {
	l := &Logger{
		sugar:    zap.NewNop().Sugar(),
		level:    zap.NewAtomicLevelAt(zapcore.FatalLevel),
		out:      &swapWriter{w: io.Discard},
		disabled: new(atomic.Bool),
	}
	l.disabled.Store(true)
	return l
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.with(key, value)
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return l.with(args...)
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

func (l *Logger) with(args ...any) *Logger {
	return &Logger{
		sugar:    l.sugar.With(args...),
		level:    l.level,
		out:      l.out,
		disabled: l.disabled,
	}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.level.SetLevel(level.zapLevel())
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.out.set(w)
}

// Disable disables all logging.
func (l *Logger) Disable() {
	l.disabled.Store(true)
}

// Enable enables logging.
func (l *Logger) Enable() {
	l.disabled.Store(false)
}

// Debug logs a debug message. Args format the message printf-style.
func (l *Logger) Debug(msg string, args ...any) {
	if !l.disabled.Load() {
		l.sugar.Debugf(msg, args...)
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	if !l.disabled.Load() {
		l.sugar.Infof(msg, args...)
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	if !l.disabled.Load() {
		l.sugar.Warnf(msg, args...)
	}
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	if !l.disabled.Load() {
		l.sugar.Errorf(msg, args...)
	}
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// swapWriter lets SetOutput redirect every logger sharing it.
type swapWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *swapWriter) set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}
