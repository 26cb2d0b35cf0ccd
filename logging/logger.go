// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug
// any structured logger. It also offers a richer KernelLogger with a
// component/run tag and domain specific logging helpers for grounded-atom
// calls and reduction runs.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled
// from slog.
type LogLevel int

const (
	// LogLevelTrace is the finest logging level, used for the
	// step-by-step execution detail spec §7 calls "trace" (e.g. which
	// branch interpret_step takes for the atom it popped). Grounded in the
	// original C++'s clog::trace, which the teacher's logger had no
	// equivalent for.
	LogLevelTrace LogLevel = iota
	// LogLevelDebug is the debug logging level.
	LogLevelDebug
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
	case LogLevelTrace:
		return "TRACE"
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

// slogLevelTrace has no slog equivalent; slog.LevelDebug-4 is the
// conventional way to sit one notch below Debug.
const slogLevelTrace = slog.LevelDebug - 4

// Logger defines the minimal logging interface used across the kernel.
// This allows users to provide their own logger implementation or use the
// built-in adapters.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Trace logs at the sub-Debug trace level.
func (s *SlogAdapter) Trace(msg string, args ...any) { s.Logger.Log(context.Background(), slogLevelTrace, msg, args...) }

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

// KernelLogger wraps slog.Logger tagging every entry with the reducer
// component that emitted it (interpreter, match, strategy, grounded, llm)
// and, once a run is underway, the space/run identifier it belongs to. It
// is cheap to copy via WithComponent/WithRun, which return a tagged clone
// rather than mutating the receiver, so a shared *KernelLogger can be
// specialized per call site without data races.
type KernelLogger struct {
	logger    *slog.Logger
	level     LogLevel
	component string // e.g. "interpreter", "match", "strategy", "grounded"
	spaceName string
	runID     string
}

// LoggerConfig configures construction of a KernelLogger.
type LoggerConfig struct {
	Level     LogLevel
	Format    string // json or text
	Output    io.Writer
	AddSource bool
	Component string
}

// DefaultLoggerConfig returns a baseline JSON debug level configuration —
// debug, not info, because the kernel's own diagnostic traffic (spec §7)
// lives at Trace/Debug.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelDebug, Format: "json", Output: os.Stdout, AddSource: true}
}

// NewLogger builds a KernelLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *KernelLogger {
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
	return &KernelLogger{logger: slog.New(handler), level: cfg.Level, component: cfg.Component}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelTrace:
		return slogLevelTrace
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

// WithComponent returns a clone tagged with the logical component that is
// about to log — grounded.Func.Execute and strategy.RunToFixpoint both call
// this once per invocation so LogGroundedCall/LogRun entries carry it.
func (l *KernelLogger) WithComponent(c string) *KernelLogger {
	nl := *l
	nl.component = c
	return &nl
}

// WithRun returns a clone tagged with a space name and a run identifier —
// e.g. the uuid correlating one grounded/llm.Call, or the space a
// strategy.RunToFixpoint call is driving.
func (l *KernelLogger) WithRun(spaceName, runID string) *KernelLogger {
	nl := *l
	nl.spaceName = spaceName
	nl.runID = runID
	return &nl
}

func (l *KernelLogger) buildAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}
	if l.spaceName != "" {
		attrs = append(attrs, slog.String("space", l.spaceName))
	}
	if l.runID != "" {
		attrs = append(attrs, slog.String("run_id", l.runID))
	}
	return attrs
}

func (l *KernelLogger) log(level slog.Level, allowed bool, msg string, args ...interface{}) {
	if !allowed {
		return
	}
	attrs := l.buildAttrs()
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Trace logs at the kernel's finest diagnostic level.
func (l *KernelLogger) Trace(msg string, args ...interface{}) {
	l.log(slogLevelTrace, l.level <= LogLevelTrace, msg, args...)
}

// Debug logs at debug level.
func (l *KernelLogger) Debug(msg string, args ...interface{}) {
	l.log(slog.LevelDebug, l.level <= LogLevelDebug, msg, args...)
}

// Info logs at info level.
func (l *KernelLogger) Info(msg string, args ...interface{}) {
	l.log(slog.LevelInfo, l.level <= LogLevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *KernelLogger) Warn(msg string, args ...interface{}) {
	l.log(slog.LevelWarn, l.level <= LogLevelWarn, msg, args...)
}

// Error logs at error level.
func (l *KernelLogger) Error(msg string, args ...interface{}) {
	l.log(slog.LevelError, l.level <= LogLevelError, msg, args...)
}

// LogGroundedCall records execution details for a Grounded atom's Execute
// call. Grounded on the teacher's LogToolCall — a Grounded atom's Execute is
// this kernel's analogue of a tool call.
func (l *KernelLogger) LogGroundedCall(name string, dur time.Duration, success bool, err error) {
	attrs := l.buildAttrs()
	attrs = append(attrs, slog.String("grounded_name", name), slog.Duration("duration", dur), slog.Bool("success", success))
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	level := slog.LevelDebug
	msg := "grounded call completed"
	if !success {
		level = slog.LevelError
		msg = "grounded call failed"
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// LogLLMCall records model call latency, token usage and success — kept
// verbatim in spirit for grounded/llm's anthropic/openai backed calls.
func (l *KernelLogger) LogLLMCall(model string, tokens int, dur time.Duration, success bool, err error) {
	attrs := l.buildAttrs()
	attrs = append(attrs, slog.String("model", model), slog.Int("token_count", tokens), slog.Duration("duration", dur), slog.Bool("success", success))
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	level := slog.LevelInfo
	msg := "LLM call completed"
	if !success {
		level = slog.LevelError
		msg = "LLM call failed"
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// LogRun records aggregate metrics for a strategy.RunToFixpoint invocation.
// Grounded on the teacher's LogFlowExecution, generalized from flow runs to
// reduction runs.
func (l *KernelLogger) LogRun(spaceName string, steps int, dur time.Duration, stabilized bool, err error) {
	attrs := l.buildAttrs()
	attrs = append(attrs, slog.String("space", spaceName), slog.Int("step_count", steps), slog.Duration("duration", dur), slog.Bool("stabilized", stabilized))
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	level := slog.LevelInfo
	msg := "reduction run completed"
	if err != nil {
		level = slog.LevelError
		msg = "reduction run failed"
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// NoOpLogger discards all log messages. Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// Trace logs a trace message.
func (NoOpLogger) Trace(string, ...any) {}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// NewSlogLogger creates a new KernelLogger with the specified configuration.
func NewSlogLogger(level LogLevel, format string, addSource bool) *KernelLogger {
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if format != "" {
		cfg.Format = format
	}
	cfg.AddSource = addSource
	return NewLogger(cfg)
}
