// Package logging provides a minimal logging interface and adapters used
// throughout the atomspace kernel for observability.
//
// The Logger interface defines the standard logging methods (Trace, Debug,
// Info, Warn, Error) that interpreter.Step, match.Match and the strategy/
// grounded packages use. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - KernelLogger, a richer logger with contextual helpers and domain
//     convenience methods
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "json", false)
//	it := interpreter.New(interpreter.WithLogger(logger))
//
// Per spec §7, the kernel itself only ever logs at Trace/Debug — it returns
// errors rather than logging them as Warn/Error; Warn/Error are available
// for host code layered on top (strategy, grounded/llm) to report real
// failures.
package logging
