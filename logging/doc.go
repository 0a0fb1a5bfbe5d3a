// Package logging provides a minimal logging interface and adapters for multimethods.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the dispatch engine uses for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - DispatchLogger with contextual helpers (component, method) and resolution logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "auto", false)
//	m := multimethod.New(func(o *multimethod.Options) { o.Logger = logger })
//
// Arguments after the message are slog key/value pairs.
package logging
