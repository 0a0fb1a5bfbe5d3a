package multimethod

import "github.com/hupe1980/multimethod/logging"

// Config defines tuning parameters for dispatch resolution.
type Config struct {
	// FastPath enables the primitive fast dispatch index. With FastPath off
	// every lookup is a structural scan of the registered branches. Results
	// are identical either way; only lookup cost changes.
	FastPath bool
}

// DefaultConfig enables the fast dispatch index.
var DefaultConfig = Config{
	FastPath: true,
}

// Options configures a Method using the functional options pattern.
//
// Example:
//
//	area := multimethod.New(func(o *multimethod.Options) {
//	    o.Name = "area"
//	    o.Dispatch = func(args ...any) any { return args[0].(Shape).Kind }
//	    o.Logger = logger
//	})
type Options struct {
	// Name is used in log entries and error messages. Optional.
	Name string

	// Dispatch computes the dispatch value from the call arguments.
	// Defaults to Identity.
	Dispatch DispatchFunc

	// Config contains resolution parameters. Defaults to DefaultConfig.
	Config Config

	// Logger receives debug level traces of registration and resolution.
	// Defaults to NoOp logger if nil.
	Logger logging.Logger

	// Observer is notified of every resolution. Optional.
	Observer Observer
}
