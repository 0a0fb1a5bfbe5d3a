package multimethod

import "github.com/hupe1980/multimethod/logging"

// attrLogger prefixes every entry of a plain logging.Logger with the
// identifiers of the Method that emitted it.
type attrLogger struct {
	logger logging.Logger
	attrs  []any
}

func (l *attrLogger) with(args []any) []any {
	out := make([]any, 0, len(l.attrs)+len(args))
	out = append(out, l.attrs...)
	return append(out, args...)
}

func (l *attrLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, l.with(args)...) }
func (l *attrLogger) Info(msg string, args ...any)  { l.logger.Info(msg, l.with(args)...) }
func (l *attrLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, l.with(args)...) }
func (l *attrLogger) Error(msg string, args ...any) { l.logger.Error(msg, l.with(args)...) }

// newMethodLogger guarantees a non-nil logger scoped to one Method. The
// second result is non-nil only for a *logging.DispatchLogger, which also
// records per-invocation resolutions.
func newMethodLogger(l logging.Logger, id, name string) (logging.Logger, *logging.DispatchLogger) {
	switch lg := l.(type) {
	case nil:
		return logging.NoOpLogger{}, nil
	case logging.NoOpLogger, *logging.NoOpLogger:
		return logging.NoOpLogger{}, nil
	case *logging.DispatchLogger:
		dl := lg.WithComponent("multimethod").WithMethod(id, name)
		return dl, dl
	default:
		attrs := []any{"method_id", id}
		if name != "" {
			attrs = append(attrs, "method", name)
		}
		return &attrLogger{logger: l, attrs: attrs}, nil
	}
}
