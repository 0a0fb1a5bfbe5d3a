// Package multimethod provides runtime multiple dispatch: callables whose
// behaviour is chosen at call time by comparing a dispatch value, computed
// from the call's arguments, against a set of registered conditions.
//
// Most programs interact with this package by:
//  1. Creating a Method via New() with a dispatch function
//  2. Registering branches with When / MustWhen and an optional Fallback
//  3. Calling Invoke (or passing Func() around as a plain handler)
//
// Conditions are compared by structural equality (see package value), so a
// freshly built []any{"circle", 2} matches a branch registered with an equal
// but distinct slice. When every condition is a primitive of one type
// (strings, numbers or booleans) lookups are served from a constant time
// index (see package index); anything else falls back to a scan of the
// branches. The two paths always agree.
//
// Clone derives a new Method whose fallback is the original: the clone tries
// its own branches first, then delegates the whole call to the original.
// This builds layered extensions without touching the original.
//
// A Method is not safe for concurrent mutation. Register branches up front,
// or guard the Method externally.
package multimethod

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/multimethod/branch"
	"github.com/hupe1980/multimethod/index"
	"github.com/hupe1980/multimethod/logging"
	"github.com/hupe1980/multimethod/value"
)

// Handler is the code run for a branch. It receives the arguments of the
// invocation unchanged.
type Handler func(args ...any) (any, error)

// DispatchFunc computes the dispatch value from the invocation arguments.
type DispatchFunc func(args ...any) any

// Identity is the default DispatchFunc: it returns the first argument, or
// nil when called without arguments.
func Identity(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// Method is a multimethod: a dispatch function, an ordered branch registry,
// a fast dispatch index over primitive conditions and a baseline handler.
type Method struct {
	opts     Options
	id       string
	dispatch DispatchFunc
	branches *branch.Registry[Handler]
	index    *index.Index[Handler]
	baseline Handler // nil means "fail with NoBranchError"
	parent   *Method
	logger   logging.Logger
	dlog     *logging.DispatchLogger
}

// New creates a Method with no branches. Unset options fall back to
// Identity dispatch, DefaultConfig and a no-op logger.
func New(optFns ...func(o *Options)) *Method {
	opts := Options{
		Dispatch: Identity,
		Config:   DefaultConfig,
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return newMethod(opts)
}

func newMethod(opts Options) *Method {
	if opts.Dispatch == nil {
		opts.Dispatch = Identity
	}

	m := &Method{
		opts:     opts,
		id:       uuid.NewString(),
		dispatch: opts.Dispatch,
		branches: branch.NewRegistry[Handler](),
		index:    index.New[Handler](),
	}

	if !opts.Config.FastPath {
		m.index.Invalidate()
	}

	m.logger, m.dlog = newMethodLogger(opts.Logger, m.id, opts.Name)

	return m
}

// ID returns the unique identifier assigned at construction.
func (m *Method) ID() string { return m.id }

// Name returns the configured name, possibly empty.
func (m *Method) Name() string { return m.opts.Name }

// Parent returns the Method this one was cloned from, or nil.
func (m *Method) Parent() *Method { return m.parent }

// Len returns the number of branches registered directly on m.
func (m *Method) Len() int { return m.branches.Len() }

// Conditions returns the conditions registered directly on m, in
// registration order.
func (m *Method) Conditions() []any { return m.branches.Conditions() }

// FastPathState reports the state of m's fast dispatch index.
func (m *Method) FastPathState() index.State { return m.index.State() }

// Func returns m's call operator as a plain Handler.
func (m *Method) Func() Handler { return m.Invoke }

// Invoke computes the dispatch value for args and runs exactly one handler:
// the fast index entry, else the structurally matching branch, else the
// baseline. Without a fallback an unmatched call returns *NoBranchError.
// Handler errors are returned unchanged.
func (m *Method) Invoke(args ...any) (any, error) {
	v := m.dispatch(args...)

	h, res := m.resolve(v)
	if m.opts.Observer != nil {
		m.opts.Observer.OnResolve(res)
	}

	if h == nil {
		h = m.noBranch(v)
	}

	if m.dlog == nil {
		return h(args...)
	}

	start := time.Now()
	out, err := h(args...)
	if errors.Is(err, ErrNoBranch) {
		m.dlog.LogUnmatched(string(res.Source), time.Since(start), err)
	} else {
		m.dlog.LogResolution(string(res.Source), time.Since(start), err)
	}

	return out, err
}

func (m *Method) resolve(v any) (Handler, Resolution) {
	res := Resolution{MethodID: m.id, Name: m.opts.Name, Value: v}

	if h, ok := m.index.Lookup(v); ok {
		res.Source = SourceIndex
		res.Condition = v
		return h, res
	}

	if b, ok := m.branches.FindMatching(v); ok {
		res.Source = SourceRegistry
		res.Condition = b.Condition
		return b.Handler, res
	}

	res.Source = SourceBaseline
	return m.baseline, res
}

func (m *Method) noBranch(v any) Handler {
	return func(...any) (any, error) {
		return nil, &NoBranchError{Method: m.opts.Name, Value: v}
	}
}

// When registers h for condition. It returns *AmbiguousBranchError, leaving
// the existing branch in place, when a structurally equal condition is
// already registered on m.
func (m *Method) When(condition any, h Handler) error {
	if h == nil {
		return ErrNilHandler
	}

	if m.branches.Contains(condition) {
		m.logger.Warn("multimethod.when.ambiguous", "condition", condition)
		return &AmbiguousBranchError{Method: m.opts.Name, Condition: condition}
	}

	m.branches.Add(condition, h)

	wasValid := m.index.Valid()
	m.index.Insert(condition, h)
	if wasValid && !m.index.Valid() {
		m.logger.Debug("multimethod.index.invalidated", "condition", condition, "condition_type", string(value.ClassOf(condition)))
	}

	m.logger.Debug("multimethod.when", "condition", condition, "branches", m.branches.Len(), "index", m.index.State().String())

	return nil
}

// MustWhen is like When but panics on error, returning m for chaining.
func (m *Method) MustWhen(condition any, h Handler) *Method {
	if err := m.When(condition, h); err != nil {
		panic(err)
	}
	return m
}

// Fallback replaces the baseline handler run when no branch matches.
// Fallback(nil) restores the default NoBranchError baseline.
func (m *Method) Fallback(h Handler) *Method {
	m.baseline = h
	m.logger.Debug("multimethod.fallback", "custom", h != nil)
	return m
}

// Remove drops every branch whose condition is structurally equal to
// condition, together with their fast index entries. Unknown conditions are
// ignored.
func (m *Method) Remove(condition any) *Method {
	removed := m.branches.RemoveMatching(condition)
	// evict the stored keys: an Equal method may match keys that are not ==
	for _, b := range removed {
		m.index.Evict(b.Condition)
	}
	m.logger.Debug("multimethod.remove", "condition", condition, "removed", len(removed))
	return m
}

// Clone returns a new Method with the same dispatch function, options and no
// branches, whose baseline is m itself. Branches added to the clone never
// affect m; changes to m remain visible through the clone's fallback.
func (m *Method) Clone() *Method {
	c := newMethod(m.opts)
	c.parent = m
	c.baseline = m.Invoke

	c.logger.Debug("multimethod.clone", "parent_id", m.id)

	return c
}
