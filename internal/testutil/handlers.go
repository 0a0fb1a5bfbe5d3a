package testutil

// Recorder is a handler that remembers every call it receives and answers
// with a fixed result.
//
//	rec := testutil.NewRecorder("circle")
//	m.MustWhen("circle", rec.Handle)
//	...
//	assert.Equal(t, 1, rec.Calls())
type Recorder struct {
	result any
	err    error
	calls  [][]any
}

// NewRecorder returns a Recorder answering with result.
func NewRecorder(result any) *Recorder { return &Recorder{result: result} }

// Failing makes the recorder return err on every call (chainable).
func (r *Recorder) Failing(err error) *Recorder { r.err = err; return r }

// Handle records args and returns the configured result and error. Its
// signature matches multimethod.Handler.
func (r *Recorder) Handle(args ...any) (any, error) {
	cp := make([]any, len(args))
	copy(cp, args)
	r.calls = append(r.calls, cp)
	return r.result, r.err
}

// Calls returns how many times Handle ran.
func (r *Recorder) Calls() int { return len(r.calls) }

// LastArgs returns the arguments of the most recent call, or nil.
func (r *Recorder) LastArgs() []any {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

// Const returns a handler that always answers v.
func Const(v any) func(args ...any) (any, error) {
	return func(...any) (any, error) { return v, nil }
}
