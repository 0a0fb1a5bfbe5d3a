package multimethod

// Source identifies which layer resolved an invocation.
type Source string

const (
	// SourceIndex means the fast dispatch index answered the lookup.
	SourceIndex Source = "index"

	// SourceRegistry means a structural scan of the branch registry matched.
	SourceRegistry Source = "registry"

	// SourceBaseline means nothing matched and the fallback (or the default
	// "no branch" failure) handled the call.
	SourceBaseline Source = "baseline"
)

// Resolution describes how a single invocation was resolved.
//
// Condition is the matched branch condition; it is nil for SourceBaseline.
type Resolution struct {
	MethodID  string
	Name      string
	Value     any
	Source    Source
	Condition any
}

// Observer receives a Resolution for every invocation, after the branch is
// selected and before its handler runs. Observers are called synchronously
// and must not mutate the multimethod they observe.
type Observer interface {
	OnResolve(r Resolution)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(r Resolution)

// OnResolve calls f(r).
func (f ObserverFunc) OnResolve(r Resolution) { f(r) }
