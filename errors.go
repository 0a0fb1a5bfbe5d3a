package multimethod

import "fmt"

var (
	// ErrNoBranch is matched (via errors.Is) by every *NoBranchError.
	ErrNoBranch = fmt.Errorf("no branch responds to dispatch value")

	// ErrAmbiguousBranch is matched (via errors.Is) by every *AmbiguousBranchError.
	ErrAmbiguousBranch = fmt.Errorf("another branch already responds to condition")

	// ErrNilHandler is returned by When when the handler is nil.
	ErrNilHandler = fmt.Errorf("handler must not be nil")
)

// NoBranchError is returned by Invoke when no branch responds to the computed
// dispatch value and no fallback is installed.
type NoBranchError struct {
	Method string `json:"method,omitempty"` // Name of the multimethod, if any
	Value  any    `json:"value"`            // Dispatch value that matched nothing
}

func (e *NoBranchError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("multimethod %s: no branch responds to: %#v", e.Method, e.Value)
	}
	return fmt.Sprintf("multimethod: no branch responds to: %#v", e.Value)
}

// Is makes errors.Is(err, ErrNoBranch) hold.
func (e *NoBranchError) Is(target error) bool { return target == ErrNoBranch }

// AmbiguousBranchError is returned by When when a structurally equal condition
// is already registered. The existing branch is left untouched.
type AmbiguousBranchError struct {
	Method    string `json:"method,omitempty"`
	Condition any    `json:"condition"`
}

func (e *AmbiguousBranchError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("multimethod %s: another branch is already responding to: %#v", e.Method, e.Condition)
	}
	return fmt.Sprintf("multimethod: another branch is already responding to: %#v", e.Condition)
}

// Is makes errors.Is(err, ErrAmbiguousBranch) hold.
func (e *AmbiguousBranchError) Is(target error) bool { return target == ErrAmbiguousBranch }
