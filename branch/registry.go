// Package branch implements the ordered (condition, handler) registry that
// backs every multimethod. It is the authoritative answer to "which handler
// responds to this dispatch value" whenever the fast index cannot help.
package branch

import "github.com/hupe1980/multimethod/value"

// Branch pairs a dispatch condition with the handler that responds to it.
type Branch[H any] struct {
	Condition any
	Handler   H
}

// Registry is an ordered sequence of branches compared with value.Equal.
// It is not safe for concurrent use.
type Registry[H any] struct {
	branches []Branch[H]
}

// NewRegistry returns an empty registry.
func NewRegistry[H any]() *Registry[H] {
	return &Registry[H]{}
}

// Add appends a branch. Uniqueness of conditions is the caller's concern.
func (r *Registry[H]) Add(condition any, handler H) {
	r.branches = append(r.branches, Branch[H]{Condition: condition, Handler: handler})
}

// FindMatching returns the most recently added branch whose condition is
// structurally equal to v.
func (r *Registry[H]) FindMatching(v any) (Branch[H], bool) {
	for i := len(r.branches) - 1; i >= 0; i-- {
		if value.Equal(v, r.branches[i].Condition) {
			return r.branches[i], true
		}
	}
	return Branch[H]{}, false
}

// Contains reports whether a branch responds to condition.
func (r *Registry[H]) Contains(condition any) bool {
	_, ok := r.FindMatching(condition)
	return ok
}

// RemoveMatching drops every branch whose condition is structurally equal to
// condition and returns the removed branches in insertion order.
func (r *Registry[H]) RemoveMatching(condition any) []Branch[H] {
	var removed []Branch[H]
	kept := r.branches[:0]
	for _, b := range r.branches {
		if value.Equal(condition, b.Condition) {
			removed = append(removed, b)
			continue
		}
		kept = append(kept, b)
	}

	// release handlers held in the tail
	clear(r.branches[len(kept):])
	r.branches = kept

	return removed
}

// Len returns the number of branches.
func (r *Registry[H]) Len() int { return len(r.branches) }

// Conditions returns the registered conditions in insertion order. The slice
// is a snapshot and safe for caller mutation.
func (r *Registry[H]) Conditions() []any {
	out := make([]any, len(r.branches))
	for i, b := range r.branches {
		out[i] = b.Condition
	}
	return out
}
