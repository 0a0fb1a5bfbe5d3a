package index

import "github.com/hupe1980/multimethod/value"

// State is the lifecycle state of an Index.
type State int

const (
	// StateEmpty is a valid index that has not accepted a key yet.
	StateEmpty State = iota
	// StateLocked is a valid index whose keys all share one TypeTag.
	StateLocked
	// StateInvalid is terminal; the index never answers a lookup again.
	StateInvalid
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLocked:
		return "locked"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Index maps primitive keys of a single TypeTag to values of type V.
// It is not safe for concurrent use.
type Index[V any] struct {
	state   State
	keyType value.TypeTag
	entries map[any]V
}

// New returns an empty, valid index.
func New[V any]() *Index[V] {
	return &Index[V]{state: StateEmpty, entries: make(map[any]V)}
}

// State returns the current lifecycle state.
func (ix *Index[V]) State() State { return ix.state }

// Valid reports whether the index can still answer lookups.
func (ix *Index[V]) Valid() bool { return ix.state != StateInvalid }

// KeyType returns the locked TypeTag, or "" when the index is not locked.
func (ix *Index[V]) KeyType() value.TypeTag {
	if ix.state != StateLocked {
		return ""
	}
	return ix.keyType
}

// Len returns the number of stored entries.
func (ix *Index[V]) Len() int { return len(ix.entries) }

// Lookup returns the value stored for key. It misses when the index is not
// locked, when key is nil, or when key's TypeTag differs from the locked one.
func (ix *Index[V]) Lookup(key any) (V, bool) {
	var zero V

	switch ix.state {
	case StateLocked:
		if key == nil || value.ClassOf(key) != ix.keyType {
			return zero, false
		}
		v, ok := ix.entries[key]
		return v, ok
	default:
		return zero, false
	}
}

// Insert stores v under key. A non-primitive key, or a key whose TypeTag
// differs from the locked one, invalidates the index for good.
func (ix *Index[V]) Insert(key any, v V) *Index[V] {
	switch ix.state {
	case StateInvalid:
		return ix
	case StateEmpty:
		if !value.IsPrimitive(key) {
			return ix.Invalidate()
		}
		ix.state = StateLocked
		ix.keyType = value.ClassOf(key)
	case StateLocked:
		if !value.IsPrimitive(key) || value.ClassOf(key) != ix.keyType {
			return ix.Invalidate()
		}
	}

	// NaN never matches itself as a map key; the structural scan serves it.
	if value.IsNaN(key) {
		return ix
	}

	ix.entries[key] = v
	return ix
}

// Evict removes the entry stored under key, if any. It never changes state.
func (ix *Index[V]) Evict(key any) *Index[V] {
	if ix.state != StateLocked || !value.IsPrimitive(key) {
		return ix
	}
	delete(ix.entries, key)
	return ix
}

// Invalidate moves the index to StateInvalid and drops its entries.
func (ix *Index[V]) Invalidate() *Index[V] {
	ix.state = StateInvalid
	ix.keyType = ""
	clear(ix.entries)
	return ix
}
