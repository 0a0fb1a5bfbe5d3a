// Package index implements the fast dispatch index: a constant time lookup
// table for multimethods whose conditions are all primitives of one type.
//
// The index is a cache, never a source of truth. It moves through three
// states:
//
//	Empty ──insert(primitive of tag T)──▶ Locked(T) ──insert(other tag | non-primitive)──▶ Invalid
//	  └────────────────insert(non-primitive) / Invalidate────────────────────────────────────┘
//
// Invalid is absorbing. Every lookup outside Locked is a miss, and callers
// fall back to a structural scan of their branches.
package index
