package value

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// equalOpts is shared by every comparison.
//
//   - NaN equals NaN, so a NaN condition can be matched at all
//   - nil and empty slices / maps are equal
//   - unexported struct fields are compared rather than rejected
var equalOpts = []cmp.Option{
	cmpopts.EquateNaNs(),
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether a and b are structurally equal.
//
// The comparison is deep and order sensitive for slices and arrays. Floats
// follow Go semantics except for NaN (+0 and -0 are equal). Types that declare
// an Equal method are compared with it. Cyclic values are handled. Funcs are
// only equal when both are nil.
//
// Equal never panics: a comparison the underlying comparer refuses is
// reported as not equal.
func Equal(a, b any) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			eq = false
		}
	}()

	return cmp.Equal(a, b, equalOpts...)
}
