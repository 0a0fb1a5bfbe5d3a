package index

import (
	"math"
	"testing"

	"github.com/hupe1980/multimethod/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

func TestIndex_EmptyMisses(t *testing.T) {
	ix := New[int]()
	assert.Equal(t, StateEmpty, ix.State())
	assert.True(t, ix.Valid())

	_, ok := ix.Lookup("a")
	assert.False(t, ok)
	_, ok = ix.Lookup(nil)
	assert.False(t, ok)
}

func TestIndex_LocksOnFirstInsert(t *testing.T) {
	ix := New[int]().Insert("a", 1).Insert("b", 2)

	assert.Equal(t, StateLocked, ix.State())
	assert.Equal(t, value.String, ix.KeyType())
	assert.Equal(t, 2, ix.Len())

	v, ok := ix.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = ix.Lookup("z")
	assert.False(t, ok)
	_, ok = ix.Lookup(1)
	assert.False(t, ok, "other tags never hit")
	_, ok = ix.Lookup(nil)
	assert.False(t, ok)
}

func TestIndex_OverwriteSameKey(t *testing.T) {
	ix := New[int]().Insert(1, 1).Insert(1, 2)

	v, ok := ix.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, ix.Len())
}

func TestIndex_MixedTypesInvalidate(t *testing.T) {
	ix := New[int]().Insert("a", 1).Insert(2, 2)

	assert.Equal(t, StateInvalid, ix.State())
	assert.False(t, ix.Valid())
	assert.Equal(t, value.TypeTag(""), ix.KeyType())

	_, ok := ix.Lookup("a")
	assert.False(t, ok, "earlier entries are unreachable once invalid")
}

func TestIndex_NonPrimitiveInvalidates(t *testing.T) {
	assert.Equal(t, StateInvalid, New[int]().Insert([]any{"a"}, 1).State())
	assert.Equal(t, StateInvalid, New[int]().Insert("a", 1).Insert(nil, 2).State())
	assert.Equal(t, StateInvalid, New[int]().Insert(struct{}{}, 1).State())
}

func TestIndex_InvalidIsAbsorbing(t *testing.T) {
	ix := New[int]().Invalidate()
	ix.Insert("a", 1)

	assert.Equal(t, StateInvalid, ix.State())
	assert.Equal(t, 0, ix.Len())
	_, ok := ix.Lookup("a")
	assert.False(t, ok)
}

func TestIndex_NumbersShareATag(t *testing.T) {
	ix := New[string]().Insert(1, "int").Insert(1.5, "float")

	assert.Equal(t, StateLocked, ix.State())
	assert.Equal(t, value.Number, ix.KeyType())

	_, ok := ix.Lookup(1.0)
	assert.False(t, ok, "float64(1) is not the int key 1")
	v, ok := ix.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "int", v)
}

func TestIndex_NamedTypesAreDistinctKeys(t *testing.T) {
	ix := New[int]().Insert(color("red"), 1)

	assert.Equal(t, value.String, ix.KeyType())
	_, ok := ix.Lookup("red")
	assert.False(t, ok)
	v, ok := ix.Lookup(color("red"))
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestIndex_NaNIsNotStored(t *testing.T) {
	ix := New[int]().Insert(math.NaN(), 1)

	assert.Equal(t, StateLocked, ix.State())
	assert.Equal(t, 0, ix.Len())
	_, ok := ix.Lookup(math.NaN())
	assert.False(t, ok)
}

func TestIndex_Evict(t *testing.T) {
	ix := New[int]().Insert("a", 1).Insert("b", 2).Evict("a").Evict("missing").Evict([]int{1})

	assert.Equal(t, StateLocked, ix.State())
	_, ok := ix.Lookup("a")
	assert.False(t, ok)
	_, ok = ix.Lookup("b")
	assert.True(t, ok)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "locked", StateLocked.String())
	assert.Equal(t, "invalid", StateInvalid.String())
	assert.Equal(t, "unknown", State(42).String())
}
