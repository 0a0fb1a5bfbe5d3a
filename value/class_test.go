package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	ch := make(chan int)
	x := 1

	cases := []struct {
		in   any
		want TypeTag
	}{
		{nil, Null},
		{"s", String},
		{label("s"), String},
		{1, Number},
		{uint8(1), Number},
		{1.5, Number},
		{float32(1.5), Number},
		{true, Boolean},
		{complex(1, 2), Complex},
		{[]int{1}, Array},
		{[2]int{1, 2}, Array},
		{map[string]int{}, Object},
		{point{}, Object},
		{func() {}, Function},
		{&x, Pointer},
		{ch, Channel},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, ClassOf(c.in), "ClassOf(%#v)", c.in)
	}
}

func TestIsPrimitive(t *testing.T) {
	assert.True(t, IsPrimitive("a"))
	assert.True(t, IsPrimitive(42))
	assert.True(t, IsPrimitive(false))
	assert.True(t, IsPrimitive(label("a")))

	assert.False(t, IsPrimitive(nil))
	assert.False(t, IsPrimitive([]any{"a"}))
	assert.False(t, IsPrimitive(point{}))
	assert.False(t, IsPrimitive(complex(1, 1)))
}

func TestIsNaN(t *testing.T) {
	assert.True(t, IsNaN(math.NaN()))
	assert.True(t, IsNaN(float32(math.NaN())))
	assert.False(t, IsNaN(1.0))
	assert.False(t, IsNaN("NaN"))
	assert.False(t, IsNaN(nil))
}
