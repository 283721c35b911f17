package tuple

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuple2(t *testing.T) {
	t.Parallel()

	tuple := NewTuple2("hello", 42)

	assert.Equal(t, "hello", tuple.First())
	assert.Equal(t, 42, tuple.Second())
}

func TestValues(t *testing.T) {
	t.Parallel()

	first, second := NewTuple2([]int{1}, true).Values()

	assert.Equal(t, []int{1}, first)
	assert.True(t, second)
}

func TestSwap(t *testing.T) {
	t.Parallel()

	swapped := Swap(NewTuple2("a", 1))

	assert.Equal(t, 1, swapped.First())
	assert.Equal(t, "a", swapped.Second())
}

func TestMapComponents(t *testing.T) {
	t.Parallel()

	tuple := NewTuple2(7, []string{"x"})

	first := MapFirst(tuple, strconv.Itoa)
	assert.Equal(t, "7", first.First())
	assert.Equal(t, []string{"x"}, first.Second())

	second := MapSecond(tuple, func(xs []string) int { return len(xs) })
	assert.Equal(t, 7, second.First())
	assert.Equal(t, 1, second.Second())
}

func TestTupleWithNilValues(t *testing.T) {
	t.Parallel()

	tuple := NewTuple2[*string, []int](nil, nil)

	assert.Nil(t, tuple.First())
	assert.Nil(t, tuple.Second())
}
