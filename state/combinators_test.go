package state

import (
	"testing"

	"github.com/amp-labs/amp-state/empty"
	"github.com/amp-labs/amp-state/tuple"
	"github.com/stretchr/testify/assert"
)

func appendStep(x string) State[[]string, int] {
	return New(func(log []string) (int, []string) {
		next := append(append([]string(nil), log...), x)

		return len(next), next
	})
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	nested := Map(counter, func(n int) State[int, int] {
		return Pure[int](n * 100)
	})

	value, next := Flatten(nested).Run(2)
	assert.Equal(t, 200, value)
	assert.Equal(t, 3, next)
}

func TestVoidAndAs(t *testing.T) {
	t.Parallel()

	unit, next := Void(counter).Run(1)
	assert.Equal(t, empty.V, unit)
	assert.Equal(t, 2, next)

	value, next := As(counter, "done").Run(1)
	assert.Equal(t, "done", value)
	assert.Equal(t, 2, next)
}

func TestZip(t *testing.T) {
	t.Parallel()

	pair, next := Zip(counter, Get[int]()).Run(10)
	assert.Equal(t, tuple.NewTuple2(10, 11), pair)
	assert.Equal(t, 11, next)
}

func TestSequence(t *testing.T) {
	t.Parallel()

	steps := []State[[]string, int]{appendStep("a"), appendStep("b"), appendStep("c")}
	all := Sequence(steps...)

	// Later changes to the caller's slice do not affect the computation.
	steps[0] = appendStep("z")

	results, log := all.Run(nil)
	assert.Equal(t, []int{1, 2, 3}, results)
	assert.Equal(t, []string{"a", "b", "c"}, log)

	none, log := Sequence[[]string, int]().Run([]string{"x"})
	assert.Equal(t, []int{}, none)
	assert.Equal(t, []string{"x"}, log)
}

func TestTraverse(t *testing.T) {
	t.Parallel()

	results, log := Traverse([]string{"x", "y"}, appendStep).Run([]string{"w"})
	assert.Equal(t, []int{2, 3}, results)
	assert.Equal(t, []string{"w", "x", "y"}, log)
}

func TestReplicate(t *testing.T) {
	t.Parallel()

	results, next := Replicate(3, counter).Run(5)
	assert.Equal(t, []int{5, 6, 7}, results)
	assert.Equal(t, 8, next)

	for _, n := range []int{0, -1} {
		results, next = Replicate(n, counter).Run(5)
		assert.Equal(t, []int{}, results)
		assert.Equal(t, 5, next)
	}
}

func TestReplicateDeepChain(t *testing.T) {
	t.Parallel()

	results, next := Replicate(100_000, counter).Run(0)
	assert.Len(t, results, 100_000)
	assert.Equal(t, 100_000, next)
}

func TestFoldM(t *testing.T) {
	t.Parallel()

	// Sum the inputs while counting how many were seen in the state.
	sum := FoldM([]int{1, 2, 3, 4}, 0, func(acc, x int) State[int, int] {
		return As(Modify(func(seen int) int { return seen + 1 }), acc+x)
	})

	total, seen := sum.Run(0)
	assert.Equal(t, 10, total)
	assert.Equal(t, 4, seen)
}

func TestWhen(t *testing.T) {
	t.Parallel()

	bump := Modify(func(n int) int { return n + 1 })

	assert.Equal(t, 2, When(true, bump).Exec(1))
	assert.Equal(t, 1, When(false, bump).Exec(1))
}
