package rpn

import (
	"testing"

	"github.com/amp-labs/amp-state/logger"
	"github.com/amp-labs/amp-state/optional"
	"github.com/amp-labs/amp-state/stack"
	"github.com/amp-labs/amp-state/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		initial Machine
		want    Machine
		needs   int
		leaves  int
	}{
		{name: "literal", expr: "5", want: stack.Of[int64](5), leaves: 1},
		{name: "add", expr: "1 2 +", want: stack.Of[int64](3), leaves: 1},
		{name: "subtract keeps operand order", expr: "1 2 -", want: stack.Of[int64](-1), leaves: 1},
		{name: "divide", expr: "7 2 /", want: stack.Of[int64](3), leaves: 1},
		{name: "modulo", expr: "7 2 %", want: stack.Of[int64](1), leaves: 1},
		{name: "dup", expr: "3 dup *", want: stack.Of[int64](9), leaves: 1},
		{name: "swap", expr: "1 2 swap", want: stack.Of[int64](1, 2), leaves: 2},
		{name: "drop", expr: "1 2 drop", want: stack.Of[int64](1), leaves: 1},
		{name: "neg", expr: "4 NEG", want: stack.Of[int64](-4), leaves: 1},
		{name: "negative literal", expr: "-4 1 +", want: stack.Of[int64](-3), leaves: 1},
		{
			name:    "reads initial stack",
			expr:    "+ +",
			initial: stack.Of[int64](1, 2, 3, 9),
			want:    stack.Of[int64](6, 9),
			needs:   3,
			leaves:  1,
		},
		{
			name:    "mixed",
			expr:    "dup * 10 swap -",
			initial: stack.Of[int64](4),
			want:    stack.Of[int64](-6),
			needs:   1,
			leaves:  1,
		},
		{name: "drop everything", expr: "drop", initial: stack.Of[int64](1), want: Machine{}, needs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prog, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.needs, prog.Needs)
			assert.Equal(t, tt.leaves, prog.Leaves)

			got, err := prog.Run(tt.initial)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.initial)-prog.Needs+prog.Leaves)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
		want error
	}{
		{name: "empty", expr: "", want: ErrEmptyExpression},
		{name: "blank", expr: " \t\n", want: ErrEmptyExpression},
		{name: "unknown word", expr: "1 2 pow", want: ErrUnknownToken},
		{name: "literal zero divisor", expr: "1 0 /", want: ErrDivisionByZero},
		{name: "literal zero modulus", expr: "1 0 %", want: ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prog, err := Compile(tt.expr)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, prog)
		})
	}
}

func TestCompileErrorsAreAnnotated(t *testing.T) {
	t.Parallel()

	_, err := Compile("1 2 pow")
	require.Error(t, err)

	attrs := logger.Attrs(err)
	require.Len(t, attrs, 2)
	assert.Equal(t, "pow", attrs[0].Value.String())
	assert.Equal(t, int64(2), attrs[1].Value.Int64())
}

func TestRunUnderflow(t *testing.T) {
	t.Parallel()

	prog, err := Compile("+")
	require.NoError(t, err)

	_, err = prog.Run(stack.Of[int64](1))
	require.ErrorIs(t, err, ErrStackUnderflow)

	_, _, err = prog.Result(nil)
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestRunDynamicDivisionByZeroPanics(t *testing.T) {
	t.Parallel()

	prog, err := Compile("1 1 1 - /")
	require.NoError(t, err)

	assert.Panics(t, func() {
		_, _ = prog.Run(nil)
	})
}

func TestProgramIsReusable(t *testing.T) {
	t.Parallel()

	prog, err := Compile("10 *")
	require.NoError(t, err)

	initial := stack.Of[int64](2, 5)

	first, err := prog.Run(initial)
	require.NoError(t, err)

	second, err := prog.Run(initial)
	require.NoError(t, err)

	assert.Equal(t, stack.Of[int64](20, 5), first)
	assert.Equal(t, first, second)
	assert.Equal(t, stack.Of[int64](2, 5), initial)
}

func TestResult(t *testing.T) {
	t.Parallel()

	prog, err := Compile("1 2")
	require.NoError(t, err)

	top, rest, err := prog.Result(nil)
	require.NoError(t, err)
	assert.Equal(t, optional.Some[int64](2), top)
	assert.Equal(t, stack.Of[int64](1), rest)

	prog, err = Compile("drop")
	require.NoError(t, err)

	top, rest, err = prog.Result(stack.Of[int64](1))
	require.NoError(t, err)
	assert.True(t, top.Empty())
	assert.Empty(t, rest)
}

func TestComputationComposes(t *testing.T) {
	t.Parallel()

	double, err := Compile("2 *")
	require.NoError(t, err)

	quadruple := state.Then(double.Computation(), double.Computation())

	assert.Equal(t, stack.Of[int64](12), quadruple.Exec(stack.Of[int64](3)))
}
