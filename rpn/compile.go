// Package rpn compiles reverse-Polish integer expressions into stack
// computations and evaluates them.
//
// An expression such as "3 4 + 2 *" becomes a single
// state.State[Machine, empty.T] built from stack pushes and pops. Arity is
// checked when the program is compiled, so running a program only needs to
// confirm the initial stack is deep enough.
package rpn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-state/empty"
	"github.com/amp-labs/amp-state/logger"
	"github.com/amp-labs/amp-state/optional"
	"github.com/amp-labs/amp-state/stack"
	"github.com/amp-labs/amp-state/state"
)

var (
	ErrEmptyExpression = errors.New("rpn: empty expression")
	ErrUnknownToken    = errors.New("rpn: unknown token")
	ErrStackUnderflow  = errors.New("rpn: stack underflow")
	ErrDivisionByZero  = errors.New("rpn: division by zero")
)

// Machine is the stack an expression runs against, top first.
type Machine = stack.Stack[int64]

// Step is a compiled instruction.
type Step = state.State[Machine, empty.T]

type instruction struct {
	pops   int
	pushes int
	step   Step
}

func binary(op func(a, b int64) int64) instruction {
	step := state.FlatMap(stack.Pop[int64](), func(b int64) Step {
		return state.FlatMap(stack.Pop[int64](), func(a int64) Step {
			return stack.Push(op(a, b))
		})
	})

	return instruction{pops: 2, pushes: 1, step: step}
}

//nolint:gochecknoglobals
var instructions = map[string]instruction{
	"+": binary(func(a, b int64) int64 { return a + b }),
	"-": binary(func(a, b int64) int64 { return a - b }),
	"*": binary(func(a, b int64) int64 { return a * b }),
	"/": binary(func(a, b int64) int64 { return a / b }),
	"%": binary(func(a, b int64) int64 { return a % b }),
	"dup": {pops: 1, pushes: 2, step: state.FlatMap(stack.Pop[int64](), func(x int64) Step {
		return state.Then(stack.Push(x), stack.Push(x))
	})},
	"swap": {pops: 2, pushes: 2, step: state.FlatMap(stack.Pop[int64](), func(b int64) Step {
		return state.FlatMap(stack.Pop[int64](), func(a int64) Step {
			return state.Then(stack.Push(b), stack.Push(a))
		})
	})},
	"drop": {pops: 1, pushes: 0, step: state.Void(stack.Pop[int64]())},
	"neg": {pops: 1, pushes: 1, step: state.FlatMap(stack.Pop[int64](), func(x int64) Step {
		return stack.Push(-x)
	})},
}

// Program is a compiled expression. It is immutable and may be run any
// number of times, from any number of goroutines.
type Program struct {
	// Source is the expression the program was compiled from.
	Source string
	// Needs is the number of elements the program reads from the initial stack.
	Needs int
	// Leaves is the number of elements the program leaves in place of the
	// Needs elements it consumed.
	Leaves int

	computation Step
}

// Compile parses expr into a Program. Tokens are separated by whitespace:
// decimal integer literals, the operators + - * / %, and the words dup,
// swap, drop and neg.
func Compile(expr string) (*Program, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}

	steps := make([]Step, 0, len(tokens))
	depth, needs := 0, 0

	for pos, tok := range tokens {
		var ins instruction

		if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
			ins = instruction{pushes: 1, step: stack.Push(n)}
		} else {
			known, ok := instructions[strings.ToLower(tok)]
			if !ok {
				return nil, logger.AnnotateError(
					fmt.Errorf("%w %q at position %d", ErrUnknownToken, tok, pos),
					"token", tok, "position", pos)
			}

			if (tok == "/" || tok == "%") && pos > 0 && isZeroLiteral(tokens[pos-1]) {
				return nil, logger.AnnotateError(
					fmt.Errorf("%w: %q at position %d", ErrDivisionByZero, tok, pos),
					"token", tok, "position", pos)
			}

			ins = known
		}

		if depth < ins.pops {
			needs += ins.pops - depth
			depth = ins.pops
		}

		depth += ins.pushes - ins.pops

		steps = append(steps, ins.step)
	}

	return &Program{
		Source:      expr,
		Needs:       needs,
		Leaves:      depth,
		computation: state.Void(state.Sequence(steps...)),
	}, nil
}

func isZeroLiteral(tok string) bool {
	n, err := strconv.ParseInt(tok, 10, 64)

	return err == nil && n == 0
}

// Computation returns the program as a state computation, for composing it
// with other stack computations.
func (p *Program) Computation() Step {
	return p.computation
}

func (p *Program) check(initial Machine) error {
	if len(initial) < p.Needs {
		return logger.AnnotateError(
			fmt.Errorf("%w: %q needs %d values, stack has %d", ErrStackUnderflow, p.Source, p.Needs, len(initial)),
			"needs", p.Needs, "depth", len(initial))
	}

	return nil
}

// Run executes the program and returns the final stack. It fails with
// ErrStackUnderflow, without running anything, if initial holds fewer than
// Needs elements. Integer division by a zero computed at run time panics.
func (p *Program) Run(initial Machine) (Machine, error) {
	if err := p.check(initial); err != nil {
		return nil, err
	}

	return p.computation.Exec(initial), nil
}

// Result executes the program and splits the final stack into its top value
// (None if the stack ended up empty) and the rest.
func (p *Program) Result(initial Machine) (optional.Value[int64], Machine, error) {
	if err := p.check(initial); err != nil {
		return optional.None[int64](), nil, err
	}

	top, rest := state.Then(p.computation, stack.TryPop[int64]()).Run(initial)

	return top, rest, nil
}
