// Package stack models a stack as an immutable slice and exposes push and
// pop as state computations. Index 0 is the top of the stack.
package stack

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-state/empty"
	"github.com/amp-labs/amp-state/optional"
	"github.com/amp-labs/amp-state/state"
)

// ErrEmpty is the panic value (wrapped) raised by Pop on an empty stack.
var ErrEmpty = errors.New("stack: pop from empty stack")

// Stack holds its elements top first. Operations never modify a Stack in
// place; they return a new one.
type Stack[T any] []T

// Of builds a stack from its elements, top first.
func Of[T any](xs ...T) Stack[T] {
	return append(Stack[T]{}, xs...)
}

// Push places x on top of the stack.
func Push[T any](x T) state.State[Stack[T], empty.T] {
	return state.Modify(func(xs Stack[T]) Stack[T] {
		next := make(Stack[T], 0, len(xs)+1)
		next = append(next, x)

		return append(next, xs...)
	})
}

// Pop removes and yields the top of the stack. Running it against an empty
// stack panics with an error wrapping ErrEmpty; use TryPop when the stack
// may be empty.
func Pop[T any]() state.State[Stack[T], T] {
	return state.New(func(xs Stack[T]) (T, Stack[T]) {
		if len(xs) == 0 {
			panic(fmt.Errorf("%w (element type %T)", ErrEmpty, *new(T)))
		}

		return xs[0], xs[1:]
	})
}

// TryPop removes and yields the top of the stack, or yields None and leaves
// an empty stack as it is.
func TryPop[T any]() state.State[Stack[T], optional.Value[T]] {
	return state.New(func(xs Stack[T]) (optional.Value[T], Stack[T]) {
		if len(xs) == 0 {
			return optional.None[T](), xs
		}

		return optional.Some(xs[0]), xs[1:]
	})
}

// Peek yields the top of the stack without removing it.
func Peek[T any]() state.State[Stack[T], optional.Value[T]] {
	return state.Gets(func(xs Stack[T]) optional.Value[T] {
		if len(xs) == 0 {
			return optional.None[T]()
		}

		return optional.Some(xs[0])
	})
}

// Size yields the number of elements on the stack.
func Size[T any]() state.State[Stack[T], int] {
	return state.Gets(func(xs Stack[T]) int {
		return len(xs)
	})
}
