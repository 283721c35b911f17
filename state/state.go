package state

import (
	"errors"

	"github.com/amp-labs/amp-state/tuple"
)

// ErrNilTransition is the panic value raised when a State is built from a nil function.
var ErrNilTransition = errors.New("state: nil transition function")

// State is a computation that, given a state of type S, produces a result of
// type A and the next state. The zero value has no transition and panics
// when run.
type State[S, A any] struct {
	run func(S) (A, S)
}

// New wraps a transition function. It panics with ErrNilTransition if fn is nil.
func New[S, A any](fn func(S) (A, S)) State[S, A] {
	if fn == nil {
		panic(ErrNilTransition)
	}

	return State[S, A]{run: fn}
}

// FromTuple wraps a transition function that returns its result and next
// state as a pair. It panics with ErrNilTransition if fn is nil.
func FromTuple[S, A any](fn func(S) tuple.Tuple2[A, S]) State[S, A] {
	if fn == nil {
		panic(ErrNilTransition)
	}

	return New(func(s S) (A, S) {
		return fn(s).Values()
	})
}

// Pure returns a computation that produces a and leaves the state untouched.
// It is the identity for FlatMap.
func Pure[S, A any](a A) State[S, A] {
	return State[S, A]{run: func(s S) (A, S) {
		return a, s
	}}
}

// Run executes the computation against the initial state and returns the
// result together with the final state.
func (m State[S, A]) Run(initial S) (A, S) { //nolint:ireturn
	if m.run == nil {
		panic(ErrNilTransition)
	}

	return m.run(initial)
}

// RunTuple is Run with the outcome packed into a pair.
func (m State[S, A]) RunTuple(initial S) tuple.Tuple2[A, S] {
	a, s := m.Run(initial)

	return tuple.NewTuple2(a, s)
}

// Eval executes the computation and returns only the result.
func (m State[S, A]) Eval(initial S) A { //nolint:ireturn
	a, _ := m.Run(initial)

	return a
}

// Exec executes the computation and returns only the final state.
func (m State[S, A]) Exec(initial S) S { //nolint:ireturn
	_, s := m.Run(initial)

	return s
}

// Bind is FlatMap for a continuation that keeps the result type.
func (m State[S, A]) Bind(f func(A) State[S, A]) State[S, A] {
	return FlatMap(m, f)
}

// AndThen is Then for a follow-up computation with the same result type.
func (m State[S, A]) AndThen(next State[S, A]) State[S, A] {
	return Then(m, next)
}

// Map is the package-level Map for a function that keeps the result type.
func (m State[S, A]) Map(f func(A) A) State[S, A] {
	return Map(m, f)
}
