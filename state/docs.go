// Package state provides State, a stateful computation that threads an
// explicit state value through a chain of steps without shared mutable
// variables.
//
// A State[S, A] wraps a transition function S -> (A, S). Computations are
// built once, either directly from a function or from the primitives and
// combinators in this package, and then executed against an initial state:
//
//	counter := state.FlatMap(state.Get[int](), func(n int) state.State[int, string] {
//		return state.As(state.Put(n+1), fmt.Sprintf("was %d", n))
//	})
//
//	msg, next := counter.Run(41) // "was 41", 42
//
// Computations are immutable. Every combinator returns a new State and the
// inputs remain usable on their own. Running the same computation against
// the same state always yields the same result, provided the wrapped
// functions are pure; the package cannot check that and relies on callers.
//
// Go methods cannot introduce new type parameters, so the combinators that
// change the result type (Map, FlatMap, Then, ...) are package-level
// functions. Bind, AndThen and the Map method cover the common case where
// the result type stays the same and chaining reads better.
package state
