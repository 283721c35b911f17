package state

import "github.com/amp-labs/amp-state/empty"

// Get yields the current state as the result and leaves it unchanged.
func Get[S any]() State[S, S] {
	return New(func(s S) (S, S) {
		return s, s
	})
}

// Put discards the incoming state and replaces it with s.
func Put[S any](s S) State[S, empty.T] {
	return New(func(S) (empty.T, S) {
		return empty.V, s
	})
}

// Gets yields a projection of the current state and leaves it unchanged.
// It behaves as Map(Get[S](), f).
func Gets[S, A any](f func(S) A) State[S, A] {
	return New(func(s S) (A, S) {
		return f(s), s
	})
}

// Modify replaces the state with f applied to it. It behaves as
// FlatMap(Get[S](), func(s S) State[S, empty.T] { return Put(f(s)) }).
func Modify[S any](f func(S) S) State[S, empty.T] {
	return New(func(s S) (empty.T, S) {
		return empty.V, f(s)
	})
}
