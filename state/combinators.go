package state

import (
	"github.com/amp-labs/amp-state/empty"
	"github.com/amp-labs/amp-state/tuple"
)

// Map transforms the result of m with f. The state transition is unchanged.
// Map(m, f) behaves as FlatMap(m, func(a A) State[S, B] { return Pure[S](f(a)) }).
func Map[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return New(func(s S) (B, S) {
		a, next := m.Run(s)

		return f(a), next
	})
}

// FlatMap runs m, hands its result to f, and runs the computation f returns
// against the state m left behind.
func FlatMap[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return New(func(s S) (B, S) {
		a, next := m.Run(s)

		return f(a).Run(next)
	})
}

// Then runs m and then next, discarding m's result but keeping the state it
// produced. It behaves as FlatMap(m, func(A) State[S, B] { return next }).
func Then[S, A, B any](m State[S, A], next State[S, B]) State[S, B] {
	return New(func(s S) (B, S) {
		_, mid := m.Run(s)

		return next.Run(mid)
	})
}

// Flatten runs the outer computation and then the computation it produced.
func Flatten[S, A any](mm State[S, State[S, A]]) State[S, A] {
	return FlatMap(mm, func(m State[S, A]) State[S, A] {
		return m
	})
}

// Void discards the result of m.
func Void[S, A any](m State[S, A]) State[S, empty.T] {
	return As(m, empty.V)
}

// As runs m and replaces its result with b.
func As[S, A, B any](m State[S, A], b B) State[S, B] {
	return Map(m, func(A) B {
		return b
	})
}

// Zip runs ma then mb and pairs their results.
func Zip[S, A, B any](ma State[S, A], mb State[S, B]) State[S, tuple.Tuple2[A, B]] {
	return New(func(s S) (tuple.Tuple2[A, B], S) {
		a, mid := ma.Run(s)
		b, next := mb.Run(mid)

		return tuple.NewTuple2(a, b), next
	})
}

// Sequence runs the computations in order, threading the state through each,
// and collects their results. With no computations it yields an empty slice.
func Sequence[S, A any](ms ...State[S, A]) State[S, []A] {
	steps := append([]State[S, A](nil), ms...)

	return New(func(s S) ([]A, S) {
		out := make([]A, 0, len(steps))

		for _, m := range steps {
			var a A

			a, s = m.Run(s)
			out = append(out, a)
		}

		return out, s
	})
}

// Traverse builds a computation from each element with f and runs them in
// order, collecting the results.
func Traverse[S, A, B any](as []A, f func(A) State[S, B]) State[S, []B] {
	items := append([]A(nil), as...)

	return New(func(s S) ([]B, S) {
		out := make([]B, 0, len(items))

		for _, item := range items {
			var b B

			b, s = f(item).Run(s)
			out = append(out, b)
		}

		return out, s
	})
}

// Replicate runs m n times in a row and collects the results.
// A non-positive n yields an empty slice and leaves the state untouched.
func Replicate[S, A any](n int, m State[S, A]) State[S, []A] {
	if n <= 0 {
		return Pure[S](empty.Slice[A]())
	}

	return New(func(s S) ([]A, S) {
		out := make([]A, 0, n)

		for range n {
			var a A

			a, s = m.Run(s)
			out = append(out, a)
		}

		return out, s
	})
}

// FoldM threads an accumulator through f for each element, in order, with
// every step also able to read and change the state.
func FoldM[S, A, B any](as []A, init B, f func(B, A) State[S, B]) State[S, B] {
	items := append([]A(nil), as...)

	return New(func(s S) (B, S) {
		acc := init

		for _, item := range items {
			acc, s = f(acc, item).Run(s)
		}

		return acc, s
	})
}

// When runs m if cond holds and is a no-op otherwise.
func When[S any](cond bool, m State[S, empty.T]) State[S, empty.T] {
	if !cond {
		return Pure[S](empty.V)
	}

	return m
}
