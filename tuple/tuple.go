// Package tuple provides the pair type used to carry a result value together
// with the state a computation left behind.
package tuple

// NewTuple2 pairs two values.
func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// Values unpacks the pair, so a Tuple2 can feed a function taking (A, B)
// or be assigned with a, b := t.Values().
func (t Tuple2[A, B]) Values() (A, B) { //nolint:ireturn
	return t.first, t.second
}

// Swap returns the pair with its components exchanged.
func Swap[A, B any](t Tuple2[A, B]) Tuple2[B, A] {
	return NewTuple2(t.second, t.first)
}

// MapFirst transforms the first component and keeps the second.
func MapFirst[A, B, C any](t Tuple2[A, B], f func(A) C) Tuple2[C, B] {
	return NewTuple2(f(t.first), t.second)
}

// MapSecond transforms the second component and keeps the first.
func MapSecond[A, B, C any](t Tuple2[A, B], f func(B) C) Tuple2[A, C] {
	return NewTuple2(t.first, f(t.second))
}
