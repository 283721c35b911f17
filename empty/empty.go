package empty

// T is the unit type: a value that carries no information. Computations
// whose only purpose is to change state (replacing or modifying it, pushing
// onto a stack) produce T as their result.
//
// Example:
//
//	var done state.State[int, empty.T] = state.Put(3)
type T struct{}

// V is the single value of T.
//
// Example:
//
//	return empty.V, next
var V = T{}

// Slice returns an empty, non-nil slice of the specified type T.
//
// Combinators that collect results (sequence, replicate) return this instead
// of nil so that a zero-length run still compares equal to []T{}.
func Slice[T any]() []T {
	return []T{}
}
