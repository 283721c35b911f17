// Package empty provides the unit value and empty collections.
//
// Example usage:
//
//	// A state transition with no useful result
//	push := state.New(func(xs []int) (empty.T, []int) {
//		return empty.V, append([]int{1}, xs...)
//	})
//
//	// Non-nil zero-length results
//	results := empty.Slice[string]()
package empty
