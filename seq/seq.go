// Package seq holds the slice helpers the combinators are built from.
//
// Example:
//
//	doubled := seq.Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
package seq

// Map transforms each element using fn and returns a new slice with the same
// length as input.
func Map[A any, B any](in []A, fn func(A) B) []B {
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// MapIndexed is Map with the element index passed as a second argument, the
// shape of an array map callback.
//
// Example:
//
//	labels := seq.MapIndexed(names, func(name string, i int) string {
//		return fmt.Sprintf("%d:%s", i, name)
//	})
func MapIndexed[A any, B any](in []A, fn func(A, int) B) []B {
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v, i)
	}
	return out
}

// Any reports whether predicate holds for at least one element.
func Any[T any](in []T, predicate func(T) bool) bool {
	for _, v := range in {
		if predicate(v) {
			return true
		}
	}
	return false
}

// FoldLeft reduces the slice from left to right using the provided accumulator.
func FoldLeft[A any, B any](in []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// SplitAt copies in into the elements before idx and the elements from idx
// on. idx is clamped to [0, len(in)].
func SplitAt[T any](in []T, idx int) ([]T, []T) {
	idx = min(max(idx, 0), len(in))
	head := make([]T, idx)
	copy(head, in[:idx])
	tail := make([]T, len(in)-idx)
	copy(tail, in[idx:])
	return head, tail
}
