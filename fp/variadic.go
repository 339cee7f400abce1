package fp

import (
	"slices"

	"github.com/charmingruby/recipes/seq"
)

// LeftVariadicN adapts fn, which takes arity parameters with the first one
// collecting a variable number of values, into a plain variadic function.
// Called with k >= arity arguments, the first k-arity+1 are gathered and the
// remaining arity-1 are passed in spread.
//
// With fewer than arity-1 arguments nothing is gathered and spread is padded
// with zero values at the end. An arity below 1 gathers nothing and passes
// every argument in spread.
func LeftVariadicN[T any, R any](arity int, fn func(gathered, spread []T) R) func(...T) R {
	if arity < 1 {
		return func(args ...T) R {
			return fn([]T{}, slices.Clone(args))
		}
	}
	return func(args ...T) R {
		gathered, spread := LeftGather[T](arity)(args)
		return fn(gathered, spread)
	}
}

// LeftVariadic2 gathers every argument but the last.
//
// Example:
//
//	butLastAndLast := LeftVariadic2(func(butLast []string, last string) string {
//		return fmt.Sprint(butLast, last)
//	})
//	butLastAndLast("why", "hello", "there", "little", "droid")
//	// [why hello there little] droid
func LeftVariadic2[T any, R any](fn func([]T, T) R) func(...T) R {
	return LeftVariadicN(2, func(gathered, spread []T) R {
		return fn(gathered, spread[0])
	})
}

// LeftVariadic3 gathers every argument but the last two.
func LeftVariadic3[T any, R any](fn func([]T, T, T) R) func(...T) R {
	return LeftVariadicN(3, func(gathered, spread []T) R {
		return fn(gathered, spread[0], spread[1])
	})
}

// LeftGather returns a destructuring helper that splits a slice into the
// leading values, gathered together, and the last arity-1 values. spread
// always has length arity-1 for arity >= 1. An arity below 1 gathers every
// element and leaves spread empty; unlike LeftVariadicN there is no function
// to pass values to individually, so nothing is left to spread.
//
// Example:
//
//	butLast, last := LeftGather[string](2)([]string{"why", "hello", "droid"})
//	// butLast == [why hello], last == [droid]
func LeftGather[T any](arity int) func([]T) ([]T, []T) {
	keep := max(arity-1, 0)
	return func(xs []T) ([]T, []T) {
		if len(xs) < keep {
			spread := make([]T, keep)
			copy(spread, xs)
			return []T{}, spread
		}
		return seq.SplitAt(xs, len(xs)-keep)
	}
}

// LeftGather2 splits xs into every element but the last, and the last. The last
// value is the zero value when xs is empty.
func LeftGather2[T any](xs []T) ([]T, T) {
	butLast, last := LeftGather[T](2)(xs)
	return butLast, last[0]
}
