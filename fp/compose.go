package fp

import (
	"slices"

	"github.com/charmingruby/recipes/seq"
)

// Compose composes functions in right-to-left order, so Compose(f, g)(x) is
// f(g(x)). With no functions it is Identity; a single function is returned
// as is.
//
// Example:
//
//	doubleOfAddOne := Compose(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
//	value := doubleOfAddOne(2) // 6
func Compose[T any](fns ...func(T) T) func(T) T {
	switch len(fns) {
	case 0:
		return Identity[T]
	case 1:
		return fns[0]
	}
	first, rest := fns[0], Compose(fns[1:]...)
	return func(v T) T {
		return first(rest(v))
	}
}

// Pipeline is Compose in reading order: Pipeline(f, g)(x) is g(f(x)).
func Pipeline[T any](fns ...func(T) T) func(T) T {
	steps := slices.Clone(fns)
	return func(v T) T {
		return seq.FoldLeft(steps, v, func(acc T, fn func(T) T) T {
			return fn(acc)
		})
	}
}

// Pipe applies fns to value from left to right and returns the result.
//
// Example:
//
//	result := Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	return Pipeline(fns...)(value)
}

// Compose2 composes two functions whose types differ.
func Compose2[A any, B any, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 composes three functions right to left: Compose3(f, g, h)(x) is
// f(g(h(x))).
func Compose3[A any, B any, C any, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return Compose2(f, Compose2(g, h))
}
