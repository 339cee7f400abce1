package fp

import (
	"github.com/charmingruby/recipes/option"
	"github.com/charmingruby/recipes/seq"
)

// Maybe guards fn against missing arguments. The returned function yields None
// without calling fn when it receives no arguments or when any argument is a
// nil pointer; otherwise it calls fn with the dereferenced values.
//
// Example:
//
//	sum := Maybe(func(xs ...int) int { return xs[0] + xs[1] + xs[2] })
//	sum(ptr(1), ptr(2), ptr(3)) // Some(6)
//	sum(ptr(1), nil, ptr(3))    // None
func Maybe[T any, R any](fn func(...T) R) func(...*T) option.Option[R] {
	return func(args ...*T) option.Option[R] {
		if len(args) == 0 {
			return option.None[R]()
		}
		present := option.Sequence(seq.Map(args, option.FromPtr[T]))
		return option.Map(present, func(values []T) R { return fn(values...) })
	}
}

// MaybeAny is Maybe for untyped arguments. Only the nil interface value counts
// as missing; a typed nil pointer is passed through.
func MaybeAny[R any](fn func(...any) R) func(...any) option.Option[R] {
	return func(args ...any) option.Option[R] {
		if len(args) == 0 || seq.Any(args, func(v any) bool { return v == nil }) {
			return option.None[R]()
		}
		return option.Some(fn(args...))
	}
}
