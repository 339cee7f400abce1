package fp

import "slices"

// CallFirst binds the first argument of a binary function.
//
// Example:
//
//	greet := func(me, you string) string { return "Hello, " + you + ", my name is " + me }
//	celineGreets := CallFirst(greet, "Celine")
//	celineGreets("Eartha") // Hello, Eartha, my name is Celine
func CallFirst[A any, B any, R any](fn func(A, B) R, first A) func(B) R {
	return Curry(fn)(first)
}

// CallLast binds the last argument of a binary function.
func CallLast[A any, B any, R any](fn func(A, B) R, last B) func(A) R {
	return func(a A) R {
		return fn(a, last)
	}
}

// CallLeft binds leading arguments of a variadic function. Arguments passed to
// the returned function follow the bound ones.
func CallLeft[T any, R any](fn func(...T) R, args ...T) func(...T) R {
	bound := slices.Clone(args)
	return func(rest ...T) R {
		return fn(slices.Concat(bound, rest)...)
	}
}

// CallRight binds trailing arguments of a variadic function. Arguments passed
// to the returned function come before the bound ones.
func CallRight[T any, R any](fn func(...T) R, args ...T) func(...T) R {
	bound := slices.Clone(args)
	return func(rest ...T) R {
		return fn(slices.Concat(rest, bound)...)
	}
}
