// Package fp provides small function combinators: partial application, unary
// adaptation, tap, maybe, once, left-variadic gathering and composition.
//
// Example:
//
//	shout := fp.Compose(
//		func(s string) string { return s + "!" },
//		strings.ToUpper,
//	)
//	fmt.Println(shout("go")) // GO!
package fp

// Identity is the function Compose reduces to when given nothing to compose.
func Identity[T any](v T) T {
	return v
}

// Curry splits a binary function into a chain of single-argument functions,
// so the first argument can be fixed ahead of the second.
//
// Example:
//
//	greetFrom := Curry(greet)
//	heliosGreets := greetFrom("Helios")
//	heliosGreets("Eartha")
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}
