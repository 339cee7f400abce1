package fp

// Unary wraps fn so that it only ever sees the first argument it is called
// with. Calling the result without arguments calls fn().
func Unary[T any, R any](fn func(...T) R) func(...T) R {
	return func(args ...T) R {
		if len(args) == 0 {
			return fn()
		}
		return fn(args[0])
	}
}

// Unary2 adapts fn, whose trailing arguments are optional, into a two-argument
// callback that forwards only its first argument. It lets a function such as
// a parser with an optional base be handed to seq.MapIndexed without the
// index leaking into the optional slot.
//
// Example:
//
//	parsed := seq.MapIndexed([]string{"1", "2", "3"}, Unary2(parseInt))
func Unary2[A any, B any, R any](fn func(A, ...B) R) func(A, B) R {
	return func(a A, _ B) R {
		return fn(a)
	}
}
