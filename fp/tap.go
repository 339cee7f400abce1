package fp

// Tap returns a function that passes value to fn and then returns value
// unchanged. A nil fn is skipped.
//
// Example:
//
//	drink := Tap("espresso")(func(it string) {
//		fmt.Printf("Our drink is '%s'\n", it)
//	})
func Tap[T any](value T) func(fn func(T)) T {
	return func(fn func(T)) T {
		return TapWith(value, fn)
	}
}

// TapWith is the uncurried form of Tap.
func TapWith[T any](value T, fn func(T)) T {
	if fn != nil {
		fn(value)
	}
	return value
}
