// Package option models a value that may be missing. The combinators in fp
// return None where a call produced "no value".
package option

import (
	"fmt"

	"github.com/charmingruby/recipes/seq"
)

// Option represents presence or absence of a value of type T. The zero value is
// None. Some(nil) is a present value for nil-capable types; use IsSome to tell
// it apart from absence.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option for the provided type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome reports true when the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports true when the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value along with a boolean indicating whether it
// was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Fold collapses the Option into a single value by selecting onNone when the
// Option is empty or applying onSome to the contained value.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Map transforms the contained value with fn when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains the Option with another Option-valued function.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// Sequence turns a slice of Options into an Option of the values. Any None
// makes the whole result None.
//
// Example:
//
//	all := option.Sequence([]option.Option[int]{option.Some(1), option.Some(2)})
//	// Some([1 2])
func Sequence[T any](opts []Option[T]) Option[[]T] {
	return seq.FoldLeft(opts, Some(make([]T, 0, len(opts))), func(acc Option[[]T], o Option[T]) Option[[]T] {
		return FlatMap(acc, func(values []T) Option[[]T] {
			return Map(o, func(v T) []T { return append(values, v) })
		})
	})
}

// String implements fmt.Stringer and renders Some(v) or None.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
