// Package validated accumulates every error of a check instead of stopping at
// the first one. Configuration loading uses it to report all problems of a
// file at once.
package validated

import "errors"

// Validated wraps either a successful value or a collection of errors.
type Validated[E any, T any] struct {
	value  T
	errors []E
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid constructs a failed Validated holding a copy of errs. Calling it
// without errors still produces an invalid value.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	if len(errs) == 0 {
		return Validated[E, T]{errors: []E{}}
	}
	return Validated[E, T]{errors: append([]E(nil), errs...)}
}

// IsValid reports whether the value is valid.
func (v Validated[E, T]) IsValid() bool {
	return v.errors == nil
}

// Value returns the stored value and whether it is valid.
func (v Validated[E, T]) Value() (T, bool) {
	return v.value, v.IsValid()
}

// Traverse maps items to Validated values and collects them, keeping the
// errors of every failed item.
func Traverse[E any, A any, B any](items []A, fn func(A) Validated[E, B]) Validated[E, []B] {
	values := make([]B, 0, len(items))
	var errs []E
	for _, item := range items {
		res := fn(item)
		if res.IsValid() {
			values = append(values, res.value)
			continue
		}
		errs = appendErrors(errs, res.errors)
	}
	if errs != nil {
		return Validated[E, []B]{errors: errs}
	}
	return Valid[E](values)
}

// Err joins the errors of an invalid value with errors.Join. It returns nil
// for a valid value.
func Err[T any](v Validated[error, T]) error {
	if v.IsValid() {
		return nil
	}
	if len(v.errors) == 0 {
		return errors.New("validated: invalid without errors")
	}
	return errors.Join(v.errors...)
}

func appendErrors[E any](dst []E, src []E) []E {
	if src == nil {
		return dst
	}
	if dst == nil {
		dst = make([]E, 0, len(src))
	}
	return append(dst, src...)
}
