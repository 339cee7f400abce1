package fp

import (
	"sync/atomic"

	"github.com/charmingruby/recipes/option"
)

// Once returns a function that calls fn on its first invocation and returns
// Some of the result. Every later invocation returns None and does not call fn.
// It is safe for concurrent use; fn runs at most once.
//
// Example:
//
//	askedOnBlindDate := Once(func() string { return "sure, why not?" })
//	askedOnBlindDate() // Some(sure, why not?)
//	askedOnBlindDate() // None
func Once[R any](fn func() R) func() option.Option[R] {
	var done atomic.Bool
	return func() option.Option[R] {
		if !done.CompareAndSwap(false, true) {
			return option.None[R]()
		}
		return option.Some(fn())
	}
}

// OnceFunc is Once for functions run only for their effect. The returned
// function reports whether this call ran fn.
func OnceFunc(fn func()) func() bool {
	var done atomic.Bool
	return func() bool {
		if !done.CompareAndSwap(false, true) {
			return false
		}
		fn()
		return true
	}
}
