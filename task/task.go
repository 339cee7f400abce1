// Package task defines context-aware computations and the combinators the
// recipe runner schedules them with.
//
// Example:
//
//	run := task.From(func(ctx context.Context) (string, error) {
//		return render(ctx, r)
//	})
//	bounded := task.Timeout(run, time.Second)
package task

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Task represents a computation that can be executed with a context.
type Task[T any] func(ctx context.Context) (T, error)

// From wraps a context-aware function into a Task that does not start once the
// context is already done.
//
// Example:
//
//	fetch := From(repo.Load)
//	user, err := fetch(ctx)
func From[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}

// Tap executes fn on success and passes the value through unchanged.
func Tap[T any](t Task[T], fn func(T)) Task[T] {
	return func(ctx context.Context) (T, error) {
		val, err := t(ctx)
		if err == nil {
			fn(val)
		}
		return val, err
	}
}

// TapErr executes fn when the Task fails.
//
// Example:
//
//	logged := TapErr(run, func(err error) {
//		log.Error("recipe failed", zap.Error(err))
//	})
func TapErr[T any](t Task[T], fn func(error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		val, err := t(ctx)
		if err != nil {
			fn(err)
		}
		return val, err
	}
}

// Timeout bounds the execution time of a Task. A non-positive d leaves t
// unbounded.
func Timeout[T any](t Task[T], d time.Duration) Task[T] {
	if d <= 0 {
		return t
	}
	return func(ctx context.Context) (T, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return t(ctx)
	}
}

// TraverseParN runs fn for every item with at most n tasks in flight. Results
// keep the order of items. The first failure cancels the remaining tasks and is
// returned.
//
// Example:
//
//	outputs := TraverseParN(recipes, 4, func(r Recipe) Task[string] {
//		return render(r)
//	})
func TraverseParN[A any, B any](items []A, n int, fn func(A) Task[B]) Task[[]B] {
	return func(ctx context.Context) ([]B, error) {
		if len(items) == 0 {
			return []B{}, nil
		}
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(clampParallelism(len(items), n))

		results := make([]B, len(items))
		for idx, item := range items {
			g.Go(func() error {
				val, err := fn(item)(ctx)
				if err != nil {
					return err
				}
				results[idx] = val
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return results, nil
	}
}

func clampParallelism(total, requested int) int {
	if requested <= 0 {
		return 1
	}
	return min(requested, total)
}
