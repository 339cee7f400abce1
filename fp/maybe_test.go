package fp_test

import (
	"testing"

	"github.com/charmingruby/recipes/fp"
)

func ptr[T any](v T) *T { return &v }

func sum3(xs ...int) int { return xs[0] + xs[1] + xs[2] }

func TestMaybeCallsThroughWhenAllPresent(t *testing.T) {
	got, ok := fp.Maybe(sum3)(ptr(1), ptr(2), ptr(3)).Get()
	if !ok || got != 6 {
		t.Fatalf("expected Some(6), got %v %v", got, ok)
	}
}

func TestMaybeSkipsOnNil(t *testing.T) {
	calls := 0
	guarded := fp.Maybe(func(xs ...int) int { calls++; return sum3(xs...) })
	if guarded(ptr(1), nil, ptr(3)).IsSome() {
		t.Fatalf("expected None for nil argument")
	}
	if guarded().IsSome() {
		t.Fatalf("expected None without arguments")
	}
	if calls != 0 {
		t.Fatalf("wrapped function must not run, ran %d times", calls)
	}
}

func TestMaybeZeroValuesArePresent(t *testing.T) {
	got := fp.Maybe(sum3)(ptr(0), ptr(0), ptr(0))
	if got.IsNone() {
		t.Fatalf("zero values are not missing")
	}
}

func TestMaybeAnyUsesStrictNil(t *testing.T) {
	count := fp.MaybeAny(func(xs ...any) int { return len(xs) })
	if count(1, nil, "x").IsSome() {
		t.Fatalf("expected None for nil interface")
	}
	var typedNil *int
	got, ok := count(typedNil, 0, "").Get()
	if !ok || got != 3 {
		t.Fatalf("typed nil should pass through, got %v %v", got, ok)
	}
	if count().IsSome() {
		t.Fatalf("expected None without arguments")
	}
}
