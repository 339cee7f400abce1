package task_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/charmingruby/recipes/task"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFromSkipsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ran := false
	_, err := task.From(func(_ context.Context) (int, error) {
		ran = true
		return 1, nil
	})(ctx)
	if !errors.Is(err, context.Canceled) || ran {
		t.Fatalf("expected cancellation before start, got %v ran=%v", err, ran)
	}
}

func TestTimeout(t *testing.T) {
	work := task.From(func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(100 * time.Millisecond):
			return 1, nil
		}
	})
	to := task.Timeout(work, 10*time.Millisecond)
	_, err := to(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestTapAndTapErr(t *testing.T) {
	var seen int
	var failed error
	boom := errors.New("boom")
	ok := task.Tap(task.From(func(context.Context) (int, error) { return 3, nil }), func(v int) { seen = v })
	bad := task.TapErr(task.From(func(context.Context) (int, error) { return 0, boom }), func(err error) { failed = err })
	if v, err := ok(context.Background()); err != nil || v != 3 || seen != 3 {
		t.Fatalf("tap should observe success, got %d %v seen=%d", v, err, seen)
	}
	if _, err := bad(context.Background()); !errors.Is(err, boom) || !errors.Is(failed, boom) {
		t.Fatalf("tap err should observe failure, got %v", failed)
	}
}

func TestTraverseParNCancelsOnError(t *testing.T) {
	boom := errors.New("boom")
	items := []int{0, 1, 2}
	_, err := task.TraverseParN(items, len(items), func(v int) task.Task[int] {
		return task.From(func(ctx context.Context) (int, error) {
			switch v {
			case 1:
				return 0, boom
			case 2:
				<-ctx.Done()
				return 0, ctx.Err()
			}
			return v, nil
		})
	})(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected first error, got %v", err)
	}
}

func TestTraverseParNRespectsLimit(t *testing.T) {
	var current atomic.Int32
	var peak atomic.Int32
	items := []int{1, 2, 3, 4, 5}
	fn := func(v int) task.Task[int] {
		return task.From(func(_ context.Context) (int, error) {
			n := current.Add(1)
			updatePeak(&peak, n)
			time.Sleep(5 * time.Millisecond)
			current.Add(-1)
			return v * 2, nil
		})
	}
	limit := 2
	values, err := task.TraverseParN(items, limit, fn)(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peak.Load() > int32(limit) {
		t.Fatalf("expected concurrency <= %d, got %d", limit, peak.Load())
	}
	if len(values) != len(items) {
		t.Fatalf("unexpected length")
	}
}

func TestTraverseParNPreservesOrder(t *testing.T) {
	items := []int{1, 2, 3, 4}
	fn := func(v int) task.Task[int] {
		return task.From(func(_ context.Context) (int, error) {
			time.Sleep(time.Duration(5-v) * time.Millisecond)
			return v * 3, nil
		})
	}
	values, err := task.TraverseParN(items, 2, fn)(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range items {
		if values[i] != v*3 {
			t.Fatalf("order mismatch at %d", i)
		}
	}
}

func TestTraverseParNEmptyAndNonPositiveLimit(t *testing.T) {
	values, err := task.TraverseParN([]int{}, 4, func(int) task.Task[int] { return nil })(context.Background())
	if err != nil || values == nil || len(values) != 0 {
		t.Fatalf("expected empty result, got %v %v", values, err)
	}
	values, err = task.TraverseParN([]int{1, 2}, 0, func(v int) task.Task[int] {
		return task.From(func(context.Context) (int, error) { return v, nil })
	})(context.Background())
	if err != nil || len(values) != 2 {
		t.Fatalf("non-positive limit should run sequentially, got %v %v", values, err)
	}
}

func updatePeak(peak *atomic.Int32, value int32) {
	for {
		old := peak.Load()
		if value <= old {
			return
		}
		if peak.CompareAndSwap(old, value) {
			return
		}
	}
}
