package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/relief-activity-service/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []int{}, func(_ context.Context, n int) (int, error) {
		t.Error("fn called for empty input")
		return n, nil
	})

	if results == nil || len(results) != 0 {
		t.Errorf("results = %v, want empty non-nil slice", results)
	}
}

func TestRun_PreservesOrderWithMixedOutcomes(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd")
	items := []int{5, 4, 3, 2, 1, 0}

	results := fanout.Run(context.Background(), 3, items, func(_ context.Context, n int) (int, error) {
		time.Sleep(time.Duration(n) * time.Millisecond)
		if n%2 == 1 {
			return 0, errOdd
		}
		return n * 10, nil
	})

	if len(results) != len(items) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(items))
	}
	for i, n := range items {
		r := results[i]
		if n%2 == 1 {
			if !errors.Is(r.Err, errOdd) {
				t.Errorf("results[%d].Err = %v, want errOdd", i, r.Err)
			}
			continue
		}
		if r.Err != nil || r.Value != n*10 {
			t.Errorf("results[%d] = %+v, want Value %d", i, r, n*10)
		}
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 3
	var active, peak atomic.Int32

	items := make([]int, 20)
	fanout.Run(context.Background(), maxWorkers, items, func(_ context.Context, _ int) (int, error) {
		cur := active.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		return 0, nil
	})

	if p := peak.Load(); p > maxWorkers {
		t.Errorf("peak concurrency %d exceeded %d", p, maxWorkers)
	}
}

func TestRun_NonPositiveWorkersRunsSerially(t *testing.T) {
	t.Parallel()

	var active atomic.Int32
	results := fanout.Run(context.Background(), 0, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		if active.Add(1) > 1 {
			t.Error("more than one worker running")
		}
		defer active.Add(-1)
		return n, nil
	})

	for i, r := range results {
		if r.Value != i+1 {
			t.Errorf("results[%d].Value = %d, want %d", i, r.Value, i+1)
		}
	}
}

func TestRun_CancellationSkipsRemainingItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 1 {
			cancel()
		}
		return n, nil
	})

	if c := calls.Load(); c != 1 {
		t.Errorf("fn called %d times, want 1", c)
	}
	if results[0].Err != nil || results[0].Value != 1 {
		t.Errorf("results[0] = %+v, want Value 1", results[0])
	}
	for _, r := range results[1:] {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result Err = %v, want context.Canceled", r.Err)
		}
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 2, []string{"ok", "boom", "ok"}, func(_ context.Context, s string) (string, error) {
		if s == "boom" {
			panic("exploded")
		}
		return s, nil
	})

	if !errors.Is(results[1].Err, fanout.ErrPanic) {
		t.Errorf("results[1].Err = %v, want ErrPanic", results[1].Err)
	}
	if results[0].Value != "ok" || results[2].Value != "ok" {
		t.Errorf("neighbors of the panic = %+v, %+v", results[0], results[2])
	}
}
