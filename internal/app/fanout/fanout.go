// Package fanout runs a function over a slice of items on a bounded pool of
// worker goroutines, keeping results in input order.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrPanic wraps a panic recovered from fn.
var ErrPanic = errors.New("fanout: panic in worker")

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item using at most maxWorkers goroutines and returns
// the results in input order. A maxWorkers below 1 is treated as 1.
//
// Once ctx is done, items not yet started record ctx.Err() without calling
// fn. A panic in fn is recorded as an error wrapping ErrPanic for that item
// only. Run blocks until every item has a result; an empty items returns an
// empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	// Item errors are data here, so the group never cancels siblings.
	var g errgroup.Group
	g.SetLimit(min(max(maxWorkers, 1), len(items)))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			results[i] = call(ctx, item, fn)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanic, p)}
		}
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
