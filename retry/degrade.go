package retry

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Failure pairs an input item with the error its operation returned.
type Failure[I any] struct {
	Item I
	Err  error
}

// PartialResult holds the outcome of a Degrade call: every item either
// succeeded or failed, never both, and Total always equals
// len(Successful)+len(Failed).
type PartialResult[I, R any] struct {
	Successful []R
	Failed     []Failure[I]
	Total      int
}

// SuccessRate returns the fraction of items that succeeded, or 1.0 when
// Total is zero.
func (p PartialResult[I, R]) SuccessRate() float64 {
	if p.Total == 0 {
		return 1.0
	}
	return float64(len(p.Successful)) / float64(p.Total)
}

// DegradeFunc processes one item, returning its result or an error.
type DegradeFunc[I, R any] func(ctx context.Context, item I) (R, error)

// outcome holds one item's result, written by exactly one goroutine into
// its own slice slot so the collection pass after Wait needs no locking.
type outcome[R any] struct {
	ok  bool
	val R
	err error
}

// Degrade runs fn over items with up to concurrency goroutines in flight at
// once, collecting successes and failures independently rather than
// aborting the batch on the first error. A concurrency of 0 or less means
// unbounded. Degrade itself never returns an error; ctx cancellation is
// reflected as a per-item failure. Successful and Failed preserve the
// input order of items regardless of completion order, since each
// goroutine writes to its own pre-sized slot rather than appending.
func Degrade[I, R any](ctx context.Context, items []I, concurrency int, fn DegradeFunc[I, R]) PartialResult[I, R] {
	result := PartialResult[I, R]{Total: len(items)}
	if len(items) == 0 {
		return result
	}

	outcomes := make([]outcome[R], len(items))
	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := fn(gctx, item)
			if err != nil {
				outcomes[i] = outcome[R]{err: err}
			} else {
				outcomes[i] = outcome[R]{ok: true, val: r}
			}
			return nil
		})
	}

	// Every goroutine swallows its own error into outcomes, so Wait never
	// returns a non-nil error; call it only to block for completion.
	_ = g.Wait()

	result.Successful = make([]R, 0, len(items))
	for i, o := range outcomes {
		if o.ok {
			result.Successful = append(result.Successful, o.val)
		} else {
			result.Failed = append(result.Failed, Failure[I]{Item: items[i], Err: o.err})
		}
	}
	return result
}
