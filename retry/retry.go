package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/tr181kit/compare/cmperrors"
)

func defaultIsRetryable(err error) bool {
	return cmperrors.IsRetryable(err)
}

// AttemptRecord describes one attempt of a Do invocation, for logging and
// diagnostics.
type AttemptRecord struct {
	// Attempt is the 1-based attempt number.
	Attempt int
	// Err is the error returned by this attempt, nil on success.
	Err error
	// Delay is how long Do slept after this attempt before the next one.
	// Zero on the final attempt.
	Delay time.Duration
}

// ExhaustedError is returned by Do when every attempt failed.
type ExhaustedError struct {
	// Attempts records every attempt made, in order.
	Attempts []AttemptRecord
	// LastErr is the error from the final attempt.
	LastErr error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry: exhausted %d attempts, last error: %v", len(e.Attempts), e.LastErr)
}

func (e *ExhaustedError) Unwrap() error { return e.LastErr }

// Operation is a unit of retryable work producing a result of type T.
type Operation[T any] func(ctx context.Context, attempt int) (T, error)

// Do runs op, retrying on errors that cfg classifies as retryable, with
// exponential backoff and jitter between attempts. The delay before attempt
// n+1 is min(baseDelay * backoffFactor^(n-1), maxDelay) plus a uniform
// random jitter in [0, jitter). Do stops immediately, without retrying, the
// first time op returns a non-retryable error or ctx is done.
func Do[T any](ctx context.Context, op Operation[T], opts ...Option) (T, error) {
	cfg := newConfig(opts...)

	bo := &backoff.ExponentialBackOff{
		InitialInterval:     cfg.baseDelay,
		Multiplier:          cfg.backoffFactor,
		MaxInterval:         cfg.maxDelay,
		RandomizationFactor: 0,
	}
	bo.Reset()

	var zero T
	var records []AttemptRecord

	for attempt := 1; ; attempt++ {
		result, err := op(ctx, attempt)
		if err == nil {
			records = append(records, AttemptRecord{Attempt: attempt})
			return result, nil
		}

		record := AttemptRecord{Attempt: attempt, Err: err}

		if attempt >= cfg.maxAttempts || !cfg.isRetryable(err) {
			records = append(records, record)
			return zero, &ExhaustedError{Attempts: records, LastErr: err}
		}

		delay := bo.NextBackOff()
		if cfg.jitter > 0 {
			delay += time.Duration(rand.Int63n(int64(cfg.jitter)))
		}
		record.Delay = delay
		records = append(records, record)

		select {
		case <-ctx.Done():
			return zero, &ExhaustedError{Attempts: records, LastErr: ctx.Err()}
		case <-time.After(delay):
		}
	}
}
