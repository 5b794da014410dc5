// Package retry provides exponential-backoff retry for a single operation
// and bounded-parallel partial-success aggregation ("degradation") over a
// batch of independent items.
//
// [Do] drives a [backoff.ExponentialBackOff] from
// github.com/cenkalti/backoff/v5, adding uniform jitter on top of its delay
// and stopping early on a [cmperrors]-classified non-retryable error.
// [Degrade] runs a batch of operations with bounded concurrency via
// golang.org/x/sync/errgroup, collecting successes and failures separately
// instead of aborting the whole batch on the first error.
package retry
