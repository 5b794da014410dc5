package retry

import "time"

// RetryableFunc reports whether err should be retried. By default, only
// errors classified by cmperrors.IsRetryable are retried.
type RetryableFunc func(err error) bool

// config holds the resolved settings for one Do invocation.
type config struct {
	maxAttempts   int
	baseDelay     time.Duration
	maxDelay      time.Duration
	backoffFactor float64
	jitter        time.Duration
	isRetryable   RetryableFunc
}

// Option configures a Do invocation.
type Option func(*config)

// WithMaxAttempts sets the maximum number of attempts, including the first.
// Default: 3.
func WithMaxAttempts(n int) Option {
	return func(c *config) { c.maxAttempts = n }
}

// WithBaseDelay sets the delay before the second attempt.
// Default: 1s.
func WithBaseDelay(d time.Duration) Option {
	return func(c *config) { c.baseDelay = d }
}

// WithMaxDelay caps the computed delay between attempts, before jitter.
// Default: 60s.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) { c.maxDelay = d }
}

// WithBackoffFactor sets the multiplier applied to the delay after each
// attempt. Default: 2.0.
func WithBackoffFactor(f float64) Option {
	return func(c *config) { c.backoffFactor = f }
}

// WithJitter sets the maximum uniform random jitter added to each delay.
// Default: half of base_delay.
func WithJitter(d time.Duration) Option {
	return func(c *config) { c.jitter = d }
}

// WithRetryableFunc overrides which errors are eligible for retry.
// Default: cmperrors.IsRetryable.
func WithRetryableFunc(fn RetryableFunc) Option {
	return func(c *config) { c.isRetryable = fn }
}

// DefaultBaseDelay is the delay before the second attempt.
const DefaultBaseDelay = time.Second

// DefaultMaxDelay caps the computed delay between attempts, before jitter.
const DefaultMaxDelay = 60 * time.Second

// DefaultMaxAttempts is the maximum number of attempts, including the first.
const DefaultMaxAttempts = 3

// DefaultBackoffFactor is the multiplier applied to the delay after each attempt.
const DefaultBackoffFactor = 2.0

func newConfig(opts ...Option) *config {
	c := &config{
		maxAttempts:   DefaultMaxAttempts,
		baseDelay:     DefaultBaseDelay,
		maxDelay:      DefaultMaxDelay,
		backoffFactor: DefaultBackoffFactor,
		jitter:        -1,
		isRetryable:   defaultIsRetryable,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.jitter < 0 {
		c.jitter = c.baseDelay / 2
	}
	return c
}
