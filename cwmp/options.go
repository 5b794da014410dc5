package cwmp

// config holds the extractor's tunables, set through functional Options.
type config struct {
	maxDepth       int
	batchSize      int
	minSuccessRate float64
}

// Option configures a New call.
type Option func(*config)

// DefaultMaxDepth bounds how many prefix levels discovery will descend
// before pruning a subtree with a warning.
const DefaultMaxDepth = 32

// DefaultBatchSize is the number of leaf paths retrieved per
// attributes/values round trip.
const DefaultBatchSize = 50

// DefaultMinSuccessRate is the minimum fraction of leaf paths that must be
// retrieved successfully for Extract to return rather than fail.
const DefaultMinSuccessRate = 0.5

// WithMaxDepth overrides the discovery depth cap.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// WithBatchSize overrides the retrieval batch size.
func WithBatchSize(n int) Option {
	return func(c *config) { c.batchSize = n }
}

// WithMinSuccessRate overrides the minimum acceptable retrieval success
// rate below which Extract fails instead of returning a partial result.
func WithMinSuccessRate(r float64) Option {
	return func(c *config) { c.minSuccessRate = r }
}

func newConfig(opts ...Option) *config {
	c := &config{
		maxDepth:       DefaultMaxDepth,
		batchSize:      DefaultBatchSize,
		minSuccessRate: DefaultMinSuccessRate,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
