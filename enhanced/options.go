package enhanced

import (
	"github.com/tr181kit/compare/compare"
	"github.com/tr181kit/compare/hook"
	"github.com/tr181kit/compare/observability"
	"github.com/tr181kit/compare/validator"
)

// config holds an Engine's tunables, set through functional Options in the
// same style as compare.Option and validator.Option.
type config struct {
	compareOpts []compare.Option
	validator   *validator.Validator
	sink        observability.Sink

	liveHook   hook.Hook
	liveDevice hook.DeviceConfig
}

// Option configures an Engine returned by New.
type Option func(*config)

// WithCompareOptions passes through options to the underlying compare.Compare call.
func WithCompareOptions(opts ...compare.Option) Option {
	return func(c *config) { c.compareOpts = append(c.compareOpts, opts...) }
}

// WithValidator overrides the validator.Validator used for per-node
// validation. Default: validator.New() with its own defaults.
func WithValidator(v *validator.Validator) Option {
	return func(c *config) { c.validator = v }
}

// WithSink overrides the observability.Sink events and spans are recorded
// to. Default: an in-memory sink that discards log output.
func WithSink(sink observability.Sink) Option {
	return func(c *config) { c.sink = sink }
}

// WithLiveHook supplies the transport and device used to drive event
// subscription and function invocation probing for every event/function
// declared on the requirement side. Compare connects h to device itself
// and disconnects it before returning. Without this option, Compare skips §4.7's live probing
// and returns a Report with nil EventTestResults/FunctionTestResults.
func WithLiveHook(h hook.Hook, device hook.DeviceConfig) Option {
	return func(c *config) {
		c.liveHook = h
		c.liveDevice = device
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		validator: validator.New(),
		sink:      observability.NewMemorySink(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
