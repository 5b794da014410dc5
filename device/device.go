package device

import (
	"context"
	"fmt"
	"time"

	"github.com/tr181kit/compare/cmperrors"
	"github.com/tr181kit/compare/extractor"
	"github.com/tr181kit/compare/hook"
	"github.com/tr181kit/compare/node"
	"github.com/tr181kit/compare/observability"
	"github.com/tr181kit/compare/retry"
	"github.com/tr181kit/compare/validator"
)

// DefaultConcurrency bounds how many per-path fetches run in flight at once.
const DefaultConcurrency = 5

// DefaultMinSuccessRate is the minimum fraction of paths that must be
// retrieved successfully for Extract to return rather than fail.
const DefaultMinSuccessRate = 0.5

// Extractor realizes extractor.Extractor over a generic device REST API
// hook. Unlike cwmp.Extractor it performs no recursive discovery: one
// GetParameterNames call is assumed to return the full parameter set
// (direct and transitive, per the hook contract), and each leaf is then
// fetched independently under bounded concurrency via retry.Degrade.
type Extractor struct {
	hook           hook.Hook
	device         hook.DeviceConfig
	sink           observability.Sink
	concurrency    int
	minSuccessRate float64
}

// Option configures a New call.
type Option func(*Extractor)

// WithConcurrency overrides the bounded-parallel fetch width.
func WithConcurrency(n int) Option {
	return func(e *Extractor) { e.concurrency = n }
}

// WithMinSuccessRate overrides the minimum acceptable retrieval success rate.
func WithMinSuccessRate(r float64) Option {
	return func(e *Extractor) { e.minSuccessRate = r }
}

// New constructs a device Extractor bound to h and device. sink may be
// nil, in which case an in-memory sink that discards log output is used.
func New(h hook.Hook, device hook.DeviceConfig, sink observability.Sink, opts ...Option) *Extractor {
	if sink == nil {
		sink = observability.NewMemorySink(nil)
	}
	e := &Extractor{
		hook:           h,
		device:         device,
		sink:           sink,
		concurrency:    DefaultConcurrency,
		minSuccessRate: DefaultMinSuccessRate,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract implements extractor.Extractor.
func (e *Extractor) Extract(ctx context.Context) ([]*node.Node, *retry.PartialResult[string, *node.Node], error) {
	correlationID := observability.NewCorrelationID()
	start := time.Now()

	if err := e.hook.Connect(ctx, e.device); err != nil {
		return nil, nil, &cmperrors.ConnectionError{
			Context:  cmperrors.Context{Operation: "connect", Component: "device", CorrelationID: correlationID},
			Endpoint: e.device.Endpoint,
			Cause:    err,
		}
	}
	defer func() {
		if err := e.hook.Disconnect(ctx); err != nil {
			e.sink.Warn("device: disconnect failed", "endpoint", e.device.Endpoint, "error", err)
		}
	}()

	names, err := e.hook.GetParameterNames(ctx, node.RootPrefix)
	if err != nil {
		e.sink.RecordSpan(observability.Span{
			Component: "device.extractor", Operation: "extract",
			CorrelationID: correlationID, Start: start, End: time.Now(), Success: false,
		})
		return nil, nil, &cmperrors.ProtocolError{
			Context: cmperrors.Context{Operation: "discover", Component: "device", CorrelationID: correlationID},
			Cause:   err,
		}
	}

	var objects []*node.Node
	var leaves []string
	for _, name := range names {
		if node.IsObjectPath(name) {
			objects = append(objects, &node.Node{
				Path: name, Name: node.NameOf(name), IsObject: true, Origin: node.OriginDevice,
			})
			continue
		}
		leaves = append(leaves, name)
	}

	partial := retry.Degrade(ctx, leaves, e.concurrency, func(ctx context.Context, path string) (*node.Node, error) {
		return e.fetchOne(ctx, path)
	})

	nodes := append(objects, partial.Successful...)

	e.sink.RecordSpan(observability.Span{
		Component: "device.extractor", Operation: "extract",
		CorrelationID: correlationID, Start: start, End: time.Now(), Success: true,
	})

	if partial.Total > 0 && partial.SuccessRate() < e.minSuccessRate {
		return nodes, &partial, &cmperrors.ValidationError{
			Context: cmperrors.Context{
				Operation: "extract", Component: "device", CorrelationID: correlationID,
				Metadata: map[string]any{"success_rate": partial.SuccessRate(), "min_required": e.minSuccessRate},
			},
			Field:        "success_rate",
			Value:        partial.SuccessRate(),
			RecoveryHint: "investigate the failed paths in the partial result and retry the extraction",
		}
	}

	return nodes, &partial, nil
}

// fetchOne retrieves attributes and value for a single path and
// constructs its normalized node.
func (e *Extractor) fetchOne(ctx context.Context, path string) (*node.Node, error) {
	attrs, err := e.hook.GetParameterAttributes(ctx, []string{path})
	if err != nil {
		return nil, err
	}
	a, ok := attrs[path]
	if !ok {
		return nil, fmt.Errorf("device: no attributes returned for %q", path)
	}

	values, err := e.hook.GetParameterValues(ctx, []string{path})
	if err != nil {
		return nil, err
	}
	raw, hasValue := values[path]

	dt, _ := normalizeType(a.Type)
	access, _ := normalizeAccess(a.Access)

	n := &node.Node{
		Path:     path,
		Name:     node.NameOf(path),
		DataType: dt,
		Access:   access,
		Origin:   node.OriginDevice,
	}
	if hasValue {
		if coerced, err := validator.CoerceValue(dt, raw); err == nil {
			n.Value = coerced
		} else {
			n.Value = raw
		}
	}
	return n, nil
}

// Validate implements extractor.Extractor.
func (e *Extractor) Validate(ctx context.Context) bool {
	if err := e.hook.Connect(ctx, e.device); err != nil {
		return false
	}
	_ = e.hook.Disconnect(ctx)
	return true
}

// SourceInfo implements extractor.Extractor.
func (e *Extractor) SourceInfo() extractor.SourceInfo {
	return extractor.SourceInfo{
		Type:       "device",
		Identifier: e.device.Name,
		Timestamp:  time.Now(),
		Metadata:   map[string]any{"endpoint": e.device.Endpoint},
	}
}

// Ensure Extractor implements extractor.Extractor at compile time.
var _ extractor.Extractor = (*Extractor)(nil)
