package cwmp

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
)

// Extractor realizes extractor.Extractor over a CWMP/TR-069 hook: it
// discovers the parameter tree by recursive name enumeration, then
// retrieves attributes and values in batches.
type Extractor struct {
	cfg    *config
	hook   hook.Hook
	device hook.DeviceConfig
	sink   observability.Sink
}

// New constructs a CWMP Extractor bound to h and device. sink may be nil,
// in which case an in-memory sink that discards log output is used.
func New(h hook.Hook, device hook.DeviceConfig, sink observability.Sink, opts ...Option) *Extractor {
	if sink == nil {
		sink = observability.NewMemorySink(nil)
	}
	return &Extractor{
		cfg:    newConfig(opts...),
		hook:   h,
		device: device,
		sink:   sink,
	}
}

// Extract implements extractor.Extractor. It acquires the hook connection,
// guarantees release on every exit path, performs BFS discovery followed
// by batched retrieval, and returns the constructed nodes alongside a
// PartialResult describing any per-path retrieval failures.
func (e *Extractor) Extract(ctx context.Context) ([]*node.Node, *retry.PartialResult[string, *node.Node], error) {
	correlationID := observability.NewCorrelationID()
	start := time.Now()

	if err := e.connect(ctx, correlationID); err != nil {
		return nil, nil, err
	}
	defer e.disconnect(ctx, correlationID)

	disc, err := discover(ctx, e.hook, e.cfg.maxDepth, e.sink)
	if err != nil {
		e.recordSpan(correlationID, "discover", start, false)
		return nil, nil, err
	}
	for _, w := range disc.warnings {
		e.sink.RecordEvent(observability.Event{
			Timestamp:     time.Now(),
			Level:         observability.LevelWarn,
			Category:      observability.CategoryExtraction,
			Component:     "cwmp.extractor",
			CorrelationID: correlationID,
			Message:       w,
		})
	}

	nodes, partial, warnings := retrieveAll(ctx, e.hook, disc.leaves, e.cfg.batchSize)
	for _, w := range warnings {
		e.sink.RecordEvent(observability.Event{
			Timestamp:     time.Now(),
			Level:         observability.LevelWarn,
			Category:      observability.CategoryExtraction,
			Component:     "cwmp.extractor",
			CorrelationID: correlationID,
			Message:       w,
		})
	}

	e.recordSpan(correlationID, "extract", start, true)

	if partial.Total > 0 && partial.SuccessRate() < e.cfg.minSuccessRate {
		return nodes, partial, &cmperrors.ValidationError{
			Context: cmperrors.Context{
				Operation:     "extract",
				Component:     "cwmp",
				CorrelationID: correlationID,
				Metadata: map[string]any{
					"success_rate": partial.SuccessRate(),
					"min_required": e.cfg.minSuccessRate,
				},
			},
			Field:        "success_rate",
			Value:        partial.SuccessRate(),
			RecoveryHint: "investigate the failed paths in the partial result and retry the extraction",
		}
	}

	return nodes, partial, nil
}

// Validate implements extractor.Extractor as a cheap liveness check: it
// attempts Connect/Disconnect without performing discovery.
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
		Type:       "cwmp",
		Identifier: e.device.Name,
		Timestamp:  time.Now(),
		Metadata: map[string]any{
			"endpoint": e.device.Endpoint,
		},
	}
}

func (e *Extractor) connect(ctx context.Context, correlationID string) error {
	connectCtx, cancel := context.WithTimeout(ctx, e.device.EffectiveTimeout())
	defer cancel()

	_, err := retry.Do(connectCtx, func(ctx context.Context, attempt int) (struct{}, error) {
		return struct{}{}, e.hook.Connect(ctx, e.device)
	}, retry.WithMaxAttempts(e.device.EffectiveRetryCount()))

	e.sink.RecordEvent(observability.Event{
		Timestamp:     time.Now(),
		Level:         levelFor(err),
		Category:      observability.CategoryConnection,
		Component:     "cwmp.extractor",
		CorrelationID: correlationID,
		Message:       connectMessage(e.device, err),
	})

	if err != nil {
		return fmt.Errorf("cwmp: connect to %s: %w", e.device.Endpoint, err)
	}
	return nil
}

func (e *Extractor) disconnect(ctx context.Context, correlationID string) {
	if err := e.hook.Disconnect(ctx); err != nil {
		e.sink.Warn("cwmp: disconnect from "+e.device.Endpoint+" failed", "error", err, "correlation_id", correlationID)
	}
}

func (e *Extractor) recordSpan(correlationID, operation string, start time.Time, success bool) {
	e.sink.RecordSpan(observability.Span{
		Component:     "cwmp.extractor",
		Operation:     operation,
		CorrelationID: correlationID,
		Start:         start,
		End:           time.Now(),
		Success:       success,
	})
}

func levelFor(err error) observability.Level {
	if err != nil {
		return observability.LevelError
	}
	return observability.LevelInfo
}

func connectMessage(device hook.DeviceConfig, err error) string {
	if err != nil {
		return "cwmp: connect to " + device.Endpoint + " failed"
	}
	return "cwmp: connected to " + device.Endpoint
}

// Ensure Extractor implements extractor.Extractor at compile time.
var _ extractor.Extractor = (*Extractor)(nil)
