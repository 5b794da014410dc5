package enhanced

import (
	"context"
	"time"

	"github.com/tr181kit/compare/hook"
	"github.com/tr181kit/compare/node"
	"github.com/tr181kit/compare/observability"
)

// EventTestResult records the outcome of probing one declared event through
// a live hook.
type EventTestResult struct {
	// NodePath is the path of the node that declared the event.
	NodePath string `json:"node_path"`
	// Event is the declared event descriptor.
	Event node.EventDescriptor `json:"event"`
	// Subscribed reports whether SubscribeToEvent reported success.
	Subscribed bool `json:"subscribed"`
	// Err holds the error, if any, returned by SubscribeToEvent. Formatted
	// as a string since Report values cross a JSON boundary.
	Err string `json:"error,omitempty"`
}

// testEvents subscribes to every event declared on nodes, never aborting on
// an individual failure: event probing is aggregated per spec.md §4.7.
func (e *Engine) testEvents(ctx context.Context, h hook.Hook, correlationID string, nodes []*node.Node) []EventTestResult {
	var results []EventTestResult
	for _, n := range nodes {
		for _, ev := range n.Events {
			start := time.Now()
			ok, err := h.SubscribeToEvent(ctx, ev.Path)
			e.cfg.sink.RecordSpan(observability.Span{
				Component: "enhanced.engine", Operation: "subscribe_to_event",
				CorrelationID: correlationID, Start: start, End: time.Now(), Success: err == nil && ok,
			})
			result := EventTestResult{NodePath: n.Path, Event: ev, Subscribed: ok}
			if err != nil {
				result.Err = err.Error()
				e.cfg.sink.RecordEvent(observability.Event{
					Timestamp: time.Now(), Level: observability.LevelWarn,
					Category: observability.CategoryValidation, Component: "enhanced.engine",
					CorrelationID: correlationID,
					Message:       "event subscription failed",
					Context:       map[string]any{"event": ev.Name, "path": ev.Path},
				})
			}
			results = append(results, result)
		}
	}
	return results
}
