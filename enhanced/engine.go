package enhanced

import (
	"context"
	"time"

	"github.com/tr181kit/compare/compare"
	"github.com/tr181kit/compare/node"
	"github.com/tr181kit/compare/observability"
	"github.com/tr181kit/compare/validator"
)

// Engine composes the base comparison engine with the validator and, when
// configured with a live hook, event/function probing. It never subclasses
// compare.Compare; it calls it and layers additional findings onto the
// result, per the Design Note on composition over a base comparison engine.
type Engine struct {
	cfg *config
}

// New constructs an Engine. Without WithLiveHook, Compare performs §4.6
// comparison plus §4.7 per-node validation only.
func New(opts ...Option) *Engine {
	return &Engine{cfg: newConfig(opts...)}
}

// Report is a compare.Report augmented with per-node validation results and,
// when a live hook was configured, event and function test results.
type Report struct {
	*compare.Report

	// ValidationResults maps a requirement-side node path to the outcome of
	// validating its declared schema against the corresponding device
	// node's actual value. A path absent from this map was not present on
	// the requirement side, or had no device counterpart to validate against.
	ValidationResults map[string]*validator.Result `json:"validation_results,omitempty"`

	// EventTestResults is nil unless WithLiveHook was supplied.
	EventTestResults []EventTestResult `json:"event_test_results,omitempty"`
	// FunctionTestResults is nil unless WithLiveHook was supplied.
	FunctionTestResults []FunctionTestResult `json:"function_test_results,omitempty"`
}

// Compare runs the base set/attribute comparison between requirement (the
// declared, spec side) and actual (the extracted device side), then
// validates every requirement node against its actual counterpart's value,
// and, if a live hook was configured, probes every declared event and
// function. Event and function failures are aggregated, never aborting the
// comparison, per spec.md §4.7.
func (e *Engine) Compare(ctx context.Context, requirement, actual []*node.Node) (*Report, error) {
	correlationID := observability.NewCorrelationID()
	start := time.Now()

	base, err := compare.Compare(requirement, actual, e.cfg.compareOpts...)
	if err != nil {
		e.cfg.sink.RecordSpan(observability.Span{
			Component: "enhanced.engine", Operation: "compare",
			CorrelationID: correlationID, Start: start, End: time.Now(), Success: false,
		})
		return nil, err
	}

	report := &Report{
		Report:            base,
		ValidationResults: e.validateAgainstActual(requirement, actual),
	}

	if e.cfg.liveHook != nil {
		if err := e.cfg.liveHook.Connect(ctx, e.cfg.liveDevice); err != nil {
			e.cfg.sink.Warn("enhanced: live hook connect failed, skipping event/function probing", "error", err)
		} else {
			defer func() {
				if derr := e.cfg.liveHook.Disconnect(ctx); derr != nil {
					e.cfg.sink.Warn("enhanced: live hook disconnect failed", "error", derr)
				}
			}()
			report.EventTestResults = e.testEvents(ctx, e.cfg.liveHook, correlationID, requirement)
			report.FunctionTestResults = e.testFunctions(ctx, e.cfg.liveHook, correlationID, requirement)
		}
	}

	e.cfg.sink.RecordSpan(observability.Span{
		Component: "enhanced.engine", Operation: "compare",
		CorrelationID: correlationID, Start: start, End: time.Now(), Success: true,
	})

	return report, nil
}

// validateAgainstActual validates each requirement node's declared schema
// (data_type, access, value_range) against the value actually extracted
// for the same path. The merged node takes the extracted node's Origin, so
// values extracted from a CWMP source get the lenient treatment
// ValidateNode applies to node.OriginCWMP.
func (e *Engine) validateAgainstActual(requirement, actual []*node.Node) map[string]*validator.Result {
	if len(requirement) == 0 {
		return nil
	}
	actualIndex := node.NewPathIndex(actual)

	results := make(map[string]*validator.Result, len(requirement))
	for _, req := range requirement {
		actualNode := actualIndex.Get(req.Path)
		if actualNode == nil {
			continue
		}
		merged := req.Clone()
		merged.Value = actualNode.Value
		merged.Origin = actualNode.Origin
		results[req.Path] = e.cfg.validator.ValidateNode(merged, false)
	}
	return results
}
