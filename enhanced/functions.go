package enhanced

import (
	"context"
	"fmt"
	"time"

	"github.com/tr181kit/compare/hook"
	"github.com/tr181kit/compare/node"
	"github.com/tr181kit/compare/observability"
	"github.com/tr181kit/compare/validator"
)

// FunctionTestResult records the outcome of invoking one declared function
// through a live hook.
type FunctionTestResult struct {
	// NodePath is the path of the node that declared the function.
	NodePath string `json:"node_path"`
	// Function is the declared function descriptor.
	Function node.FunctionDescriptor `json:"function"`
	// Inputs holds the synthesized input values the call was made with.
	Inputs map[string]any `json:"inputs"`
	// Unverifiable lists input parameter names whose synthesized value
	// could not be derived from the declaration (e.g. a pattern-constrained
	// string) and was left at its zero value.
	Unverifiable []string `json:"unverifiable,omitempty"`
	// Outputs holds whatever the call returned, nil on failure.
	Outputs map[string]any `json:"outputs,omitempty"`
	// Err holds the error, if any, returned by CallFunction.
	Err string `json:"error,omitempty"`
	// Conformance lists output parameters declared but missing, or present
	// but not coercible to their declared data_type.
	Conformance []string `json:"conformance,omitempty"`
}

// synthesizeInputs builds a call payload from a function's declared input
// parameters. Resolved per spec.md §4.7 Open Question 2: a numeric
// parameter with a declared Min uses Min, else zero; a boolean uses false;
// a string with a Pattern is left empty and flagged unverifiable since
// generating a string that matches an arbitrary regex is out of scope; a
// string with AllowedValues uses the first entry; everything else uses its
// type's zero value.
func synthesizeInputs(params []node.ParameterDescriptor) (map[string]any, []string) {
	inputs := make(map[string]any, len(params))
	var unverifiable []string
	for _, p := range params {
		value, ok := synthesizeOne(p)
		inputs[p.Name] = value
		if !ok {
			unverifiable = append(unverifiable, p.Name)
		}
	}
	return inputs, unverifiable
}

func synthesizeOne(p node.ParameterDescriptor) (any, bool) {
	switch {
	case p.DataType.IsNumeric():
		if p.ValueRange != nil && p.ValueRange.Min != nil {
			lower := *p.ValueRange.Min
			if p.DataType.IsSigned() {
				return int64(lower), true
			}
			return uint64(lower), true
		}
		if p.DataType.IsSigned() {
			return int64(0), true
		}
		return uint64(0), true
	case p.DataType == node.DataTypeBoolean:
		return false, true
	case p.DataType == node.DataTypeDateTime:
		return "1970-01-01T00:00:00Z", true
	case p.DataType == node.DataTypeBase64, p.DataType == node.DataTypeHexBinary:
		return "", true
	default: // string and unknown
		if p.ValueRange != nil && len(p.ValueRange.AllowedValues) > 0 {
			return p.ValueRange.AllowedValues[0], true
		}
		if p.ValueRange != nil && p.ValueRange.Pattern != "" {
			return "", false
		}
		return "", true
	}
}

// testFunctions invokes every function declared on nodes, never aborting on
// an individual failure: function probing is aggregated per spec.md §4.7.
func (e *Engine) testFunctions(ctx context.Context, h hook.Hook, correlationID string, nodes []*node.Node) []FunctionTestResult {
	var results []FunctionTestResult
	for _, n := range nodes {
		for _, fn := range n.Functions {
			inputs, unverifiable := synthesizeInputs(fn.InputParameters)

			start := time.Now()
			outputs, err := h.CallFunction(ctx, fn.Path, inputs)
			success := err == nil
			e.cfg.sink.RecordSpan(observability.Span{
				Component: "enhanced.engine", Operation: "call_function",
				CorrelationID: correlationID, Start: start, End: time.Now(), Success: success,
			})

			result := FunctionTestResult{
				NodePath:     n.Path,
				Function:     fn,
				Inputs:       inputs,
				Unverifiable: unverifiable,
				Outputs:      outputs,
			}
			if err != nil {
				result.Err = err.Error()
				e.cfg.sink.RecordEvent(observability.Event{
					Timestamp: time.Now(), Level: observability.LevelWarn,
					Category: observability.CategoryValidation, Component: "enhanced.engine",
					CorrelationID: correlationID,
					Message:       "function call failed",
					Context:       map[string]any{"function": fn.Name, "path": fn.Path},
				})
			} else {
				result.Conformance = checkOutputConformance(fn.OutputParameters, outputs)
			}
			results = append(results, result)
		}
	}
	return results
}

// checkOutputConformance reports every declared output parameter that is
// missing from outputs or whose value does not coerce to its declared
// data_type.
func checkOutputConformance(declared []node.ParameterDescriptor, outputs map[string]any) []string {
	var problems []string
	for _, p := range declared {
		v, ok := outputs[p.Name]
		if !ok {
			problems = append(problems, fmt.Sprintf("output %q missing", p.Name))
			continue
		}
		if _, err := validator.CoerceValue(p.DataType, v); err != nil {
			problems = append(problems, fmt.Sprintf("output %q: %s", p.Name, err.Error()))
		}
	}
	return problems
}
