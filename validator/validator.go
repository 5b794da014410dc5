package validator

import (
	"fmt"

	"github.com/tr181kit/compare/internal/issues"
	"github.com/tr181kit/compare/internal/severity"
	"github.com/tr181kit/compare/node"
)

// Validator validates individual nodes and whole requirement documents
// against TR-181 path syntax, data-type coercion, value-range constraints,
// and custom-node namespace conventions.
type Validator struct {
	// IncludeWarnings controls whether warning-level findings are emitted.
	IncludeWarnings bool
	// StrictMode enables stricter rules beyond the base conventions.
	StrictMode bool
	// StandardNamespaces is the set of path prefixes considered standard.
	StandardNamespaces []string
}

// New constructs a Validator with the given options applied over the
// defaults (warnings included, strict mode off, [DefaultStandardNamespaces]).
func New(opts ...Option) *Validator {
	v := &Validator{
		IncludeWarnings:    true,
		StandardNamespaces: append([]string(nil), DefaultStandardNamespaces...),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Result holds the issues raised against one or more nodes.
type Result struct {
	Issues []issues.Issue
}

// HasErrors reports whether Result contains any error or critical severity issue.
func (r *Result) HasErrors() bool {
	for _, iss := range r.Issues {
		if iss.Severity == severity.SeverityError || iss.Severity == severity.SeverityCritical {
			return true
		}
	}
	return false
}

func (r *Result) addError(path, field, message string, value any) {
	r.Issues = append(r.Issues, issues.Issue{
		Path: path, Field: field, Message: message, Value: value,
		Severity: severity.SeverityError,
	})
}

func (r *Result) addWarning(v *Validator, path, field, message string, value any) {
	if !v.IncludeWarnings {
		return
	}
	r.Issues = append(r.Issues, issues.Issue{
		Path: path, Field: field, Message: message, Value: value,
		Severity: severity.SeverityWarning,
	})
}

// ValidateNode validates a single node in isolation: path syntax, data-type
// coercion of its Value against DataType, its ValueRange, and the
// custom-node namespace rule. allowTemplates permits "{placeholder}"
// segments, used for requirement-document nodes.
func (v *Validator) ValidateNode(n *node.Node, allowTemplates bool) *Result {
	result := &Result{}
	if n == nil {
		result.addError("", "", "node must not be nil", nil)
		return result
	}

	if err := ValidatePath(n.Path, allowTemplates); err != nil {
		result.addError(n.Path, "path", err.Error(), n.Path)
	}

	if n.DataType != node.DataTypeUnknown && !n.DataType.IsKnown() {
		if v.StrictMode {
			result.addError(n.Path, "data_type", fmt.Sprintf("unknown data_type %q", n.DataType), n.DataType)
		} else {
			result.addWarning(v, n.Path, "data_type", fmt.Sprintf("unknown data_type %q", n.DataType), n.DataType)
		}
	}

	if !n.IsObject && n.Value != nil {
		if raw, ok := n.Value.(string); ok && n.Origin == node.OriginCWMP && n.DataType != node.DataTypeUnknown && n.DataType != node.DataTypeString {
			result.addWarning(v, n.Path, "value", fmt.Sprintf("value %q is a string representation of declared type %s from a CWMP source", raw, n.DataType), n.Value)
		}

		coerced, err := CoerceValue(n.DataType, n.Value)
		if err != nil {
			if n.Origin == node.OriginCWMP {
				result.addWarning(v, n.Path, "value", err.Error(), n.Value)
			} else {
				result.addError(n.Path, "value", err.Error(), n.Value)
			}
		} else if n.ValueRange != nil {
			if err := ValidateRange(n.DataType, coerced, n.ValueRange); err != nil {
				result.addError(n.Path, "value", err.Error(), n.Value)
			}
		}
	}

	if n.IsCustom && !isStandardPath(n.Path, v.StandardNamespaces) {
		result.addWarning(v, n.Path, "is_custom", "custom node path does not fall under a standard namespace", n.Path)
	}

	for _, ev := range n.Events {
		if err := ValidatePath(ev.Path, allowTemplates); err != nil {
			result.addError(ev.Path, "events.path", err.Error(), ev.Path)
		}
	}
	for _, fn := range n.Functions {
		if err := ValidatePath(fn.Path, allowTemplates); err != nil {
			result.addError(fn.Path, "functions.path", err.Error(), fn.Path)
		}
		for _, p := range fn.InputParameters {
			if p.DataType != node.DataTypeUnknown && !p.DataType.IsKnown() {
				result.addWarning(v, fn.Path, "functions.input_parameters.data_type", fmt.Sprintf("unknown data_type %q", p.DataType), p.DataType)
			}
		}
		for _, p := range fn.OutputParameters {
			if p.DataType != node.DataTypeUnknown && !p.DataType.IsKnown() {
				result.addWarning(v, fn.Path, "functions.output_parameters.data_type", fmt.Sprintf("unknown data_type %q", p.DataType), p.DataType)
			}
		}
	}

	return result
}

// ValidateDocument validates a whole set of nodes together: every node
// individually, path uniqueness across the set, and that every event and
// function parameter path either resolves to another node in nodes or is
// left unverifiable (a warning, not an error, since function/event
// parameters may not have a standalone declaration).
func (v *Validator) ValidateDocument(nodes []*node.Node, allowTemplates bool) *Result {
	result := &Result{}
	seen := make(map[string]bool, len(nodes))

	for _, n := range nodes {
		nr := v.ValidateNode(n, allowTemplates)
		result.Issues = append(result.Issues, nr.Issues...)

		if seen[n.Path] {
			result.addError(n.Path, "path", fmt.Sprintf("duplicate path %q in document", n.Path), n.Path)
		}
		seen[n.Path] = true
	}

	for _, n := range nodes {
		for _, ev := range n.Events {
			for _, p := range ev.Parameters {
				if !seen[p] {
					result.addWarning(v, ev.Path, "events.parameters", fmt.Sprintf("event parameter path %q has no corresponding node", p), p)
				}
			}
		}
		for _, fn := range n.Functions {
			for _, p := range fn.InputParameters {
				if p.Path != "" && !seen[p.Path] {
					result.addWarning(v, fn.Path, "functions.input_parameters.path", fmt.Sprintf("function input parameter path %q has no corresponding node", p.Path), p.Path)
				}
			}
			for _, p := range fn.OutputParameters {
				if p.Path != "" && !seen[p.Path] {
					result.addWarning(v, fn.Path, "functions.output_parameters.path", fmt.Sprintf("function output parameter path %q has no corresponding node", p.Path), p.Path)
				}
			}
		}
	}

	return result
}
