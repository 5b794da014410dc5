// Package issues provides a unified issue type for validation findings
// raised against TR-181 nodes and requirement documents.
package issues

import (
	"fmt"

	"github.com/tr181kit/compare/internal/severity"
)

// Issue represents a single problem found during node or document validation.
type Issue struct {
	// Path is the TR-181 node path the issue relates to (e.g. "Device.WiFi.Radio.1.Channel")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific node attribute with the issue (e.g. "data_type", "value")
	Field string
	// Value is the problematic value (optional)
	Value any
	// SpecRef documents which TR-181 convention or constraint was violated (optional)
	SpecRef string
	// Context provides additional free-form information about the issue (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)

	if i.SpecRef != "" {
		result += fmt.Sprintf("\n    Ref: %s", i.SpecRef)
	}
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}

	return result
}
