package cmperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConnection indicates a transport connection failure.
	ErrConnection = errors.New("connection error")

	// ErrAuthentication indicates credentials were rejected.
	ErrAuthentication = errors.New("authentication error")

	// ErrTimeout indicates an operation exceeded its deadline.
	ErrTimeout = errors.New("timeout error")

	// ErrProtocol indicates a malformed or unexpected transport response.
	ErrProtocol = errors.New("protocol error")

	// ErrValidation indicates input data violates declared structure.
	ErrValidation = errors.New("validation error")

	// ErrConfiguration indicates a loader or factory received invalid configuration.
	ErrConfiguration = errors.New("configuration error")
)

// Severity classifies how serious an error is, independent of its kind.
type Severity int

const (
	// SeverityLow indicates a minor issue with little operational impact.
	SeverityLow Severity = iota
	// SeverityMedium indicates a notable issue that may affect a single operation.
	SeverityMedium
	// SeverityHigh indicates a serious issue affecting a source or component.
	SeverityHigh
	// SeverityCritical indicates an issue severe enough to abort the run.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Context carries the operational details under which an error occurred.
type Context struct {
	// Operation is the logical operation in progress (e.g. "connect", "get_parameter_values")
	Operation string
	// Component is the subsystem that raised the error (e.g. "cwmp", "hook", "validator")
	Component string
	// Attempt is the 1-based retry attempt number, 0 if not applicable
	Attempt int
	// Metadata carries free-form structured context (path, prefix, batch index, ...)
	Metadata map[string]any
	// CorrelationID links this error to the log events and spans of the same logical operation
	CorrelationID string
}

func (c Context) describe() string {
	if c.Operation == "" && c.Component == "" && c.Attempt == 0 {
		return ""
	}
	s := ""
	if c.Component != "" {
		s += c.Component
	}
	if c.Operation != "" {
		if s != "" {
			s += "."
		}
		s += c.Operation
	}
	if c.Attempt > 0 {
		s += fmt.Sprintf(" (attempt %d)", c.Attempt)
	}
	return s
}

// ConnectionError represents a failure to establish or maintain a transport
// connection to a device or hook. Retryable.
type ConnectionError struct {
	Context
	// Endpoint is the transport endpoint that could not be reached
	Endpoint string
	// Severity classifies the impact of the failure
	Severity Severity
	// RecoveryHint is a one-line, human-readable suggestion for resolving the error
	RecoveryHint string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConnectionError) Error() string {
	msg := "connection error"
	if e.Endpoint != "" {
		msg += " to " + e.Endpoint
	}
	if d := e.Context.describe(); d != "" {
		msg += " [" + d + "]"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConnectionError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// Retryable reports that connection errors are eligible for the retry wrapper.
func (e *ConnectionError) Retryable() bool { return true }

// AuthenticationError represents rejected credentials. Not retryable.
type AuthenticationError struct {
	Context
	// AuthType is the authentication scheme that was rejected (basic, digest, bearer, ...)
	AuthType string
	// Severity classifies the impact of the failure
	Severity Severity
	// RecoveryHint is a one-line, human-readable suggestion for resolving the error
	RecoveryHint string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *AuthenticationError) Error() string {
	msg := "authentication error"
	if e.AuthType != "" {
		msg += " (" + e.AuthType + ")"
	}
	if d := e.Context.describe(); d != "" {
		msg += " [" + d + "]"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *AuthenticationError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

// Retryable is always false: rejected credentials will not succeed on replay.
func (e *AuthenticationError) Retryable() bool { return false }

// TimeoutError represents an operation that exceeded its deadline. Retryable.
type TimeoutError struct {
	Context
	// Deadline describes the deadline that was exceeded, as configured (e.g. "5s")
	Deadline string
	// Severity classifies the impact of the failure
	Severity Severity
	// RecoveryHint is a one-line, human-readable suggestion for resolving the error
	RecoveryHint string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TimeoutError) Error() string {
	msg := "timeout error"
	if e.Deadline != "" {
		msg += " after " + e.Deadline
	}
	if d := e.Context.describe(); d != "" {
		msg += " [" + d + "]"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TimeoutError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// Retryable is always true for timeouts.
func (e *TimeoutError) Retryable() bool { return true }

// ProtocolError represents a malformed or unexpected transport response.
// Retryable only when Transient is set.
type ProtocolError struct {
	Context
	// Transient indicates the malformed response may be a one-off and safe to retry
	Transient bool
	// Severity classifies the impact of the failure
	Severity Severity
	// RecoveryHint is a one-line, human-readable suggestion for resolving the error
	RecoveryHint string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ProtocolError) Error() string {
	msg := "protocol error"
	if d := e.Context.describe(); d != "" {
		msg += " [" + d + "]"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ProtocolError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }

// Retryable reports whether this error was flagged as transient.
func (e *ProtocolError) Retryable() bool { return e.Transient }

// ValidationError represents input data that violates declared structure.
// Not retryable.
type ValidationError struct {
	Context
	// Path is the TR-181 node path the error relates to
	Path string
	// Field is the specific node attribute with the issue
	Field string
	// Value is the problematic value, if any
	Value any
	// Severity classifies the impact of the failure
	Severity Severity
	// RecoveryHint is a one-line, human-readable suggestion for resolving the error
	RecoveryHint string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Field != "" {
		msg += "." + e.Field
	}
	if d := e.Context.describe(); d != "" {
		msg += " [" + d + "]"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Retryable is always false: the input will not validate on replay without change.
func (e *ValidationError) Retryable() bool { return false }

// ConfigurationError represents invalid loader or factory configuration. Fatal.
type ConfigurationError struct {
	Context
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided, if any
	Value any
	// Severity classifies the impact of the failure
	Severity Severity
	// RecoveryHint is a one-line, human-readable suggestion for resolving the error
	RecoveryHint string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigurationError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if d := e.Context.describe(); d != "" {
		msg += " [" + d + "]"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigurationError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// Retryable is always false: configuration does not change between attempts.
func (e *ConfigurationError) Retryable() bool { return false }
