package observability

import "github.com/google/uuid"

// NewCorrelationID returns a new opaque correlation id used to link log
// events, spans, and errors belonging to one logical operation.
func NewCorrelationID() string {
	return uuid.NewString()
}
