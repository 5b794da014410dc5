package observability

import "sync"

// Sink extends Logger with structured event and span recording. A single
// Sink instance is process-wide, append-only, and safe for concurrent
// producers; it serializes internally.
type Sink interface {
	Logger

	// RecordEvent appends a structured Event.
	RecordEvent(e Event)

	// RecordSpan appends a completed Span.
	RecordSpan(s Span)
}

// MemorySink is an in-process reference Sink that retains every event and
// span it receives, for use in tests and examples.
type MemorySink struct {
	Logger

	mu     sync.Mutex
	events []Event
	spans  []Span
}

// NewMemorySink wraps logger (NopLogger{} if nil) with in-memory event and
// span recording.
func NewMemorySink(logger Logger) *MemorySink {
	if logger == nil {
		logger = NopLogger{}
	}
	return &MemorySink{Logger: logger}
}

// RecordEvent implements Sink.
func (m *MemorySink) RecordEvent(e Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
}

// RecordSpan implements Sink.
func (m *MemorySink) RecordSpan(s Span) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spans = append(m.spans, s)
}

// Events returns a copy of every event recorded so far.
func (m *MemorySink) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

// Spans returns a copy of every span recorded so far.
func (m *MemorySink) Spans() []Span {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Span(nil), m.spans...)
}

// Ensure MemorySink implements Sink at compile time.
var _ Sink = (*MemorySink)(nil)
