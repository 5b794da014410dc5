package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySink_RecordEvent(t *testing.T) {
	sink := NewMemorySink(nil)
	sink.RecordEvent(Event{Category: CategoryExtraction, Level: LevelInfo, Message: "started"})
	sink.RecordEvent(Event{Category: CategoryComparison, Level: LevelWarn, Message: "diff found"})

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, CategoryExtraction, events[0].Category)
	assert.Equal(t, CategoryComparison, events[1].Category)
}

func TestMemorySink_RecordSpan(t *testing.T) {
	sink := NewMemorySink(nil)
	start := time.Now()
	sink.RecordSpan(Span{Component: "cwmp", Operation: "extract", Start: start, End: start.Add(2 * time.Second), Success: true})

	spans := sink.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, 2*time.Second, spans[0].Duration())
	assert.True(t, spans[0].Success)
}

func TestNewCorrelationID_Unique(t *testing.T) {
	a := NewCorrelationID()
	b := NewCorrelationID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
