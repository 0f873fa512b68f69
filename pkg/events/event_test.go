package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenddesk/los/pkg/events"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	evt := events.NewBaseEvent("los.application.submitted", "app-001", "LoanApplication")
	after := time.Now().UTC()

	require.NotEmpty(t, evt.EventID())
	assert.Equal(t, "los.application.submitted", evt.EventType())
	assert.Equal(t, "app-001", evt.AggregateID())
	assert.Equal(t, "LoanApplication", evt.AggregateType())
	assert.False(t, evt.OccurredAt().Before(before))
	assert.False(t, evt.OccurredAt().After(after))
}

func TestNewBaseEvent_UniqueIDs(t *testing.T) {
	a := events.NewBaseEvent("los.application.submitted", "app-001", "LoanApplication")
	b := events.NewBaseEvent("los.application.submitted", "app-001", "LoanApplication")
	assert.NotEqual(t, a.EventID(), b.EventID())
}
