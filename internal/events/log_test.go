package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLog_Append(t *testing.T) {
	log := NewEventLog(setupTestDB(t))

	id, err := log.Append(&testEvent{BaseEvent: NewBaseEvent("test.created", "test", 1), Message: "hello"})
	require.NoError(t, err)
	assert.Positive(t, id)

	events, err := log.ForEntity("test", 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Payload, `"message":"hello"`)
	assert.Equal(t, "test.created", events[0].EventType)
	assert.Equal(t, int64(1), events[0].EntityID)
}

func TestEventLog_Since(t *testing.T) {
	log := NewEventLog(setupTestDB(t))

	old := &testEvent{BaseEvent: NewBaseEvent("test.old", "test", 1)}
	old.Timestamp = time.Now().Add(-2 * time.Hour)
	_, err := log.Append(old)
	require.NoError(t, err)
	_, err = log.Append(&testEvent{BaseEvent: NewBaseEvent("test.new", "test", 1)})
	require.NoError(t, err)

	events, err := log.Since(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "test.new", events[0].EventType)
}

func TestEventLog_Recent(t *testing.T) {
	log := NewEventLog(setupTestDB(t))
	for i := range 5 {
		_, err := log.Append(&testEvent{BaseEvent: NewBaseEvent("test.event", "test", int64(i))})
		require.NoError(t, err)
	}

	events, err := log.Recent(2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(4), events[0].EntityID, "newest first")
	assert.Equal(t, int64(3), events[1].EntityID)
}

func TestEventLog_Prune(t *testing.T) {
	log := NewEventLog(setupTestDB(t))

	old := &testEvent{BaseEvent: NewBaseEvent("test.old", "test", 1)}
	old.Timestamp = time.Now().Add(-48 * time.Hour)
	_, err := log.Append(old)
	require.NoError(t, err)
	_, err = log.Append(&testEvent{BaseEvent: NewBaseEvent("test.new", "test", 2)})
	require.NoError(t, err)

	pruned, err := log.Prune(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	remaining, err := log.Recent(10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "test.new", remaining[0].EventType)
}
