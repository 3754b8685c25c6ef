package progress

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n := New("Import new series", nil)

	assert.NotEqual(t, uuid.Nil, n.ID)
	assert.Equal(t, "Import new series", n.Title)
	assert.Equal(t, StatusRunning, n.Status())
	assert.Zero(t, n.ErrorCount())
	assert.Empty(t, n.Message())
}

func TestNotification_RecordError(t *testing.T) {
	n := New("run", nil)
	cause := errors.New("tvdb unreachable")

	n.RecordError("update info for The Office", cause)
	n.RecordError("disk scan for Lost", nil)

	require.Equal(t, 2, n.ErrorCount())
	errs := n.Errors()
	assert.ErrorIs(t, errs[0], cause)
	assert.Equal(t, "update info for The Office: tvdb unreachable", errs[0].Error())
	assert.Equal(t, "disk scan for Lost", errs[1].Error())
	assert.Equal(t, StatusRunning, n.Status(), "recording an error does not end the run")
}

func TestNotification_ErrorsIsACopy(t *testing.T) {
	n := New("run", nil)
	n.RecordError("boom", nil)

	errs := n.Errors()
	errs[0].Message = "changed"
	assert.Equal(t, "boom", n.Errors()[0].Message)
}

func TestNotification_Complete(t *testing.T) {
	n := New("run", nil)
	n.SetMessage("working")
	n.Complete(nil)
	assert.Equal(t, StatusCompleted, n.Status())

	n.Complete(errors.New("late failure"))
	assert.Equal(t, StatusCompleted, n.Status(), "first outcome wins")
	assert.Equal(t, "working", n.Message())
}

func TestNotification_CompleteWithError(t *testing.T) {
	n := New("run", nil)
	n.Complete(errors.New("list series: database is locked"))

	assert.Equal(t, StatusFailed, n.Status())
	assert.Equal(t, "list series: database is locked", n.Message())
}

func TestNotification_Snapshot(t *testing.T) {
	n := New("search", nil)
	n.SetMessage("searching season 2")
	n.RecordError("indexer nzbgeek", errors.New("timeout"))

	s := n.Snapshot()
	assert.Equal(t, n.ID, s.ID)
	assert.Equal(t, "search", s.Title)
	assert.Equal(t, "searching season 2", s.Message)
	assert.Equal(t, []string{"indexer nzbgeek: timeout"}, s.Errors)
}

func TestNotification_ConcurrentRecordError(t *testing.T) {
	n := New("run", nil)
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.RecordError("err", nil)
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, n.ErrorCount())
}

func TestTracker(t *testing.T) {
	tr := NewTracker(2, nil)

	first := tr.Start("first")
	second := tr.Start("second")
	third := tr.Start("third")

	_, ok := tr.Get(first.ID)
	assert.False(t, ok, "oldest is evicted")

	got, ok := tr.Get(second.ID)
	require.True(t, ok)
	assert.Same(t, second, got)

	recent := tr.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, third.ID, recent[0].ID, "newest first")
	assert.Equal(t, second.ID, recent[1].ID)
}
