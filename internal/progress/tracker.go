package progress

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Tracker keeps the most recent notifications for status reporting.
type Tracker struct {
	mu    sync.Mutex
	items []*Notification
	max   int
	log   *slog.Logger
}

// NewTracker keeps at most max notifications; max <= 0 defaults to 20.
func NewTracker(max int, log *slog.Logger) *Tracker {
	if max <= 0 {
		max = 20
	}
	return &Tracker{max: max, log: log}
}

// Start creates a notification and tracks it, evicting the oldest when full.
func (t *Tracker) Start(title string) *Notification {
	n := New(title, t.log)
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, n)
	if len(t.items) > t.max {
		t.items = t.items[len(t.items)-t.max:]
	}
	return n
}

// Get returns a tracked notification by ID.
func (t *Tracker) Get(id uuid.UUID) (*Notification, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, n := range t.items {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// Recent returns snapshots of tracked notifications, newest first.
func (t *Tracker) Recent() []Snapshot {
	t.mu.Lock()
	items := make([]*Notification, len(t.items))
	copy(items, t.items)
	t.mu.Unlock()

	out := make([]Snapshot, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i].Snapshot())
	}
	return out
}
