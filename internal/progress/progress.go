// Package progress tracks the status of a single job run.
package progress

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// ErrorRecord is a non-fatal error recorded during a run.
type ErrorRecord struct {
	Message string
	Err     error
	At      time.Time
}

// Error implements error so records can be wrapped and inspected.
func (r ErrorRecord) Error() string {
	if r.Err == nil {
		return r.Message
	}
	return r.Message + ": " + r.Err.Error()
}

// Unwrap returns the underlying cause.
func (r ErrorRecord) Unwrap() error { return r.Err }

// Notification is the progress token of one job run. Recording an error never
// aborts the run; callers inspect Errors once the run is over.
// A Notification is safe for concurrent use.
type Notification struct {
	ID    uuid.UUID
	Title string

	mu       sync.Mutex
	message  string
	status   Status
	errs     []ErrorRecord
	started  time.Time
	finished time.Time
	log      *slog.Logger
}

// New starts a notification for a run with the given title.
// A nil logger discards output.
func New(title string, log *slog.Logger) *Notification {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	id := uuid.New()
	return &Notification{
		ID:      id,
		Title:   title,
		status:  StatusRunning,
		started: time.Now(),
		log:     log.With("run", title, "run_id", id.String()),
	}
}

// SetMessage replaces the current status text.
func (n *Notification) SetMessage(msg string) {
	n.mu.Lock()
	n.message = msg
	n.mu.Unlock()
	n.log.Debug(msg)
}

// Message returns the current status text.
func (n *Notification) Message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message
}

// RecordError appends a non-fatal error to the run.
func (n *Notification) RecordError(msg string, err error) {
	n.mu.Lock()
	n.errs = append(n.errs, ErrorRecord{Message: msg, Err: err, At: time.Now()})
	n.mu.Unlock()
	n.log.Error(msg, "error", err)
}

// Errors returns a copy of the recorded errors in recording order.
func (n *Notification) Errors() []ErrorRecord {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ErrorRecord, len(n.errs))
	copy(out, n.errs)
	return out
}

// ErrorCount returns the number of recorded errors.
func (n *Notification) ErrorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errs)
}

// Complete marks the run finished. A non-nil err marks it failed.
// Completing twice keeps the first outcome.
func (n *Notification) Complete(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.status != StatusRunning {
		return
	}
	n.finished = time.Now()
	if err != nil {
		n.status = StatusFailed
		n.message = err.Error()
		return
	}
	n.status = StatusCompleted
}

// Status returns the lifecycle state of the run.
func (n *Notification) Status() Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.status
}

// Duration returns how long the run took, or has taken so far.
func (n *Notification) Duration() time.Duration {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.finished.IsZero() {
		return time.Since(n.started)
	}
	return n.finished.Sub(n.started)
}

// Snapshot is a point-in-time copy of a notification.
type Snapshot struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Status    Status        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// Snapshot copies the current state.
func (n *Notification) Snapshot() Snapshot {
	d := n.Duration()
	n.mu.Lock()
	defer n.mu.Unlock()
	s := Snapshot{
		ID:        n.ID,
		Title:     n.Title,
		Status:    n.status,
		Message:   n.message,
		StartedAt: n.started,
		Duration:  d,
	}
	for _, e := range n.errs {
		s.Errors = append(s.Errors, e.Error())
	}
	return s
}
