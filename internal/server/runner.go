package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrsync/internal/config"
	"github.com/vmunix/arrsync/internal/jobs"
)

// eventRetention is how long the event log keeps entries.
const eventRetention = 30 * 24 * time.Hour

// Runner runs the scheduled jobs of an App until its context ends.
type Runner struct {
	app      *App
	schedule config.ScheduleConfig
	lockPath string
	log      *slog.Logger

	busy sync.Mutex // held while a job runs
}

// NewRunner creates a runner.
func NewRunner(app *App, schedule config.ScheduleConfig, lockPath string, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{app: app, schedule: schedule, lockPath: lockPath, log: log.With("component", "runner")}
}

// Run takes the process lock, starts the scheduler and blocks until ctx is
// done. A job in flight when ctx ends is allowed to return first.
func (r *Runner) Run(ctx context.Context) error {
	lock, err := AcquireLock(r.lockPath)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	g, ctx := errgroup.WithContext(ctx)
	c, err := r.scheduler(ctx)
	if err != nil {
		return err
	}

	g.Go(func() error {
		c.Start()
		r.log.Info("scheduler started", "jobs", len(c.Entries()))
		<-ctx.Done()
		<-c.Stop().Done()
		r.log.Info("scheduler stopped")
		return nil
	})
	g.Go(func() error {
		r.logEvents(ctx)
		return nil
	})
	return g.Wait()
}

// scheduler registers one cron entry per enabled schedule.
func (r *Runner) scheduler(ctx context.Context) (*cron.Cron, error) {
	logger := cronLogger{log: r.log}
	c := cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger)))

	entries := []struct {
		name, spec string
		fn         func(context.Context) error
	}{
		{"import", r.schedule.Import, func(ctx context.Context) error {
			_, _, err := r.app.Import(ctx, jobs.ImportOptions{})
			return err
		}},
		{"search", r.schedule.Search, func(ctx context.Context) error {
			_, err := r.app.SearchAll(ctx)
			return err
		}},
		{"cleanup", r.schedule.Cleanup, func(ctx context.Context) error {
			_, err := r.app.CleanUp(ctx, "")
			return err
		}},
	}
	for _, e := range entries {
		if e.spec == "" {
			r.log.Info("job disabled", "job", e.name)
			continue
		}
		if _, err := c.AddFunc(e.spec, func() { r.trigger(ctx, e.name, e.fn) }); err != nil {
			return nil, fmt.Errorf("schedule %s %q: %w", e.name, e.spec, err)
		}
	}
	if _, err := c.AddFunc("@daily", func() { r.trigger(ctx, "maintenance", r.maintain) }); err != nil {
		return nil, fmt.Errorf("schedule maintenance: %w", err)
	}
	return c, nil
}

// maintain drops expired cache entries and old events.
func (r *Runner) maintain(ctx context.Context) error {
	cached, err := r.app.Cache.Prune(ctx)
	if err != nil {
		return fmt.Errorf("prune metadata cache: %w", err)
	}
	pruned, err := r.app.Events.Prune(eventRetention)
	if err != nil {
		return fmt.Errorf("prune events: %w", err)
	}
	r.log.Info("maintenance done", "cache_entries", cached, "events", pruned)
	return nil
}

// trigger runs fn unless another job is still running. Jobs never overlap.
func (r *Runner) trigger(ctx context.Context, name string, fn func(context.Context) error) bool {
	if !r.busy.TryLock() {
		r.log.Warn("skipping scheduled job, another job is running", "job", name)
		return false
	}
	defer r.busy.Unlock()
	if ctx.Err() != nil {
		return false
	}
	if err := fn(ctx); err != nil {
		r.log.Error("scheduled job failed", "job", name, "error", err)
	}
	return true
}

// logEvents mirrors bus traffic into the debug log.
func (r *Runner) logEvents(ctx context.Context) {
	ch := r.app.Bus.SubscribeAll(64)
	defer r.app.Bus.Unsubscribe(ch)
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			r.log.Debug("event", "type", e.EventType(), "entity", e.EntityType(), "entity_id", e.EntityID())
		}
	}
}
