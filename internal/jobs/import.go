package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/progress"
)

// ImportOptions narrows an import run.
type ImportOptions struct {
	// OnlyNew restricts the run to series that never completed a metadata sync.
	OnlyNew bool
}

// ImportDeps are the collaborators of the import pipeline.
type ImportDeps struct {
	Series      SeriesLister
	Sync        SeriesSyncRecorder
	UpdateInfo  SeriesJob
	DiskScan    SeriesJob
	SceneUpdate SeriesJob
	Ignore      SeasonIgnorer
	Bus         Publisher // optional
}

// ImportNewSeriesJob runs metadata refresh, disk scan, scene numbering refresh and
// the ignore policy for every series, one series at a time.
type ImportNewSeriesJob struct {
	deps ImportDeps
	log  *slog.Logger
	now  func() time.Time
}

// NewImportNewSeriesJob creates the import pipeline.
func NewImportNewSeriesJob(deps ImportDeps, log *slog.Logger) *ImportNewSeriesJob {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ImportNewSeriesJob{
		deps: deps,
		log:  log.With("component", "import"),
		now:  time.Now,
	}
}

// Name is the title used for progress notifications.
func (j *ImportNewSeriesJob) Name() string { return "Import new series" }

// Start processes every series in the catalog.
func (j *ImportNewSeriesJob) Start(ctx context.Context, n *progress.Notification) error {
	_, err := j.Run(ctx, n, ImportOptions{})
	return err
}

// Run processes the series selected by opts in catalog order. A failing step is
// recorded once on n and abandons the rest of that series; the run continues with
// the next series. Only listing failures and cancellation end the run early.
func (j *ImportNewSeriesJob) Run(ctx context.Context, n *progress.Notification, opts ImportOptions) (*RunReport, error) {
	report := &RunReport{Failures: make(map[int64]StepResult)}

	series, _, err := j.deps.Series.ListSeries(library.SeriesFilter{NeverSynced: opts.OnlyNew})
	if err != nil {
		return report, fmt.Errorf("list series: %w", err)
	}

	j.log.Info("import started", "series", len(series), "only_new", opts.OnlyNew)
	j.publish(ctx, &events.ImportStarted{
		BaseEvent: events.NewBaseEvent(events.EventImportStarted, events.EntityRun, 0),
		OnlyNew:   opts.OnlyNew,
	})

	var runErr error
	for i, s := range series {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		n.SetMessage(fmt.Sprintf("Importing %s (%d/%d)", s.Title, i+1, len(series)))
		report.Attempted++

		result := j.syncSeries(ctx, n, s)
		if result.Failed() {
			report.Failed++
			report.Failures[s.ID] = result
			n.RecordError(fmt.Sprintf("import %q failed at %s", s.Title, result.Step), result.Err)
			j.publish(ctx, events.NewSeriesSyncFailed(s.ID, s.Title, result.Step, result.Err))
			continue
		}
		report.Succeeded++
		j.publish(ctx, events.NewSeriesSynced(s.ID, s.Title))
	}

	completed := &events.ImportCompleted{
		BaseEvent: events.NewBaseEvent(events.EventImportCompleted, events.EntityRun, 0),
		Processed: report.Attempted,
		Failed:    report.Failed,
	}
	if runErr != nil {
		completed.Error = runErr.Error()
	}
	j.publish(context.WithoutCancel(ctx), completed)

	j.log.Info("import finished",
		"attempted", report.Attempted,
		"succeeded", report.Succeeded,
		"failed", report.Failed)
	n.SetMessage(fmt.Sprintf("Imported %d of %d series", report.Succeeded, len(series)))
	return report, runErr
}

// syncSeries runs the pipeline for one series, stopping at the first failed step.
func (j *ImportNewSeriesJob) syncSeries(ctx context.Context, n *progress.Notification, s *library.Series) StepResult {
	args := SeriesArgs{SeriesID: s.ID}
	log := j.log.With("series_id", s.ID, "title", s.Title)

	steps := []struct {
		name string
		run  func() error
	}{
		{StepUpdateInfo, func() error {
			if err := j.deps.UpdateInfo.Start(ctx, n, args); err != nil {
				return err
			}
			return j.deps.Sync.MarkInfoSynced(s.ID, j.now())
		}},
		{StepDiskScan, func() error {
			if err := j.deps.DiskScan.Start(ctx, n, args); err != nil {
				return err
			}
			return j.deps.Sync.MarkDiskSynced(s.ID, j.now())
		}},
		{StepSceneUpdate, func() error { return j.deps.SceneUpdate.Start(ctx, n, args) }},
		{StepAutoIgnore, func() error { return j.deps.Ignore.AutoIgnoreSeasons(ctx, s.ID) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Warn("series step failed", "step", step.name, "error", err)
			return stepFailed(step.name, err)
		}
		log.Debug("series step done", "step", step.name)
	}
	return stepOK(StepAutoIgnore)
}

func (j *ImportNewSeriesJob) publish(ctx context.Context, e events.Event) {
	if j.deps.Bus == nil {
		return
	}
	if err := j.deps.Bus.Publish(ctx, e); err != nil {
		j.log.Warn("failed to publish event", "type", e.EventType(), "error", err)
	}
}
