// Package jobs drives library synchronization: the per-series import pipeline,
// the season auto-ignore policy and the per-season search fan-out.
package jobs

import (
	"context"
	"time"

	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/progress"
)

//go:generate mockgen -destination=mocks/jobs_mock.go -package=mocks . SeriesLister,SeriesSyncRecorder,SeasonCatalog,EpisodeFileLister,SeriesJob,SeasonJob,SeasonIgnorer,Publisher

// SeriesArgs identifies the series a job runs against.
type SeriesArgs struct {
	SeriesID int64
}

// SeasonArgs identifies the season a job runs against.
type SeasonArgs struct {
	SeriesID     int64
	SeasonNumber int
}

// SeriesLister enumerates catalog series.
type SeriesLister interface {
	ListSeries(f library.SeriesFilter) ([]*library.Series, int, error)
}

// SeriesSyncRecorder stamps completed sync steps on a series.
type SeriesSyncRecorder interface {
	MarkInfoSynced(id int64, at time.Time) error
	MarkDiskSynced(id int64, at time.Time) error
}

// SeasonCatalog reads and updates season state.
type SeasonCatalog interface {
	SeasonNumbers(seriesID int64) ([]int, error)
	IsIgnored(seriesID int64, season int) (bool, error)
	SetIgnore(seriesID int64, season int, ignored bool) error
}

// EpisodeFileLister lists the episode files of a series.
type EpisodeFileLister interface {
	ListFilesBySeries(seriesID int64) ([]*library.EpisodeFile, error)
}

// SeriesJob is a unit of work scoped to one series.
type SeriesJob interface {
	Start(ctx context.Context, n *progress.Notification, args SeriesArgs) error
}

// SeasonJob is a unit of work scoped to one season.
type SeasonJob interface {
	Start(ctx context.Context, n *progress.Notification, args SeasonArgs) error
}

// SeasonIgnorer applies the season auto-ignore policy to a series.
type SeasonIgnorer interface {
	AutoIgnoreSeasons(ctx context.Context, seriesID int64) error
}

// Publisher publishes domain events.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}
