package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/progress"
)

// SeriesSearchJob dispatches a season search for every wanted season of a series.
// Specials and ignored seasons are skipped.
type SeriesSearchJob struct {
	seasons SeasonCatalog
	search  SeasonJob
	log     *slog.Logger
}

// NewSeriesSearchJob creates the fan-out job.
func NewSeriesSearchJob(seasons SeasonCatalog, search SeasonJob, log *slog.Logger) *SeriesSearchJob {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &SeriesSearchJob{
		seasons: seasons,
		search:  search,
		log:     log.With("component", "series_search"),
	}
}

// Name is the title used for progress notifications.
func (j *SeriesSearchJob) Name() string { return "Series search" }

// Start dispatches season searches in season order. The first error stops the fan-out.
func (j *SeriesSearchJob) Start(ctx context.Context, n *progress.Notification, args SeriesArgs) error {
	seasons, err := j.seasons.SeasonNumbers(args.SeriesID)
	if err != nil {
		return fmt.Errorf("season numbers for series %d: %w", args.SeriesID, err)
	}

	dispatched := 0
	for _, s := range seasons {
		if s == library.SpecialsSeason {
			continue
		}
		ignored, err := j.seasons.IsIgnored(args.SeriesID, s)
		if err != nil {
			return fmt.Errorf("season %d of series %d: %w", s, args.SeriesID, err)
		}
		if ignored {
			j.log.Debug("skipping ignored season", "series_id", args.SeriesID, "season", s)
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		n.SetMessage(fmt.Sprintf("Searching season %d", s))
		if err := j.search.Start(ctx, n, SeasonArgs{SeriesID: args.SeriesID, SeasonNumber: s}); err != nil {
			return fmt.Errorf("search season %d of series %d: %w", s, args.SeriesID, err)
		}
		dispatched++
	}

	j.log.Info("series search dispatched", "series_id", args.SeriesID, "seasons", dispatched)
	return nil
}
