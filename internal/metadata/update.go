package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vmunix/arrsync/internal/jobs"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/progress"
	"github.com/vmunix/arrsync/pkg/tvdb"
)

// Catalog is the part of the library store the refresh writes to.
type Catalog interface {
	GetSeries(id int64) (*library.Series, error)
	UpdateSeries(s *library.Series) error
	BulkUpsertEpisodes(episodes []*library.Episode) (int, error)
	EnsureSeason(seriesID int64, number int) error
}

// Source is where series metadata comes from. *Service satisfies it.
type Source interface {
	Series(ctx context.Context, tvdbID int64) (*tvdb.Series, error)
	Episodes(ctx context.Context, tvdbID int64) ([]tvdb.Episode, error)
}

// UpdateInfoJob refreshes a series' title, seasons and episodes from TVDB.
type UpdateInfoJob struct {
	catalog Catalog
	source  Source
	log     *slog.Logger
}

// NewUpdateInfoJob creates the metadata refresh step.
func NewUpdateInfoJob(catalog Catalog, source Source, log *slog.Logger) *UpdateInfoJob {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &UpdateInfoJob{catalog: catalog, source: source, log: log.With("component", "update_info")}
}

// Start refreshes one series.
func (j *UpdateInfoJob) Start(ctx context.Context, n *progress.Notification, args jobs.SeriesArgs) error {
	series, err := j.catalog.GetSeries(args.SeriesID)
	if err != nil {
		return fmt.Errorf("load series %d: %w", args.SeriesID, err)
	}
	if series.TVDBID == nil {
		return fmt.Errorf("series %d (%s): %w", series.ID, series.Title, ErrNoTVDBID)
	}
	tvdbID := *series.TVDBID
	n.SetMessage("Updating info for " + series.Title)

	info, err := j.source.Series(ctx, tvdbID)
	if err != nil {
		return fmt.Errorf("fetch series %d: %w", tvdbID, err)
	}
	remote, err := j.source.Episodes(ctx, tvdbID)
	if err != nil {
		return fmt.Errorf("fetch episodes of %d: %w", tvdbID, err)
	}

	episodes := make([]*library.Episode, 0, len(remote))
	var seasons []int
	for _, e := range remote {
		id := e.ID
		episodes = append(episodes, &library.Episode{
			SeriesID: series.ID,
			TVDBID:   &id,
			Season:   e.Season,
			Episode:  e.Number,
			Title:    e.Name,
			AirDate:  e.Aired,
		})
		if !slices.Contains(seasons, e.Season) {
			seasons = append(seasons, e.Season)
		}
	}
	slices.Sort(seasons)

	for _, s := range seasons {
		if err := j.catalog.EnsureSeason(series.ID, s); err != nil {
			return err
		}
	}
	added, err := j.catalog.BulkUpsertEpisodes(episodes)
	if err != nil {
		return fmt.Errorf("store episodes of series %d: %w", series.ID, err)
	}

	if info.Name != "" && info.Name != series.Title {
		j.log.Info("series renamed", "series_id", series.ID, "from", series.Title, "to", info.Name)
		series.Title = info.Name
		if err := j.catalog.UpdateSeries(series); err != nil {
			return fmt.Errorf("rename series %d: %w", series.ID, err)
		}
	}

	j.log.Info("series info updated", "series_id", series.ID, "tvdb_id", tvdbID,
		"seasons", len(seasons), "episodes", len(episodes), "new_episodes", added)
	return nil
}
