// Package scene keeps scene numbering of episodes in step with TheXEM.
package scene

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/arrsync/internal/jobs"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/progress"
	"github.com/vmunix/arrsync/pkg/xem"
)

// Catalog is the part of the library store the job uses.
type Catalog interface {
	GetSeries(id int64) (*library.Series, error)
	SetSceneNumbering(seriesID int64, season, episode, sceneSeason, sceneEpisode int) (bool, error)
}

// Mapper fetches scene mappings. *xem.Client satisfies it.
type Mapper interface {
	Mappings(ctx context.Context, tvdbID int64) ([]xem.Mapping, error)
}

// XemUpdateJob refreshes scene numbering for one series.
type XemUpdateJob struct {
	catalog Catalog
	mapper  Mapper
	enabled bool
	log     *slog.Logger
}

// NewXemUpdateJob creates the job. A disabled job does nothing.
func NewXemUpdateJob(catalog Catalog, mapper Mapper, enabled bool, log *slog.Logger) *XemUpdateJob {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &XemUpdateJob{catalog: catalog, mapper: mapper, enabled: enabled, log: log.With("component", "scene")}
}

// Start applies TheXEM mappings to the series' episodes.
func (j *XemUpdateJob) Start(ctx context.Context, n *progress.Notification, args jobs.SeriesArgs) error {
	if !j.enabled {
		return nil
	}
	series, err := j.catalog.GetSeries(args.SeriesID)
	if err != nil {
		return fmt.Errorf("load series %d: %w", args.SeriesID, err)
	}
	if series.TVDBID == nil {
		j.log.Debug("series has no tvdb id, skipping", "series_id", series.ID)
		return nil
	}

	mappings, err := j.mapper.Mappings(ctx, *series.TVDBID)
	if errors.Is(err, xem.ErrNoMapping) {
		j.log.Debug("no scene mapping", "series_id", series.ID, "tvdb_id", *series.TVDBID)
		return nil
	}
	if err != nil {
		return err
	}

	n.SetMessage("Updating scene numbering for " + series.Title)
	updated := 0
	for _, m := range mappings {
		ok, err := j.catalog.SetSceneNumbering(series.ID, m.TVDB.Season, m.TVDB.Episode, m.Scene.Season, m.Scene.Episode)
		if err != nil {
			return fmt.Errorf("scene numbering of S%02dE%02d: %w", m.TVDB.Season, m.TVDB.Episode, err)
		}
		if ok {
			updated++
		}
	}
	j.log.Info("scene numbering updated", "series_id", series.ID, "mappings", len(mappings), "episodes", updated)
	return nil
}
