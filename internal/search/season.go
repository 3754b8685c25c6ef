package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/jobs"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/progress"
	"github.com/vmunix/arrsync/pkg/newznab"
	"github.com/vmunix/arrsync/pkg/release"
)

// SeriesGetter loads a series.
type SeriesGetter interface {
	GetSeries(id int64) (*library.Series, error)
}

// SeasonSearchJob searches indexers for one season and picks the best release.
type SeasonSearchJob struct {
	series   SeriesGetter
	searcher Searcher
	bus      jobs.Publisher
	log      *slog.Logger
}

// NewSeasonSearchJob creates the job. bus may be nil.
func NewSeasonSearchJob(series SeriesGetter, searcher Searcher, bus jobs.Publisher, log *slog.Logger) *SeasonSearchJob {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &SeasonSearchJob{series: series, searcher: searcher, bus: bus, log: log.With("component", "season_search")}
}

// SeasonQuery is the indexer query for a season: "<title> S<nn>".
func SeasonQuery(title string, season int) string {
	return fmt.Sprintf("%s S%02d", release.SearchQuery(title), season)
}

// Start runs the search for args.
func (j *SeasonSearchJob) Start(ctx context.Context, n *progress.Notification, args jobs.SeasonArgs) error {
	series, err := j.series.GetSeries(args.SeriesID)
	if err != nil {
		return fmt.Errorf("load series %d: %w", args.SeriesID, err)
	}
	query := SeasonQuery(series.Title, args.SeasonNumber)
	n.SetMessage("Searching for " + query)

	q := newznab.Query{Text: query, Season: args.SeasonNumber}
	if series.TVDBID != nil {
		q.TVDBID = *series.TVDBID
	}
	releases, err := j.searcher.Search(ctx, q)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}

	best, ok := Pick(releases, series.Title, args.SeasonNumber)
	log := j.log.With("series_id", series.ID, "season", args.SeasonNumber, "query", query, "results", len(releases))
	var title, indexer string
	if ok {
		title, indexer = best.Title, best.Indexer
		log.Info("release picked", "release", best.Title, "indexer", best.Indexer, "size", best.Size)
	} else {
		log.Info("no matching release")
	}

	if j.bus != nil {
		e := events.NewSeasonSearchCompleted(series.ID, args.SeasonNumber, query, len(releases), title, indexer)
		if err := j.bus.Publish(ctx, e); err != nil {
			log.Warn("failed to publish event", "type", e.EventType(), "error", err)
		}
	}
	return nil
}

// Pick returns the largest release whose parsed season is season and whose
// parsed title matches the series title with high confidence.
func Pick(releases []newznab.Release, seriesTitle string, season int) (newznab.Release, bool) {
	var best newznab.Release
	found := false
	for _, r := range releases {
		info := release.Parse(r.Title)
		if info.Season != season || !release.SameTitle(info.Title, seriesTitle, release.ConfidenceHigh) {
			continue
		}
		if !found || r.Size > best.Size {
			best, found = r, true
		}
	}
	return best, found
}
