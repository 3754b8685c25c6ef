package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vmunix/arrsync/internal/events"
)

// SeasonIgnorePolicy marks seasons ignored when the series has files elsewhere
// but none for that season. The newest known season is never ignored and
// nothing is ever un-ignored.
type SeasonIgnorePolicy struct {
	seasons SeasonCatalog
	files   EpisodeFileLister
	bus     Publisher
	log     *slog.Logger
}

// NewSeasonIgnorePolicy creates the policy. bus may be nil.
func NewSeasonIgnorePolicy(seasons SeasonCatalog, files EpisodeFileLister, bus Publisher, log *slog.Logger) *SeasonIgnorePolicy {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &SeasonIgnorePolicy{
		seasons: seasons,
		files:   files,
		bus:     bus,
		log:     log.With("component", "ignore"),
	}
}

// AutoIgnoreSeasons applies the policy to one series.
func (p *SeasonIgnorePolicy) AutoIgnoreSeasons(ctx context.Context, seriesID int64) error {
	files, err := p.files.ListFilesBySeries(seriesID)
	if err != nil {
		return fmt.Errorf("list files for series %d: %w", seriesID, err)
	}
	withFiles := make(map[int]bool, len(files))
	for _, f := range files {
		withFiles[f.SeasonNumber] = true
	}
	if len(withFiles) == 0 {
		return nil
	}

	known, err := p.seasons.SeasonNumbers(seriesID)
	if err != nil {
		return fmt.Errorf("season numbers for series %d: %w", seriesID, err)
	}

	if len(known) == 0 {
		return nil
	}

	current := slices.Max(known)
	for _, s := range known {
		if s == current || withFiles[s] {
			continue
		}
		if err := p.seasons.SetIgnore(seriesID, s, true); err != nil {
			return fmt.Errorf("ignore season %d of series %d: %w", s, seriesID, err)
		}
		p.log.Info("season ignored", "series_id", seriesID, "season", s)
		if p.bus != nil {
			if err := p.bus.Publish(ctx, events.NewSeasonIgnored(seriesID, s)); err != nil {
				p.log.Warn("failed to publish event", "type", events.EventSeasonIgnored, "error", err)
			}
		}
	}
	return nil
}
