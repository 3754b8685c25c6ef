package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/arrsync/pkg/tvdb"
)

const (
	seriesTTL   = 7 * 24 * time.Hour
	episodesTTL = 12 * time.Hour
	searchTTL   = time.Hour
)

// Provider is the remote metadata source. *tvdb.Client satisfies it.
type Provider interface {
	SeriesByID(ctx context.Context, id int64) (*tvdb.Series, error)
	EpisodesBySeries(ctx context.Context, id int64) ([]tvdb.Episode, error)
	Search(ctx context.Context, query string) ([]tvdb.SearchResult, error)
}

// Service is a Provider fronted by the cache.
type Service struct {
	provider Provider
	cache    *Cache
	log      *slog.Logger
}

// NewService creates a caching service. cache may be nil.
func NewService(provider Provider, cache *Cache, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{provider: provider, cache: cache, log: log.With("component", "metadata")}
}

// Series returns the TVDB series.
func (s *Service) Series(ctx context.Context, tvdbID int64) (*tvdb.Series, error) {
	return cached(ctx, s.cache, s.log, fmt.Sprintf("tvdb:series:%d", tvdbID), seriesTTL, func() (*tvdb.Series, error) {
		return s.provider.SeriesByID(ctx, tvdbID)
	})
}

// Episodes returns every episode of the TVDB series.
func (s *Service) Episodes(ctx context.Context, tvdbID int64) ([]tvdb.Episode, error) {
	return cached(ctx, s.cache, s.log, fmt.Sprintf("tvdb:episodes:%d", tvdbID), episodesTTL, func() ([]tvdb.Episode, error) {
		return s.provider.EpisodesBySeries(ctx, tvdbID)
	})
}

// Search looks series up by name.
func (s *Service) Search(ctx context.Context, query string) ([]tvdb.SearchResult, error) {
	return cached(ctx, s.cache, s.log, "tvdb:search:"+query, searchTTL, func() ([]tvdb.SearchResult, error) {
		return s.provider.Search(ctx, query)
	})
}
