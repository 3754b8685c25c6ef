// Package search queries indexers and picks releases for season searches.
package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrsync/pkg/newznab"
)

//go:generate mockgen -destination=mocks/search_mock.go -package=mocks . Indexer,Searcher,SeriesGetter

// Indexer is one searchable indexer. *newznab.Client satisfies it.
type Indexer interface {
	Name() string
	Search(ctx context.Context, q newznab.Query) ([]newznab.Release, error)
}

// Searcher fans a query out to indexers.
type Searcher interface {
	Search(ctx context.Context, q newznab.Query) ([]newznab.Release, error)
}

// IndexerPool searches every indexer in parallel.
type IndexerPool struct {
	indexers []Indexer
	log      *slog.Logger
}

// NewIndexerPool creates a pool.
func NewIndexerPool(indexers []Indexer, log *slog.Logger) *IndexerPool {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &IndexerPool{indexers: indexers, log: log.With("component", "indexers")}
}

// Len is the number of indexers in the pool.
func (p *IndexerPool) Len() int { return len(p.indexers) }

// Search merges the results of all indexers in pool order. A failing indexer
// is logged and skipped; an error is returned only when every indexer failed.
func (p *IndexerPool) Search(ctx context.Context, q newznab.Query) ([]newznab.Release, error) {
	if len(p.indexers) == 0 {
		return nil, ErrNoIndexers
	}
	start := time.Now()

	results := make([][]newznab.Release, len(p.indexers))
	errs := make([]error, len(p.indexers))
	var g errgroup.Group
	for i, idx := range p.indexers {
		g.Go(func() error {
			releases, err := idx.Search(ctx, q)
			if err != nil {
				p.log.Warn("indexer failed", "indexer", idx.Name(), "error", err)
				errs[i] = err
				return nil
			}
			results[i] = releases
			return nil
		})
	}
	_ = g.Wait()

	var merged []newznab.Release
	failed := 0
	for i := range p.indexers {
		if errs[i] != nil {
			failed++
			continue
		}
		merged = append(merged, results[i]...)
	}
	p.log.Info("search complete", "query", q.Text, "results", len(merged), "failed_indexers", failed,
		"duration_ms", time.Since(start).Milliseconds())

	if failed == len(p.indexers) {
		return nil, errors.Join(errs...)
	}
	return merged, nil
}
