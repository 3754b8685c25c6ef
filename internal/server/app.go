// Package server wires the library sync components together and runs them,
// either once from the CLI or on a schedule.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/vmunix/arrsync/internal/config"
	"github.com/vmunix/arrsync/internal/disk"
	"github.com/vmunix/arrsync/internal/diskscan"
	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/jobs"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/metadata"
	"github.com/vmunix/arrsync/internal/migrations"
	"github.com/vmunix/arrsync/internal/organizer"
	"github.com/vmunix/arrsync/internal/progress"
	"github.com/vmunix/arrsync/internal/scene"
	"github.com/vmunix/arrsync/internal/search"
	"github.com/vmunix/arrsync/pkg/newznab"
	"github.com/vmunix/arrsync/pkg/tvdb"
	"github.com/vmunix/arrsync/pkg/xem"
)

// ErrNoDropFolder is returned by a clean-up without a folder to clean.
var ErrNoDropFolder = errors.New("no drop folder configured")

// App holds the wired components.
type App struct {
	DB      *sql.DB
	Store   *library.Store
	Events  *events.EventLog
	Bus     *events.Bus
	Tracker *progress.Tracker
	Cache   *metadata.Cache
	Meta    *metadata.Service

	importJob *jobs.ImportNewSeriesJob
	searchJob *jobs.SeriesSearchJob
	scanner   *diskscan.DiskScanProvider
	indexers  *search.IndexerPool
	cfg       *config.Config
	log       *slog.Logger
}

// OpenDB opens the SQLite catalog at path, creating it and its schema when needed.
func OpenDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open opens the database named in cfg and wires the app over it.
func Open(cfg *config.Config, log *slog.Logger) (*App, error) {
	db, err := OpenDB(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	return New(db, cfg, log), nil
}

// New wires the app over an open database.
func New(db *sql.DB, cfg *config.Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	store := library.NewStore(db)
	eventLog := events.NewEventLog(db)
	bus := events.NewBus(eventLog, log.With("component", "bus"))
	cache := metadata.NewCache(db)

	tvdbOpts := []tvdb.Option{tvdb.WithLogger(log)}
	if cfg.Metadata.TVDB.URL != "" {
		tvdbOpts = append(tvdbOpts, tvdb.WithBaseURL(cfg.Metadata.TVDB.URL))
	}
	meta := metadata.NewService(tvdb.New(cfg.Metadata.TVDB.APIKey, tvdbOpts...), cache, log)

	var indexers []search.Indexer
	for _, name := range cfg.IndexerNames() {
		idx := cfg.Indexers[name]
		indexers = append(indexers, newznab.New(name, idx.URL, idx.APIKey, newznab.WithLogger(log)))
	}
	pool := search.NewIndexerPool(indexers, log)

	scanner := diskscan.NewDiskScanProvider(diskscan.Deps{
		Disk:     disk.NewProvider(log),
		Files:    store,
		Series:   store,
		Episodes: store,
		Namer:    organizer.NewFileNameBuilder(cfg.Libraries.Series.Naming),
		Bus:      bus,
	}, log)

	importJob := jobs.NewImportNewSeriesJob(jobs.ImportDeps{
		Series:      store,
		Sync:        store,
		UpdateInfo:  metadata.NewUpdateInfoJob(store, meta, log),
		DiskScan:    diskscan.NewDiskScanJob(scanner),
		SceneUpdate: scene.NewXemUpdateJob(store, xem.New(cfg.Scene.URL, nil, log), cfg.Scene.Enabled, log),
		Ignore:      jobs.NewSeasonIgnorePolicy(store, store, bus, log),
		Bus:         bus,
	}, log)

	seasonSearch := search.NewSeasonSearchJob(store, pool, bus, log)

	return &App{
		DB:        db,
		Store:     store,
		Events:    eventLog,
		Bus:       bus,
		Tracker:   progress.NewTracker(0, log),
		Cache:     cache,
		Meta:      meta,
		importJob: importJob,
		searchJob: jobs.NewSeriesSearchJob(store, seasonSearch, log),
		scanner:   scanner,
		indexers:  pool,
		cfg:       cfg,
		log:       log.With("component", "app"),
	}
}

// Close stops the bus and closes the database.
func (a *App) Close() error {
	_ = a.Bus.Close()
	return a.DB.Close()
}

// run executes fn under a tracked notification.
func (a *App) run(ctx context.Context, title string, fn func(context.Context, *progress.Notification) error) (*progress.Notification, error) {
	n := a.Tracker.Start(title)
	a.log.Info("job started", "job", title, "run_id", n.ID)
	err := fn(ctx, n)
	n.Complete(err)
	a.log.Info("job finished", "job", title, "run_id", n.ID, "status", n.Status(), "errors", n.ErrorCount(), "duration", n.Duration())
	return n, err
}

// Import runs the series import pipeline.
func (a *App) Import(ctx context.Context, opts jobs.ImportOptions) (*jobs.RunReport, *progress.Notification, error) {
	var report *jobs.RunReport
	n, err := a.run(ctx, a.importJob.Name(), func(ctx context.Context, n *progress.Notification) error {
		var err error
		report, err = a.importJob.Run(ctx, n, opts)
		return err
	})
	return report, n, err
}

// SearchSeries searches every wanted season of one series.
func (a *App) SearchSeries(ctx context.Context, seriesID int64) (*progress.Notification, error) {
	return a.run(ctx, a.searchJob.Name(), func(ctx context.Context, n *progress.Notification) error {
		return a.searchJob.Start(ctx, n, jobs.SeriesArgs{SeriesID: seriesID})
	})
}

// SearchAll searches every series. A failing series is recorded on the
// notification and the run moves on.
func (a *App) SearchAll(ctx context.Context) (*progress.Notification, error) {
	return a.run(ctx, "Search all series", func(ctx context.Context, n *progress.Notification) error {
		if a.indexers.Len() == 0 {
			return search.ErrNoIndexers
		}
		all, _, err := a.Store.ListSeries(library.SeriesFilter{})
		if err != nil {
			return err
		}
		for _, s := range all {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := a.searchJob.Start(ctx, n, jobs.SeriesArgs{SeriesID: s.ID}); err != nil {
				n.RecordError(fmt.Sprintf("search for %q failed", s.Title), err)
			}
		}
		return nil
	})
}

// CleanUp relocates known files out of folder, or out of the configured drop
// folder when folder is empty.
func (a *App) CleanUp(ctx context.Context, folder string) (*progress.Notification, error) {
	if folder == "" {
		folder = a.cfg.Libraries.Series.DropFolder
	}
	if folder == "" {
		return nil, ErrNoDropFolder
	}
	job := diskscan.NewCleanUpJob(a.scanner, folder)
	return a.run(ctx, job.Name(), job.Start)
}
