// internal/diskscan/scan.go
package diskscan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vmunix/arrsync/internal/disk"
	"github.com/vmunix/arrsync/internal/jobs"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/progress"
	"github.com/vmunix/arrsync/pkg/release"
)

// ScanResult counts what a series scan changed.
type ScanResult struct {
	Added     int
	Removed   int
	Unmatched int
}

type episodeKey struct{ season, episode int }

// Scan imports video files in the series folder that the catalog does not know
// yet and drops catalog records whose file vanished from the folder.
func (p *DiskScanProvider) Scan(ctx context.Context, seriesID int64) (*ScanResult, error) {
	series, err := p.deps.Series.GetSeries(seriesID)
	if err != nil {
		return nil, fmt.Errorf("load series %d: %w", seriesID, err)
	}
	if !p.deps.Disk.FolderExists(series.Path) {
		return nil, fmt.Errorf("%s: %w", series.Path, ErrSeriesFolderMissing)
	}
	log := p.log.With("series_id", seriesID, "path", series.Path)

	paths, err := p.deps.Disk.GetFiles(series.Path, true)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", series.Path, err)
	}

	episodes, _, err := p.deps.Episodes.ListEpisodes(library.EpisodeFilter{SeriesID: &seriesID})
	if err != nil {
		return nil, fmt.Errorf("episodes of series %d: %w", seriesID, err)
	}
	byNumber := make(map[episodeKey]*library.Episode, len(episodes))
	for _, e := range episodes {
		byNumber[episodeKey{e.Season, e.Episode}] = e
	}

	result := &ScanResult{}
	onDisk := make(map[string]bool, len(paths))
	for _, path := range paths {
		if !disk.IsVideoFile(path) || disk.IsSample(path) {
			continue
		}
		path = disk.NormalizePath(path)
		onDisk[path] = true

		if err := ctx.Err(); err != nil {
			return result, err
		}
		_, err := p.deps.Files.GetFileByPath(path)
		if err == nil {
			continue
		}
		if !errors.Is(err, library.ErrNotFound) {
			return result, fmt.Errorf("look up %s: %w", path, err)
		}

		season, numbers, ok := release.ParseEpisode(path)
		if !ok {
			log.Debug("no episode numbering in file name", "file", path)
			result.Unmatched++
			continue
		}
		var ids []int64
		for _, n := range numbers {
			if e, found := byNumber[episodeKey{season, n}]; found {
				ids = append(ids, e.ID)
			}
		}
		if len(ids) == 0 {
			log.Debug("file matches no known episode", "file", path, "season", season, "episodes", numbers)
			result.Unmatched++
			continue
		}

		size, err := p.deps.Disk.FileSize(path)
		if err != nil {
			return result, err
		}
		file := &library.EpisodeFile{
			SeriesID:     seriesID,
			SeasonNumber: season,
			Path:         path,
			SizeBytes:    size,
			Quality:      release.Parse(path).Resolution,
		}
		if err := p.deps.Files.ImportEpisodeFile(file, ids); err != nil {
			return result, fmt.Errorf("import %s: %w", path, err)
		}
		log.Info("episode file imported", "file", path, "season", season, "episodes", numbers)
		result.Added++
	}

	known, err := p.deps.Files.ListFilesBySeries(seriesID)
	if err != nil {
		return result, fmt.Errorf("files of series %d: %w", seriesID, err)
	}
	root := disk.NormalizePath(series.Path) + string(filepath.Separator)
	for _, f := range known {
		// files outside the series folder (the drop folder) are not this scan's business
		if !strings.HasPrefix(f.Path, root) || onDisk[f.Path] {
			continue
		}
		if err := p.deps.Files.DeleteFile(f.ID); err != nil {
			return result, fmt.Errorf("remove missing file %d: %w", f.ID, err)
		}
		log.Info("missing episode file removed", "file", f.Path)
		result.Removed++
	}

	return result, nil
}

// DiskScanJob runs Scan as a series pipeline step.
type DiskScanJob struct {
	provider *DiskScanProvider
}

// NewDiskScanJob wraps a provider as a series job.
func NewDiskScanJob(provider *DiskScanProvider) *DiskScanJob {
	return &DiskScanJob{provider: provider}
}

// Start scans the series folder.
func (j *DiskScanJob) Start(ctx context.Context, n *progress.Notification, args jobs.SeriesArgs) error {
	result, err := j.provider.Scan(ctx, args.SeriesID)
	if err != nil {
		return err
	}
	n.SetMessage(fmt.Sprintf("Disk scan: %d added, %d removed", result.Added, result.Removed))
	return nil
}

// CleanUpJob runs CleanUpDropFolder against a fixed folder.
type CleanUpJob struct {
	provider *DiskScanProvider
	folder   string
}

// NewCleanUpJob creates a drop folder clean-up job.
func NewCleanUpJob(provider *DiskScanProvider, folder string) *CleanUpJob {
	return &CleanUpJob{provider: provider, folder: folder}
}

// Name is the title used for progress notifications.
func (j *CleanUpJob) Name() string { return "Clean up drop folder" }

// Start cleans the drop folder.
func (j *CleanUpJob) Start(ctx context.Context, n *progress.Notification) error {
	n.SetMessage("Cleaning " + j.folder)
	return j.provider.CleanUpDropFolder(ctx, j.folder)
}
