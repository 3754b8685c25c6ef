// internal/diskscan/cleanup.go
package diskscan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vmunix/arrsync/internal/disk"
	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/organizer"
)

// CleanUpDropFolder moves every file in folder that the catalog already knows
// to its canonical path under the series folder. Unknown files are left alone.
func (p *DiskScanProvider) CleanUpDropFolder(ctx context.Context, folder string) error {
	files, err := p.deps.Disk.GetFiles(folder, true)
	if err != nil {
		return fmt.Errorf("list drop folder %s: %w", folder, err)
	}
	if len(files) == 0 {
		p.log.Debug("drop folder empty", "folder", folder)
		return nil
	}

	moved := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := p.relocate(ctx, path)
		if err != nil {
			return err
		}
		if ok {
			moved++
		}
	}

	p.log.Info("drop folder cleaned", "folder", folder, "files", len(files), "moved", moved)
	return nil
}

// relocate moves one drop-folder file and reports whether it moved.
func (p *DiskScanProvider) relocate(ctx context.Context, path string) (bool, error) {
	file, err := p.deps.Files.GetFileByPath(path)
	if errors.Is(err, library.ErrNotFound) {
		p.log.Debug("unknown file in drop folder", "path", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("look up %s: %w", path, err)
	}

	series, err := p.deps.Series.GetSeries(file.SeriesID)
	if err != nil {
		return false, fmt.Errorf("series %d of %s: %w", file.SeriesID, path, err)
	}
	episodes, err := p.deps.Episodes.GetEpisodesByFileID(file.ID)
	if err != nil {
		return false, fmt.Errorf("episodes of file %d: %w", file.ID, err)
	}

	filename, err := p.deps.Namer.BuildFilename(episodes, series, file)
	if err != nil {
		return false, fmt.Errorf("name file %d: %w", file.ID, err)
	}
	dest := p.deps.Namer.BuildFilePath(series, file.SeasonNumber, filename, filepath.Ext(path))
	if err := organizer.ValidatePath(dest, series.Path); err != nil {
		return false, fmt.Errorf("canonical path %s of file %d: %w", dest, file.ID, err)
	}
	src := disk.NormalizePath(path)
	if src == dest {
		return false, nil
	}

	if err := p.deps.Disk.MoveFile(src, dest); err != nil {
		return false, fmt.Errorf("move %s: %w", src, err)
	}
	p.log.Info("file moved", "file_id", file.ID, "series_id", series.ID, "from", src, "to", dest)

	// the record must keep pointing at the file, so a failed update moves it back
	file.Path = dest
	if err := p.deps.Files.UpdateFile(file); err != nil {
		file.Path = src
		updateErr := fmt.Errorf("record new path of file %d: %w", file.ID, err)
		if rerr := p.deps.Disk.MoveFile(dest, src); rerr != nil {
			p.log.Error("file left at new path without catalog update", "file_id", file.ID, "path", dest, "error", rerr)
			return false, errors.Join(updateErr, fmt.Errorf("move %s back: %w", dest, rerr))
		}
		p.log.Warn("file moved back after catalog update failed", "file_id", file.ID, "path", src)
		return false, updateErr
	}

	if p.deps.Bus != nil {
		if err := p.deps.Bus.Publish(ctx, events.NewEpisodeFileMoved(file.ID, series.ID, src, dest)); err != nil {
			p.log.Warn("failed to publish event", "type", events.EventEpisodeFileMoved, "error", err)
		}
	}
	return true, nil
}
