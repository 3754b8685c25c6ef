// Package diskscan reconciles the catalog with files on disk: it imports
// episode files found in series folders and relocates catalog files found in
// the drop folder to their canonical paths.
package diskscan

import (
	"log/slog"

	"github.com/vmunix/arrsync/internal/jobs"
	"github.com/vmunix/arrsync/internal/library"
)

//go:generate mockgen -destination=mocks/diskscan_mock.go -package=mocks . Disk,FileCatalog,SeriesGetter,EpisodeCatalog,FileNamer

// Disk is the filesystem as seen by the scanner.
type Disk interface {
	GetFiles(dir string, recursive bool) ([]string, error)
	FolderExists(path string) bool
	FileSize(path string) (int64, error)
	MoveFile(src, dst string) error
}

// FileCatalog reads and writes episode file records.
type FileCatalog interface {
	GetFileByPath(path string) (*library.EpisodeFile, error)
	ListFilesBySeries(seriesID int64) ([]*library.EpisodeFile, error)
	UpdateFile(f *library.EpisodeFile) error
	DeleteFile(id int64) error
	ImportEpisodeFile(f *library.EpisodeFile, episodeIDs []int64) error
}

// SeriesGetter loads a series.
type SeriesGetter interface {
	GetSeries(id int64) (*library.Series, error)
}

// EpisodeCatalog reads episodes.
type EpisodeCatalog interface {
	GetEpisodesByFileID(fileID int64) ([]*library.Episode, error)
	ListEpisodes(f library.EpisodeFilter) ([]*library.Episode, int, error)
}

// FileNamer builds canonical episode file names and paths.
type FileNamer interface {
	BuildFilename(episodes []*library.Episode, series *library.Series, file *library.EpisodeFile) (string, error)
	BuildFilePath(series *library.Series, season int, filename, ext string) string
}

// Deps are the collaborators of a DiskScanProvider.
type Deps struct {
	Disk     Disk
	Files    FileCatalog
	Series   SeriesGetter
	Episodes EpisodeCatalog
	Namer    FileNamer
	Bus      jobs.Publisher // optional
}

// DiskScanProvider scans series folders and the drop folder.
type DiskScanProvider struct {
	deps Deps
	log  *slog.Logger
}

// NewDiskScanProvider creates a provider.
func NewDiskScanProvider(deps Deps, log *slog.Logger) *DiskScanProvider {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &DiskScanProvider{deps: deps, log: log.With("component", "diskscan")}
}
