// internal/diskscan/cleanup_test.go
package diskscan_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/arrsync/internal/disk"
	"github.com/vmunix/arrsync/internal/diskscan"
	"github.com/vmunix/arrsync/internal/diskscan/mocks"
	"github.com/vmunix/arrsync/internal/events"
	jobmocks "github.com/vmunix/arrsync/internal/jobs/mocks"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/organizer"
	"go.uber.org/mock/gomock"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	disk     *mocks.MockDisk
	files    *mocks.MockFileCatalog
	series   *mocks.MockSeriesGetter
	episodes *mocks.MockEpisodeCatalog
	namer    *mocks.MockFileNamer
	bus      *jobmocks.MockPublisher
	provider *diskscan.DiskScanProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		disk:     mocks.NewMockDisk(ctrl),
		files:    mocks.NewMockFileCatalog(ctrl),
		series:   mocks.NewMockSeriesGetter(ctrl),
		episodes: mocks.NewMockEpisodeCatalog(ctrl),
		namer:    mocks.NewMockFileNamer(ctrl),
		bus:      jobmocks.NewMockPublisher(ctrl),
	}
	f.provider = diskscan.NewDiskScanProvider(diskscan.Deps{
		Disk:     f.disk,
		Files:    f.files,
		Series:   f.series,
		Episodes: f.episodes,
		Namer:    f.namer,
		Bus:      f.bus,
	}, testLogger())
	return f
}

func TestCleanUpDropFolder_EmptyFolder(t *testing.T) {
	f := newFixture(t)

	f.disk.EXPECT().GetFiles("/drop", true).Return([]string{}, nil)
	f.files.EXPECT().GetFileByPath(gomock.Any()).Times(0)

	require.NoError(t, f.provider.CleanUpDropFolder(context.Background(), "/drop"))
}

func TestCleanUpDropFolder_UnknownFile(t *testing.T) {
	f := newFixture(t)

	f.disk.EXPECT().GetFiles("/drop", true).Return([]string{"/drop/random.avi"}, nil)
	f.files.EXPECT().GetFileByPath("/drop/random.avi").Return(nil, library.ErrNotFound).Times(1)
	f.series.EXPECT().GetSeries(gomock.Any()).Times(0)
	f.disk.EXPECT().MoveFile(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, f.provider.CleanUpDropFolder(context.Background(), "/drop"))
}

func TestCleanUpDropFolder_KnownFileMoved(t *testing.T) {
	f := newFixture(t)

	const dropped = "/drop/The Office//Problem.avi"
	const canonical = "/tv/The Office/Season 01/The Office - S01E01 - Pilot.avi"
	series := &library.Series{ID: 1, Title: "The Office", Path: "/tv/The Office"}
	file := &library.EpisodeFile{ID: 12, SeriesID: 1, SeasonNumber: 1, Path: dropped}
	episodes := []*library.Episode{{ID: 100, SeriesID: 1, Season: 1, Episode: 1, Title: "Pilot"}}

	f.disk.EXPECT().GetFiles("/drop", true).Return([]string{dropped}, nil)
	f.files.EXPECT().GetFileByPath(dropped).Return(file, nil)
	f.series.EXPECT().GetSeries(int64(1)).Return(series, nil)
	f.episodes.EXPECT().GetEpisodesByFileID(int64(12)).Return(episodes, nil)
	f.namer.EXPECT().BuildFilename(episodes, series, file).Return("The Office - S01E01 - Pilot", nil)
	f.namer.EXPECT().BuildFilePath(series, 1, "The Office - S01E01 - Pilot", ".avi").Return(canonical)
	f.disk.EXPECT().MoveFile("/drop/The Office/Problem.avi", canonical).Return(nil).Times(1)
	f.files.EXPECT().UpdateFile(gomock.Any()).DoAndReturn(func(updated *library.EpisodeFile) error {
		assert.Equal(t, canonical, updated.Path)
		return nil
	})
	f.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e events.Event) error {
		moved, ok := e.(*events.EpisodeFileMoved)
		require.True(t, ok)
		assert.Equal(t, "/drop/The Office/Problem.avi", moved.From)
		assert.Equal(t, canonical, moved.To)
		return nil
	})

	require.NoError(t, f.provider.CleanUpDropFolder(context.Background(), "/drop"))
}

func TestCleanUpDropFolder_AlreadyCanonical(t *testing.T) {
	f := newFixture(t)

	const path = "/tv/Show/Season 01/Show - S01E01.mkv"
	series := &library.Series{ID: 2, Title: "Show", Path: "/tv/Show"}
	file := &library.EpisodeFile{ID: 3, SeriesID: 2, SeasonNumber: 1, Path: path}

	f.disk.EXPECT().GetFiles("/drop", true).Return([]string{path}, nil)
	f.files.EXPECT().GetFileByPath(path).Return(file, nil)
	f.series.EXPECT().GetSeries(int64(2)).Return(series, nil)
	f.episodes.EXPECT().GetEpisodesByFileID(int64(3)).Return(nil, nil)
	f.namer.EXPECT().BuildFilename(gomock.Any(), series, file).Return("Show - S01E01", nil)
	f.namer.EXPECT().BuildFilePath(series, 1, "Show - S01E01", ".mkv").Return(path)
	f.disk.EXPECT().MoveFile(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, f.provider.CleanUpDropFolder(context.Background(), "/drop"))
}

func TestCleanUpDropFolder_OnlyKnownFilesMove(t *testing.T) {
	f := newFixture(t)

	series := &library.Series{ID: 1, Title: "Lost", Path: "/tv/Lost"}
	known := &library.EpisodeFile{ID: 5, SeriesID: 1, SeasonNumber: 2, Path: "/drop/b.mkv"}

	f.disk.EXPECT().GetFiles("/drop", true).Return([]string{"/drop/a.mkv", "/drop/b.mkv", "/drop/c.nfo"}, nil)
	f.files.EXPECT().GetFileByPath("/drop/a.mkv").Return(nil, library.ErrNotFound)
	f.files.EXPECT().GetFileByPath("/drop/b.mkv").Return(known, nil)
	f.files.EXPECT().GetFileByPath("/drop/c.nfo").Return(nil, library.ErrNotFound)
	f.series.EXPECT().GetSeries(int64(1)).Return(series, nil).Times(1)
	f.episodes.EXPECT().GetEpisodesByFileID(int64(5)).Return(nil, nil)
	f.namer.EXPECT().BuildFilename(gomock.Any(), series, known).Return("Lost - S02E01", nil)
	f.namer.EXPECT().BuildFilePath(series, 2, "Lost - S02E01", ".mkv").Return("/tv/Lost/Season 02/Lost - S02E01.mkv")
	f.disk.EXPECT().MoveFile("/drop/b.mkv", "/tv/Lost/Season 02/Lost - S02E01.mkv").Return(nil).Times(1)
	f.files.EXPECT().UpdateFile(known).Return(nil)
	f.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.provider.CleanUpDropFolder(context.Background(), "/drop"))
}

func TestCleanUpDropFolder_DestinationExists(t *testing.T) {
	f := newFixture(t)

	series := &library.Series{ID: 1, Title: "Lost", Path: "/tv/Lost"}
	file := &library.EpisodeFile{ID: 5, SeriesID: 1, SeasonNumber: 1, Path: "/drop/x.mkv"}

	f.disk.EXPECT().GetFiles("/drop", true).Return([]string{"/drop/x.mkv"}, nil)
	f.files.EXPECT().GetFileByPath("/drop/x.mkv").Return(file, nil)
	f.series.EXPECT().GetSeries(int64(1)).Return(series, nil)
	f.episodes.EXPECT().GetEpisodesByFileID(int64(5)).Return(nil, nil)
	f.namer.EXPECT().BuildFilename(gomock.Any(), series, file).Return("Lost - S01E01", nil)
	f.namer.EXPECT().BuildFilePath(series, 1, "Lost - S01E01", ".mkv").Return("/tv/Lost/Season 01/Lost - S01E01.mkv")
	f.disk.EXPECT().MoveFile(gomock.Any(), gomock.Any()).Return(disk.ErrDestinationExists)
	f.files.EXPECT().UpdateFile(gomock.Any()).Times(0)

	err := f.provider.CleanUpDropFolder(context.Background(), "/drop")
	assert.ErrorIs(t, err, disk.ErrDestinationExists)
}

func TestCleanUpDropFolder_UpdateFailureMovesFileBack(t *testing.T) {
	f := newFixture(t)

	const dest = "/tv/Lost/Season 01/Lost - S01E01.mkv"
	locked := errors.New("database is locked")
	series := &library.Series{ID: 1, Title: "Lost", Path: "/tv/Lost"}
	file := &library.EpisodeFile{ID: 7, SeriesID: 1, SeasonNumber: 1, Path: "/drop/a.mkv"}

	f.disk.EXPECT().GetFiles("/drop", true).Return([]string{"/drop/a.mkv", "/drop/b.mkv"}, nil)
	f.files.EXPECT().GetFileByPath("/drop/a.mkv").Return(file, nil)
	f.series.EXPECT().GetSeries(int64(1)).Return(series, nil)
	f.episodes.EXPECT().GetEpisodesByFileID(int64(7)).Return(nil, nil)
	f.namer.EXPECT().BuildFilename(gomock.Any(), series, file).Return("Lost - S01E01", nil)
	f.namer.EXPECT().BuildFilePath(series, 1, "Lost - S01E01", ".mkv").Return(dest)
	gomock.InOrder(
		f.disk.EXPECT().MoveFile("/drop/a.mkv", dest).Return(nil),
		f.files.EXPECT().UpdateFile(file).Return(locked),
		f.disk.EXPECT().MoveFile(dest, "/drop/a.mkv").Return(nil),
	)
	f.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := f.provider.CleanUpDropFolder(context.Background(), "/drop")
	assert.ErrorIs(t, err, locked)
	assert.Equal(t, "/drop/a.mkv", file.Path)
}

func TestCleanUpDropFolder_MoveBackFailureReportsBoth(t *testing.T) {
	f := newFixture(t)

	const dest = "/tv/Lost/Season 01/Lost - S01E01.mkv"
	locked := errors.New("database is locked")
	gone := errors.New("permission denied")
	series := &library.Series{ID: 1, Title: "Lost", Path: "/tv/Lost"}
	file := &library.EpisodeFile{ID: 7, SeriesID: 1, SeasonNumber: 1, Path: "/drop/a.mkv"}

	f.disk.EXPECT().GetFiles("/drop", true).Return([]string{"/drop/a.mkv"}, nil)
	f.files.EXPECT().GetFileByPath("/drop/a.mkv").Return(file, nil)
	f.series.EXPECT().GetSeries(int64(1)).Return(series, nil)
	f.episodes.EXPECT().GetEpisodesByFileID(int64(7)).Return(nil, nil)
	f.namer.EXPECT().BuildFilename(gomock.Any(), series, file).Return("Lost - S01E01", nil)
	f.namer.EXPECT().BuildFilePath(series, 1, "Lost - S01E01", ".mkv").Return(dest)
	f.disk.EXPECT().MoveFile("/drop/a.mkv", dest).Return(nil)
	f.files.EXPECT().UpdateFile(file).Return(locked)
	f.disk.EXPECT().MoveFile(dest, "/drop/a.mkv").Return(gone)

	err := f.provider.CleanUpDropFolder(context.Background(), "/drop")
	assert.ErrorIs(t, err, locked)
	assert.ErrorIs(t, err, gone)
}

func TestCleanUpDropFolder_RefusesPathOutsideSeries(t *testing.T) {
	f := newFixture(t)

	series := &library.Series{ID: 1, Title: "Lost", Path: "/tv/Lost"}
	file := &library.EpisodeFile{ID: 5, SeriesID: 1, SeasonNumber: 1, Path: "/drop/x.mkv"}

	f.disk.EXPECT().GetFiles("/drop", true).Return([]string{"/drop/x.mkv"}, nil)
	f.files.EXPECT().GetFileByPath("/drop/x.mkv").Return(file, nil)
	f.series.EXPECT().GetSeries(int64(1)).Return(series, nil)
	f.episodes.EXPECT().GetEpisodesByFileID(int64(5)).Return(nil, nil)
	f.namer.EXPECT().BuildFilename(gomock.Any(), series, file).Return("../../etc/x", nil)
	f.namer.EXPECT().BuildFilePath(series, 1, "../../etc/x", ".mkv").Return("/tv/Lost/Season 01/../../../etc/x.mkv")
	f.disk.EXPECT().MoveFile(gomock.Any(), gomock.Any()).Times(0)

	err := f.provider.CleanUpDropFolder(context.Background(), "/drop")
	assert.ErrorIs(t, err, organizer.ErrPathTraversal)
}

func TestCleanUpDropFolder_ErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")

	t.Run("listing", func(t *testing.T) {
		f := newFixture(t)
		f.disk.EXPECT().GetFiles("/drop", true).Return(nil, boom)
		assert.ErrorIs(t, f.provider.CleanUpDropFolder(context.Background(), "/drop"), boom)
	})

	t.Run("catalog lookup", func(t *testing.T) {
		f := newFixture(t)
		f.disk.EXPECT().GetFiles("/drop", true).Return([]string{"/drop/a.mkv"}, nil)
		f.files.EXPECT().GetFileByPath("/drop/a.mkv").Return(nil, boom)
		assert.ErrorIs(t, f.provider.CleanUpDropFolder(context.Background(), "/drop"), boom)
	})

	t.Run("naming", func(t *testing.T) {
		f := newFixture(t)
		series := &library.Series{ID: 1}
		file := &library.EpisodeFile{ID: 2, SeriesID: 1}
		f.disk.EXPECT().GetFiles("/drop", true).Return([]string{"/drop/a.mkv"}, nil)
		f.files.EXPECT().GetFileByPath("/drop/a.mkv").Return(file, nil)
		f.series.EXPECT().GetSeries(int64(1)).Return(series, nil)
		f.episodes.EXPECT().GetEpisodesByFileID(int64(2)).Return(nil, nil)
		f.namer.EXPECT().BuildFilename(gomock.Any(), series, file).Return("", boom)
		assert.ErrorIs(t, f.provider.CleanUpDropFolder(context.Background(), "/drop"), boom)
	})
}

func TestCleanUpDropFolder_Canceled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.disk.EXPECT().GetFiles("/drop", true).Return([]string{"/drop/a.mkv"}, nil)
	f.files.EXPECT().GetFileByPath(gomock.Any()).Times(0)

	assert.ErrorIs(t, f.provider.CleanUpDropFolder(ctx, "/drop"), context.Canceled)
}
