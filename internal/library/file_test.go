package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddFile(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Files")

	f := &EpisodeFile{SeriesID: s.ID, SeasonNumber: 1, Path: "/tv/Files/Season 01/e1.mkv", SizeBytes: 1 << 30, Quality: "1080p"}
	require.NoError(t, store.AddFile(f))
	assert.NotZero(t, f.ID)
	assert.False(t, f.AddedAt.IsZero())

	got, err := store.GetFile(f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Path, got.Path)
	assert.Equal(t, int64(1<<30), got.SizeBytes)
	assert.Equal(t, "1080p", got.Quality)
}

func TestStore_AddFile_DuplicatePath(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Dup")

	require.NoError(t, store.AddFile(&EpisodeFile{SeriesID: s.ID, SeasonNumber: 1, Path: "/x.mkv"}))
	err := store.AddFile(&EpisodeFile{SeriesID: s.ID, SeasonNumber: 1, Path: "/x.mkv"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStore_GetFileByPath(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "ByPath")

	f := &EpisodeFile{SeriesID: s.ID, SeasonNumber: 2, Path: "/drop/The Office/Problem.avi"}
	require.NoError(t, store.AddFile(f))

	got, err := store.GetFileByPath("/drop/The Office/Problem.avi")
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)

	_, err = store.GetFileByPath("/drop/unknown.avi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateFile(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Move")

	f := &EpisodeFile{SeriesID: s.ID, SeasonNumber: 1, Path: "/drop/a.mkv"}
	require.NoError(t, store.AddFile(f))

	f.Path = "/tv/Move/Season 01/a.mkv"
	require.NoError(t, store.UpdateFile(f))

	got, err := store.GetFileByPath("/tv/Move/Season 01/a.mkv")
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)

	assert.ErrorIs(t, store.UpdateFile(&EpisodeFile{ID: 999, SeriesID: s.ID, Path: "/nope"}), ErrNotFound)
}

func TestStore_ListFiles(t *testing.T) {
	store := NewStore(setupTestDB(t))
	a := createTestSeries(t, store, "A")
	b := createTestSeries(t, store, "B")

	require.NoError(t, store.AddFile(&EpisodeFile{SeriesID: a.ID, SeasonNumber: 1, Path: "/a1"}))
	require.NoError(t, store.AddFile(&EpisodeFile{SeriesID: a.ID, SeasonNumber: 2, Path: "/a2"}))
	require.NoError(t, store.AddFile(&EpisodeFile{SeriesID: b.ID, SeasonNumber: 1, Path: "/b1"}))

	files, total, err := store.ListFiles(FileFilter{SeriesID: &a.ID, Season: ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, files, 1)
	assert.Equal(t, "/a2", files[0].Path)

	bySeries, err := store.ListFilesBySeries(a.ID)
	require.NoError(t, err)
	assert.Len(t, bySeries, 2)
}

func TestStore_DeleteFile_UnlinksEpisodes(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Unlink")

	ep := &Episode{SeriesID: s.ID, Season: 1, Episode: 1}
	require.NoError(t, store.AddEpisode(ep))
	f := &EpisodeFile{SeriesID: s.ID, SeasonNumber: 1, Path: "/tv/Unlink/e1.mkv"}
	require.NoError(t, store.ImportEpisodeFile(f, []int64{ep.ID}))

	require.NoError(t, store.DeleteFile(f.ID))

	got, err := store.GetEpisode(ep.ID)
	require.NoError(t, err)
	assert.Nil(t, got.FileID)
}

func TestStore_ImportEpisodeFile_RollsBackOnFailure(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Rollback")

	require.NoError(t, store.AddFile(&EpisodeFile{SeriesID: s.ID, SeasonNumber: 1, Path: "/taken.mkv"}))

	err := store.ImportEpisodeFile(&EpisodeFile{SeriesID: s.ID, SeasonNumber: 1, Path: "/taken.mkv"}, []int64{1})
	assert.ErrorIs(t, err, ErrDuplicate)

	files, err := store.ListFilesBySeries(s.ID)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
