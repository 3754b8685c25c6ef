package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddEpisode(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Episodes")

	aired := time.Date(2005, 3, 24, 0, 0, 0, 0, time.UTC)
	ep := &Episode{SeriesID: s.ID, Season: 1, Episode: 1, Title: "Pilot", AirDate: &aired}
	require.NoError(t, store.AddEpisode(ep))
	assert.NotZero(t, ep.ID)

	got, err := store.GetEpisode(ep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pilot", got.Title)
	assert.Equal(t, 1, got.Season)
	assert.Equal(t, 1, got.Episode)
	require.NotNil(t, got.AirDate)
	assert.True(t, got.AirDate.Equal(aired))
	assert.Nil(t, got.FileID)
	assert.Nil(t, got.SceneSeason)
}

func TestStore_AddEpisode_Duplicate(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Dupes")

	require.NoError(t, store.AddEpisode(&Episode{SeriesID: s.ID, Season: 1, Episode: 1}))
	err := store.AddEpisode(&Episode{SeriesID: s.ID, Season: 1, Episode: 1})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStore_ListEpisodes_Filters(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Filters")

	for _, se := range [][2]int{{2, 1}, {1, 2}, {1, 1}, {0, 1}} {
		require.NoError(t, store.AddEpisode(&Episode{SeriesID: s.ID, Season: se[0], Episode: se[1]}))
	}

	all, total, err := store.ListEpisodes(EpisodeFilter{SeriesID: &s.ID})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, all, 4)
	assert.Equal(t, 0, all[0].Season, "ordered by season then episode")
	assert.Equal(t, [2]int{1, 1}, [2]int{all[1].Season, all[1].Episode})
	assert.Equal(t, [2]int{1, 2}, [2]int{all[2].Season, all[2].Episode})

	season1, total, err := store.ListEpisodes(EpisodeFilter{SeriesID: &s.ID, Season: ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, season1, 2)

	missing, _, err := store.ListEpisodes(EpisodeFilter{SeriesID: &s.ID, Missing: true})
	require.NoError(t, err)
	assert.Len(t, missing, 4, "no episode has a file yet")
}

func TestStore_UpdateEpisode(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Update")
	ep := &Episode{SeriesID: s.ID, Season: 1, Episode: 1, Title: "TBA"}
	require.NoError(t, store.AddEpisode(ep))

	ep.Title = "Pilot"
	require.NoError(t, store.UpdateEpisode(ep))

	got, err := store.GetEpisode(ep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pilot", got.Title)

	assert.ErrorIs(t, store.UpdateEpisode(&Episode{ID: 999, SeriesID: s.ID}), ErrNotFound)
}

func TestStore_DeleteEpisode(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Delete")
	ep := &Episode{SeriesID: s.ID, Season: 1, Episode: 1}
	require.NoError(t, store.AddEpisode(ep))

	require.NoError(t, store.DeleteEpisode(ep.ID))
	_, err := store.GetEpisode(ep.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.DeleteEpisode(ep.ID), "delete is idempotent")
}

func TestStore_BulkUpsertEpisodes(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Bulk")

	inserted, err := store.BulkUpsertEpisodes([]*Episode{
		{SeriesID: s.ID, Season: 1, Episode: 1, Title: "TBA"},
		{SeriesID: s.ID, Season: 1, Episode: 2, Title: "TBA"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// link a file and set scene numbering, both must survive a refresh
	f := &EpisodeFile{SeriesID: s.ID, SeasonNumber: 1, Path: "/tv/Bulk/e1.mkv"}
	require.NoError(t, store.AddFile(f))
	eps, _, err := store.ListEpisodes(EpisodeFilter{SeriesID: &s.ID})
	require.NoError(t, err)
	require.NoError(t, store.LinkEpisodes(f.ID, []int64{eps[0].ID}))
	ok, err := store.SetSceneNumbering(s.ID, 1, 1, 2, 5)
	require.NoError(t, err)
	require.True(t, ok)

	inserted, err = store.BulkUpsertEpisodes([]*Episode{
		{SeriesID: s.ID, Season: 1, Episode: 1, Title: "Pilot"},
		{SeriesID: s.ID, Season: 1, Episode: 2, Title: "Diversity Day"},
		{SeriesID: s.ID, Season: 1, Episode: 3, Title: "Health Care"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	got, err := store.GetEpisode(eps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Pilot", got.Title)
	require.NotNil(t, got.FileID)
	assert.Equal(t, f.ID, *got.FileID)
	require.NotNil(t, got.SceneSeason)
	assert.Equal(t, 2, *got.SceneSeason)
	assert.Equal(t, 5, *got.SceneEpisode)
}

func TestStore_BulkUpsertEpisodes_Empty(t *testing.T) {
	store := NewStore(setupTestDB(t))

	inserted, err := store.BulkUpsertEpisodes(nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestStore_SetSceneNumbering_UnknownEpisode(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Scene")

	ok, err := store.SetSceneNumbering(s.ID, 9, 9, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_GetEpisodesByFileID(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Multi")

	e1 := &Episode{SeriesID: s.ID, Season: 1, Episode: 1}
	e2 := &Episode{SeriesID: s.ID, Season: 1, Episode: 2}
	e3 := &Episode{SeriesID: s.ID, Season: 1, Episode: 3}
	for _, e := range []*Episode{e1, e2, e3} {
		require.NoError(t, store.AddEpisode(e))
	}

	f := &EpisodeFile{SeriesID: s.ID, SeasonNumber: 1, Path: "/tv/Multi/S01E01E02.mkv"}
	require.NoError(t, store.ImportEpisodeFile(f, []int64{e1.ID, e2.ID}))

	linked, err := store.GetEpisodesByFileID(f.ID)
	require.NoError(t, err)
	require.Len(t, linked, 2)
	assert.Equal(t, e1.ID, linked[0].ID)
	assert.Equal(t, e2.ID, linked[1].ID)

	none, err := store.GetEpisodesByFileID(f.ID + 100)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_GetSeriesStats(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Stats")

	require.NoError(t, store.EnsureSeason(s.ID, 0))
	require.NoError(t, store.EnsureSeason(s.ID, 1))
	require.NoError(t, store.SetIgnore(s.ID, 0, true))

	e1 := &Episode{SeriesID: s.ID, Season: 1, Episode: 1}
	e2 := &Episode{SeriesID: s.ID, Season: 1, Episode: 2}
	require.NoError(t, store.AddEpisode(e1))
	require.NoError(t, store.AddEpisode(e2))
	require.NoError(t, store.ImportEpisodeFile(&EpisodeFile{SeriesID: s.ID, SeasonNumber: 1, Path: "/tv/Stats/e1.mkv"}, []int64{e1.ID}))

	stats, err := store.GetSeriesStats(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalEpisodes)
	assert.Equal(t, 1, stats.EpisodesWithFile)
	assert.Equal(t, 2, stats.SeasonCount)
	assert.Equal(t, 1, stats.IgnoredSeasons)
}
