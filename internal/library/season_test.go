package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SeasonNumbers(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Seasons")

	for _, n := range []int{2, 0, 1} {
		require.NoError(t, store.EnsureSeason(s.ID, n))
	}

	numbers, err := store.SeasonNumbers(s.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, numbers)
}

func TestStore_SeasonNumbers_Empty(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "No Seasons")

	numbers, err := store.SeasonNumbers(s.ID)
	require.NoError(t, err)
	assert.NotNil(t, numbers)
	assert.Empty(t, numbers)
}

func TestStore_EnsureSeason_KeepsIgnoredFlag(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Keep")

	require.NoError(t, store.EnsureSeason(s.ID, 1))
	require.NoError(t, store.SetIgnore(s.ID, 1, true))
	require.NoError(t, store.EnsureSeason(s.ID, 1))

	ignored, err := store.IsIgnored(s.ID, 1)
	require.NoError(t, err)
	assert.True(t, ignored, "EnsureSeason must not reset the ignored flag")
}

func TestStore_SetIgnore(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Ignore")
	require.NoError(t, store.EnsureSeason(s.ID, 3))

	ignored, err := store.IsIgnored(s.ID, 3)
	require.NoError(t, err)
	assert.False(t, ignored)

	require.NoError(t, store.SetIgnore(s.ID, 3, true))
	ignored, err = store.IsIgnored(s.ID, 3)
	require.NoError(t, err)
	assert.True(t, ignored)

	require.NoError(t, store.SetIgnore(s.ID, 3, false))
	ignored, err = store.IsIgnored(s.ID, 3)
	require.NoError(t, err)
	assert.False(t, ignored)
}

func TestStore_SetIgnore_CreatesMissingSeason(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Create")

	require.NoError(t, store.SetIgnore(s.ID, 4, true))

	seasons, err := store.ListSeasons(s.ID)
	require.NoError(t, err)
	require.Len(t, seasons, 1)
	assert.Equal(t, 4, seasons[0].Number)
	assert.True(t, seasons[0].Ignored)
}

func TestStore_IsIgnored_NotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))
	s := createTestSeries(t, store, "Missing")

	_, err := store.IsIgnored(s.ID, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SetIgnore_UnknownSeries(t *testing.T) {
	store := NewStore(setupTestDB(t))

	err := store.SetIgnore(12345, 1, true)
	assert.ErrorIs(t, err, ErrConstraint, "foreign key to series is enforced")
}
