package library

import (
	"fmt"
	"strings"
)

const episodeColumns = "id, series_id, tvdb_id, season_number, episode_number, title, air_date, file_id, scene_season, scene_episode"

func scanEpisode(r rowScanner) (*Episode, error) {
	e := &Episode{}
	err := r.Scan(&e.ID, &e.SeriesID, &e.TVDBID, &e.Season, &e.Episode, &e.Title, &e.AirDate, &e.FileID, &e.SceneSeason, &e.SceneEpisode)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func addEpisode(q querier, e *Episode) error {
	result, err := q.Exec(`
		INSERT INTO episodes (series_id, tvdb_id, season_number, episode_number, title, air_date, file_id, scene_season, scene_episode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SeriesID, e.TVDBID, e.Season, e.Episode, e.Title, e.AirDate, e.FileID, e.SceneSeason, e.SceneEpisode,
	)
	if err != nil {
		return fmt.Errorf("insert episode: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	e.ID = id
	return nil
}

// AddEpisode inserts a new episode.
// Sets ID on the struct.
func (s *Store) AddEpisode(e *Episode) error { return addEpisode(s.db, e) }

// AddEpisode inserts a new episode within a transaction.
func (t *Tx) AddEpisode(e *Episode) error { return addEpisode(t.tx, e) }

func getEpisode(q querier, id int64) (*Episode, error) {
	e, err := scanEpisode(q.QueryRow("SELECT "+episodeColumns+" FROM episodes WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get episode %d: %w", id, mapSQLiteError(err))
	}
	return e, nil
}

// GetEpisode retrieves an episode by ID.
// Returns ErrNotFound if the episode does not exist.
func (s *Store) GetEpisode(id int64) (*Episode, error) { return getEpisode(s.db, id) }

// GetEpisode retrieves an episode by ID within a transaction.
func (t *Tx) GetEpisode(id int64) (*Episode, error) { return getEpisode(t.tx, id) }

func listEpisodes(q querier, f EpisodeFilter) ([]*Episode, int, error) {
	var conditions []string
	var args []any

	if f.SeriesID != nil {
		conditions = append(conditions, "series_id = ?")
		args = append(args, *f.SeriesID)
	}
	if f.Season != nil {
		conditions = append(conditions, "season_number = ?")
		args = append(args, *f.Season)
	}
	if f.FileID != nil {
		conditions = append(conditions, "file_id = ?")
		args = append(args, *f.FileID)
	}
	if f.Missing {
		conditions = append(conditions, "file_id IS NULL")
	}
	where := whereClause(conditions)

	var total int
	if err := q.QueryRow("SELECT COUNT(*) FROM episodes "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count episodes: %w", err)
	}

	query := "SELECT " + episodeColumns + " FROM episodes " + where +
		" ORDER BY season_number, episode_number" + pagination(f.Limit, f.Offset)
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list episodes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Episode
	for rows.Next() {
		e, err := scanEpisode(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan episode: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate episodes: %w", err)
	}

	return results, total, nil
}

// ListEpisodes returns episodes matching the filter ordered by season and episode.
// Returns (results, totalCount, error).
func (s *Store) ListEpisodes(f EpisodeFilter) ([]*Episode, int, error) { return listEpisodes(s.db, f) }

// ListEpisodes returns episodes matching the filter within a transaction.
func (t *Tx) ListEpisodes(f EpisodeFilter) ([]*Episode, int, error) { return listEpisodes(t.tx, f) }

// GetEpisodesByFileID returns the episodes linked to an episode file.
func (s *Store) GetEpisodesByFileID(fileID int64) ([]*Episode, error) {
	eps, _, err := listEpisodes(s.db, EpisodeFilter{FileID: &fileID})
	if err != nil {
		return nil, fmt.Errorf("episodes for file %d: %w", fileID, err)
	}
	return eps, nil
}

func updateEpisode(q querier, e *Episode) error {
	result, err := q.Exec(`
		UPDATE episodes SET series_id = ?, tvdb_id = ?, season_number = ?, episode_number = ?, title = ?,
			air_date = ?, file_id = ?, scene_season = ?, scene_episode = ?
		WHERE id = ?`,
		e.SeriesID, e.TVDBID, e.Season, e.Episode, e.Title, e.AirDate, e.FileID, e.SceneSeason, e.SceneEpisode, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update episode %d: %w", e.ID, mapSQLiteError(err))
	}
	return requireAffected(result, "update episode", e.ID)
}

// UpdateEpisode updates an existing episode.
// Returns ErrNotFound if the episode does not exist.
func (s *Store) UpdateEpisode(e *Episode) error { return updateEpisode(s.db, e) }

// UpdateEpisode updates an existing episode within a transaction.
func (t *Tx) UpdateEpisode(e *Episode) error { return updateEpisode(t.tx, e) }

// DeleteEpisode removes an episode by ID.
// This operation is idempotent.
func (s *Store) DeleteEpisode(id int64) error {
	if _, err := s.db.Exec("DELETE FROM episodes WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete episode %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

// BulkUpsertEpisodes inserts episodes or refreshes title, air date and provider ID of
// existing ones, keyed by (series, season, episode). File links and scene numbering
// are left untouched. All episodes must belong to the same series.
// Returns the count of newly inserted episodes.
func (s *Store) BulkUpsertEpisodes(episodes []*Episode) (int, error) {
	if len(episodes) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO episodes (series_id, tvdb_id, season_number, episode_number, title, air_date)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(series_id, season_number, episode_number)
		DO UPDATE SET tvdb_id = excluded.tvdb_id, title = excluded.title, air_date = excluded.air_date`)
	if err != nil {
		return 0, fmt.Errorf("prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	var before int
	if err := tx.QueryRow("SELECT COUNT(*) FROM episodes WHERE series_id = ?", episodes[0].SeriesID).Scan(&before); err != nil {
		return 0, fmt.Errorf("count episodes: %w", err)
	}

	for _, e := range episodes {
		if _, err := stmt.Exec(e.SeriesID, e.TVDBID, e.Season, e.Episode, e.Title, e.AirDate); err != nil {
			return 0, fmt.Errorf("upsert episode S%02dE%02d: %w", e.Season, e.Episode, mapSQLiteError(err))
		}
	}

	var after int
	if err := tx.QueryRow("SELECT COUNT(*) FROM episodes WHERE series_id = ?", episodes[0].SeriesID).Scan(&after); err != nil {
		return 0, fmt.Errorf("count episodes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return after - before, nil
}

// SetSceneNumbering stores the scene numbering for the episode identified by its
// provider numbering. Returns false when no such episode exists.
func (s *Store) SetSceneNumbering(seriesID int64, season, episode, sceneSeason, sceneEpisode int) (bool, error) {
	result, err := s.db.Exec(`
		UPDATE episodes SET scene_season = ?, scene_episode = ?
		WHERE series_id = ? AND season_number = ? AND episode_number = ?`,
		sceneSeason, sceneEpisode, seriesID, season, episode,
	)
	if err != nil {
		return false, fmt.Errorf("set scene numbering S%02dE%02d: %w", season, episode, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

func linkEpisodes(q querier, fileID int64, episodeIDs []int64) error {
	if len(episodeIDs) == 0 {
		return nil
	}
	placeholders := make([]string, len(episodeIDs))
	args := make([]any, 0, len(episodeIDs)+1)
	args = append(args, fileID)
	for i, id := range episodeIDs {
		placeholders[i] = "?"
		args = append(args, id)
	}
	_, err := q.Exec(fmt.Sprintf("UPDATE episodes SET file_id = ? WHERE id IN (%s)", strings.Join(placeholders, ",")), args...)
	if err != nil {
		return fmt.Errorf("link episodes to file %d: %w", fileID, mapSQLiteError(err))
	}
	return nil
}

// LinkEpisodes points the given episodes at a file.
func (s *Store) LinkEpisodes(fileID int64, episodeIDs []int64) error {
	return linkEpisodes(s.db, fileID, episodeIDs)
}

// LinkEpisodes points the given episodes at a file within a transaction.
func (t *Tx) LinkEpisodes(fileID int64, episodeIDs []int64) error {
	return linkEpisodes(t.tx, fileID, episodeIDs)
}

// SeriesStats contains statistics about a series.
type SeriesStats struct {
	TotalEpisodes    int
	EpisodesWithFile int
	SeasonCount      int
	IgnoredSeasons   int
}

// GetSeriesStats returns episode and season statistics for a series.
func (s *Store) GetSeriesStats(seriesID int64) (*SeriesStats, error) {
	stats := &SeriesStats{}

	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN file_id IS NOT NULL THEN 1 ELSE 0 END), 0)
		FROM episodes
		WHERE series_id = ?`, seriesID,
	).Scan(&stats.TotalEpisodes, &stats.EpisodesWithFile)
	if err != nil {
		return nil, fmt.Errorf("get series stats: %w", err)
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(ignored), 0)
		FROM seasons
		WHERE series_id = ?`, seriesID,
	).Scan(&stats.SeasonCount, &stats.IgnoredSeasons)
	if err != nil {
		return nil, fmt.Errorf("get season stats: %w", err)
	}

	return stats, nil
}
