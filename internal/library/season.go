package library

import (
	"fmt"
)

// EnsureSeason creates the season row if it does not exist yet.
// An existing season keeps its ignored flag.
func (s *Store) EnsureSeason(seriesID int64, number int) error {
	_, err := s.db.Exec(`
		INSERT INTO seasons (series_id, season_number, ignored) VALUES (?, ?, 0)
		ON CONFLICT(series_id, season_number) DO NOTHING`,
		seriesID, number,
	)
	if err != nil {
		return fmt.Errorf("ensure season %d/%d: %w", seriesID, number, mapSQLiteError(err))
	}
	return nil
}

// SeasonNumbers returns the known season numbers of a series in ascending order.
// A series without seasons yields an empty slice.
func (s *Store) SeasonNumbers(seriesID int64) ([]int, error) {
	rows, err := s.db.Query(
		"SELECT season_number FROM seasons WHERE series_id = ? ORDER BY season_number", seriesID)
	if err != nil {
		return nil, fmt.Errorf("list season numbers for series %d: %w", seriesID, err)
	}
	defer func() { _ = rows.Close() }()

	numbers := []int{}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan season number: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate season numbers: %w", err)
	}
	return numbers, nil
}

// ListSeasons returns all seasons of a series ordered by number.
func (s *Store) ListSeasons(seriesID int64) ([]*Season, error) {
	rows, err := s.db.Query(
		"SELECT series_id, season_number, ignored FROM seasons WHERE series_id = ? ORDER BY season_number", seriesID)
	if err != nil {
		return nil, fmt.Errorf("list seasons for series %d: %w", seriesID, err)
	}
	defer func() { _ = rows.Close() }()

	var seasons []*Season
	for rows.Next() {
		season := &Season{}
		if err := rows.Scan(&season.SeriesID, &season.Number, &season.Ignored); err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		seasons = append(seasons, season)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seasons: %w", err)
	}
	return seasons, nil
}

// IsIgnored reports whether a season is ignored.
// Returns ErrNotFound if the season does not exist.
func (s *Store) IsIgnored(seriesID int64, number int) (bool, error) {
	var ignored bool
	err := s.db.QueryRow(
		"SELECT ignored FROM seasons WHERE series_id = ? AND season_number = ?", seriesID, number,
	).Scan(&ignored)
	if err != nil {
		return false, fmt.Errorf("get season %d/%d: %w", seriesID, number, mapSQLiteError(err))
	}
	return ignored, nil
}

// SetIgnore sets the ignored flag of a season, creating the season if needed.
func (s *Store) SetIgnore(seriesID int64, number int, ignored bool) error {
	_, err := s.db.Exec(`
		INSERT INTO seasons (series_id, season_number, ignored) VALUES (?, ?, ?)
		ON CONFLICT(series_id, season_number) DO UPDATE SET ignored = excluded.ignored`,
		seriesID, number, ignored,
	)
	if err != nil {
		return fmt.Errorf("set ignore on season %d/%d: %w", seriesID, number, mapSQLiteError(err))
	}
	return nil
}
