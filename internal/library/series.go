package library

import (
	"fmt"
	"time"
)

const seriesColumns = "id, tvdb_id, title, path, last_info_sync, last_disk_sync, added_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeries(r rowScanner) (*Series, error) {
	s := &Series{}
	err := r.Scan(&s.ID, &s.TVDBID, &s.Title, &s.Path, &s.LastInfoSync, &s.LastDiskSync, &s.AddedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func addSeries(q querier, s *Series) error {
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO series (tvdb_id, title, path, last_info_sync, last_disk_sync, added_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.TVDBID, s.Title, s.Path, s.LastInfoSync, s.LastDiskSync, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert series: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	s.ID = id
	s.AddedAt = now
	s.UpdatedAt = now
	return nil
}

// AddSeries inserts a new series.
// Sets ID, AddedAt, and UpdatedAt on the struct.
func (s *Store) AddSeries(series *Series) error { return addSeries(s.db, series) }

// AddSeries inserts a new series within a transaction.
func (t *Tx) AddSeries(series *Series) error { return addSeries(t.tx, series) }

func getSeries(q querier, id int64) (*Series, error) {
	s, err := scanSeries(q.QueryRow("SELECT "+seriesColumns+" FROM series WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get series %d: %w", id, mapSQLiteError(err))
	}
	return s, nil
}

// GetSeries retrieves a series by ID.
// Returns ErrNotFound if the series does not exist.
func (s *Store) GetSeries(id int64) (*Series, error) { return getSeries(s.db, id) }

// GetSeries retrieves a series by ID within a transaction.
func (t *Tx) GetSeries(id int64) (*Series, error) { return getSeries(t.tx, id) }

func listSeries(q querier, f SeriesFilter) ([]*Series, int, error) {
	var conditions []string
	var args []any

	if f.TVDBID != nil {
		conditions = append(conditions, "tvdb_id = ?")
		args = append(args, *f.TVDBID)
	}
	if f.Title != nil {
		conditions = append(conditions, "title = ?")
		args = append(args, *f.Title)
	}
	if f.NeverSynced {
		conditions = append(conditions, "last_info_sync IS NULL")
	}
	where := whereClause(conditions)

	var total int
	if err := q.QueryRow("SELECT COUNT(*) FROM series "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count series: %w", err)
	}

	rows, err := q.Query("SELECT "+seriesColumns+" FROM series "+where+" ORDER BY id"+pagination(f.Limit, f.Offset), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list series: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Series
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan series: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate series: %w", err)
	}

	return results, total, nil
}

// ListSeries returns series matching the filter in catalog (ID) order.
// Returns (results, totalCount, error).
func (s *Store) ListSeries(f SeriesFilter) ([]*Series, int, error) { return listSeries(s.db, f) }

// ListSeries returns series matching the filter within a transaction.
func (t *Tx) ListSeries(f SeriesFilter) ([]*Series, int, error) { return listSeries(t.tx, f) }

func updateSeries(q querier, s *Series) error {
	now := time.Now()
	result, err := q.Exec(`
		UPDATE series SET tvdb_id = ?, title = ?, path = ?, last_info_sync = ?, last_disk_sync = ?, updated_at = ?
		WHERE id = ?`,
		s.TVDBID, s.Title, s.Path, s.LastInfoSync, s.LastDiskSync, now, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update series %d: %w", s.ID, mapSQLiteError(err))
	}
	if err := requireAffected(result, "update series", s.ID); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

// UpdateSeries updates an existing series.
// Returns ErrNotFound if the series does not exist.
func (s *Store) UpdateSeries(series *Series) error { return updateSeries(s.db, series) }

// UpdateSeries updates an existing series within a transaction.
func (t *Tx) UpdateSeries(series *Series) error { return updateSeries(t.tx, series) }

// DeleteSeries removes a series and, through cascades, its seasons, episodes and files.
// This operation is idempotent.
func (s *Store) DeleteSeries(id int64) error {
	if _, err := s.db.Exec("DELETE FROM series WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete series %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

// MarkInfoSynced records a completed metadata sync.
func (s *Store) MarkInfoSynced(id int64, at time.Time) error {
	return s.markSynced("last_info_sync", id, at)
}

// MarkDiskSynced records a completed disk scan.
func (s *Store) MarkDiskSynced(id int64, at time.Time) error {
	return s.markSynced("last_disk_sync", id, at)
}

func (s *Store) markSynced(column string, id int64, at time.Time) error {
	result, err := s.db.Exec("UPDATE series SET "+column+" = ?, updated_at = ? WHERE id = ?", at, time.Now(), id)
	if err != nil {
		return fmt.Errorf("set %s for series %d: %w", column, id, mapSQLiteError(err))
	}
	return requireAffected(result, "set "+column+" for series", id)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func requireAffected(result rowsAffecter, op string, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s %d: %w", op, id, ErrNotFound)
	}
	return nil
}
