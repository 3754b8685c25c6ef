package library

import (
	"fmt"
	"time"
)

const fileColumns = "id, series_id, season_number, path, size_bytes, quality, added_at"

func scanFile(r rowScanner) (*EpisodeFile, error) {
	f := &EpisodeFile{}
	if err := r.Scan(&f.ID, &f.SeriesID, &f.SeasonNumber, &f.Path, &f.SizeBytes, &f.Quality, &f.AddedAt); err != nil {
		return nil, err
	}
	return f, nil
}

func addFile(q querier, f *EpisodeFile) error {
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO episode_files (series_id, season_number, path, size_bytes, quality, added_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		f.SeriesID, f.SeasonNumber, f.Path, f.SizeBytes, f.Quality, now,
	)
	if err != nil {
		return fmt.Errorf("insert file: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	f.ID = id
	f.AddedAt = now
	return nil
}

// AddFile inserts a new episode file.
// Sets ID and AddedAt on the struct.
func (s *Store) AddFile(f *EpisodeFile) error { return addFile(s.db, f) }

// AddFile inserts a new episode file within a transaction.
func (t *Tx) AddFile(f *EpisodeFile) error { return addFile(t.tx, f) }

// GetFile retrieves an episode file by ID.
// Returns ErrNotFound if the file does not exist.
func (s *Store) GetFile(id int64) (*EpisodeFile, error) {
	f, err := scanFile(s.db.QueryRow("SELECT "+fileColumns+" FROM episode_files WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get file %d: %w", id, mapSQLiteError(err))
	}
	return f, nil
}

// GetFileByPath retrieves an episode file by its exact path.
// Returns ErrNotFound if no file is recorded at that path.
func (s *Store) GetFileByPath(path string) (*EpisodeFile, error) {
	f, err := scanFile(s.db.QueryRow("SELECT "+fileColumns+" FROM episode_files WHERE path = ?", path))
	if err != nil {
		return nil, fmt.Errorf("get file by path %q: %w", path, mapSQLiteError(err))
	}
	return f, nil
}

// ListFiles returns episode files matching the filter.
// Returns (results, totalCount, error).
func (s *Store) ListFiles(f FileFilter) ([]*EpisodeFile, int, error) {
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
	where := whereClause(conditions)

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM episode_files "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count files: %w", err)
	}

	rows, err := s.db.Query("SELECT "+fileColumns+" FROM episode_files "+where+" ORDER BY id"+pagination(f.Limit, f.Offset), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list files: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*EpisodeFile
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan file: %w", err)
		}
		results = append(results, file)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate files: %w", err)
	}

	return results, total, nil
}

// ListFilesBySeries returns every episode file of a series.
func (s *Store) ListFilesBySeries(seriesID int64) ([]*EpisodeFile, error) {
	files, _, err := s.ListFiles(FileFilter{SeriesID: &seriesID})
	return files, err
}

// UpdateFile updates an existing episode file.
// Returns ErrNotFound if the file does not exist.
func (s *Store) UpdateFile(f *EpisodeFile) error {
	result, err := s.db.Exec(`
		UPDATE episode_files SET series_id = ?, season_number = ?, path = ?, size_bytes = ?, quality = ?
		WHERE id = ?`,
		f.SeriesID, f.SeasonNumber, f.Path, f.SizeBytes, f.Quality, f.ID,
	)
	if err != nil {
		return fmt.Errorf("update file %d: %w", f.ID, mapSQLiteError(err))
	}
	return requireAffected(result, "update file", f.ID)
}

// DeleteFile removes an episode file by ID. Linked episodes lose their file link.
// This operation is idempotent.
func (s *Store) DeleteFile(id int64) error {
	if _, err := s.db.Exec("DELETE FROM episode_files WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete file %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

// ImportEpisodeFile records a file and links it to episodes in one transaction.
func (s *Store) ImportEpisodeFile(f *EpisodeFile, episodeIDs []int64) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.AddFile(f); err != nil {
		return err
	}
	if err := tx.LinkEpisodes(f.ID, episodeIDs); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
