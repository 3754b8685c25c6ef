// Package metadata refreshes series metadata from TVDB into the catalog.
package metadata

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Cache stores provider responses in the metadata_cache table.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// NewCache creates a cache over db.
func NewCache(db *sql.DB) *Cache {
	return &Cache{db: db, now: time.Now}
}

// Get returns the raw value under key, or false when it is missing or expired.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	var expires time.Time
	err := c.db.QueryRowContext(ctx, "SELECT value, expires_at FROM metadata_cache WHERE key = ?", key).Scan(&value, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if !c.now().Before(expires) {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Set stores value under key until ttl elapses.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO metadata_cache (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, string(value), c.now().Add(ttl))
	if err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate drops key.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM metadata_cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", key, err)
	}
	return nil
}

// Prune deletes expired entries and returns how many were removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM metadata_cache WHERE expires_at <= ?", c.now())
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	return res.RowsAffected()
}

// cached returns the decoded value under key, calling fetch and storing its
// result on a miss. Cache failures are logged and never fail the lookup.
func cached[T any](ctx context.Context, c *Cache, log *slog.Logger, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if c != nil {
		raw, ok, err := c.Get(ctx, key)
		if err != nil {
			log.Warn("cache read failed", "key", key, "error", err)
		}
		if ok {
			var v T
			if err := json.Unmarshal(raw, &v); err == nil {
				log.Debug("cache hit", "key", key)
				return v, nil
			}
			log.Warn("discarding undecodable cache entry", "key", key)
		}
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}
	if c == nil {
		return v, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Warn("cache encode failed", "key", key, "error", err)
		return v, nil
	}
	if err := c.Set(ctx, key, raw, ttl); err != nil {
		log.Warn("cache write failed", "key", key, "error", err)
	}
	return v, nil
}
