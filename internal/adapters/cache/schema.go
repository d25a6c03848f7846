package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InitSchema creates the Postgres tables used by SQLGeocodeCache.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        place TEXT PRIMARY KEY,
        lat DOUBLE PRECISION NOT NULL,
        lon DOUBLE PRECISION NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_geocode_cache_updated_at
    ON geocode_cache(updated_at);
	`

	statements := []string{
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// PurgeOlderThan deletes cache rows not refreshed within maxAge and returns
// the number of rows removed.
func PurgeOlderThan(ctx context.Context, db *sql.DB, maxAge time.Duration) (int64, error) {
	res, err := db.ExecContext(ctx,
		`DELETE FROM geocode_cache WHERE updated_at < now() - make_interval(secs => $1);`,
		maxAge.Seconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("purge geocode cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge geocode cache: rows affected: %w", err)
	}
	return n, nil
}
