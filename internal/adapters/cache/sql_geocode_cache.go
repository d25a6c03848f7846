package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/platform/obs"

	"go.uber.org/zap"
)

// SQLGeocodeCache is a Postgres-backed cache mapping normalized place
// queries to coordinates. Rows older than ttl are treated as misses; a
// non-positive ttl never expires.
type SQLGeocodeCache struct {
	DB  *sql.DB
	ttl time.Duration
	log *zap.Logger
}

func NewSQLGeocodeCache(db *sql.DB, ttl time.Duration, log *zap.Logger) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db, ttl: ttl, log: log}
}

// Fetch the cached coordinate for key.
func (s *SQLGeocodeCache) Get(ctx context.Context, key string) (_ domain.Coordinate, _ bool, err error) {
	defer obs.Time(ctx, s.log, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Coordinate{}, false, errors.New("get geocode cache: key must not be empty")
	}

	q := `
	SELECT lat, lon
    FROM geocode_cache
    WHERE place = $1;
	`
	args := []any{key}
	if s.ttl > 0 {
		q = `
		SELECT lat, lon
		FROM geocode_cache
		WHERE place = $1
		  AND updated_at >= now() - make_interval(secs => $2);
		`
		args = append(args, s.ttl.Seconds())
	}

	var c domain.Coordinate
	err = s.DB.QueryRowContext(ctx, q, args...).Scan(&c.Lat, &c.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return c, true, nil
}

// Store a place -> coordinate mapping, replacing any previous entry.
func (s *SQLGeocodeCache) Put(ctx context.Context, key string, c domain.Coordinate) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("insert geocode cache: empty place key")
	}

	q := `
	INSERT INTO geocode_cache (place, lat, lon, updated_at)
    VALUES ($1, $2, $3, now())
	ON CONFLICT (place) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		updated_at = EXCLUDED.updated_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, c.Lat, c.Lon); err != nil {
		return fmt.Errorf("insert geocode cache place=%q: %w", key, err)
	}

	return nil
}
