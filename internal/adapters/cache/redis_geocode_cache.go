package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "geocode:"

type redisCoordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RedisGeocodeCache stores place -> coordinate mappings in Redis with a TTL.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: ttl, log: log}
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

func (r *RedisGeocodeCache) Get(ctx context.Context, key string) (_ domain.Coordinate, _ bool, err error) {
	defer obs.Time(ctx, r.log, "geocode.redis.Get")(&err)

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Coordinate{}, false, errors.New("get geocode cache: key must not be empty")
	}

	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: %w", err)
	}

	var v redisCoordinate
	if err := json.Unmarshal(raw, &v); err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: decode %q: %w", key, err)
	}

	return domain.Coordinate{Lat: v.Lat, Lon: v.Lon}, true, nil
}

func (r *RedisGeocodeCache) Put(ctx context.Context, key string, c domain.Coordinate) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert geocode cache: empty place key")
	}

	raw, err := json.Marshal(redisCoordinate{Lat: c.Lat, Lon: c.Lon})
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode: %w", err)
	}

	if err := r.client.Set(ctx, redisKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert geocode cache place=%q: %w", key, err)
	}
	return nil
}
