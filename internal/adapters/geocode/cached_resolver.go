package geocode

import (
	"context"
	"strings"

	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/ports"

	"go.uber.org/zap"
)

// CachedResolver memoizes successful lookups of another resolver.
// Cache failures are logged and bypassed; misses and failed lookups are
// never cached.
type CachedResolver struct {
	next  ports.CoordinateResolver
	cache ports.GeocodeCache
	log   *zap.Logger
}

func NewCachedResolver(next ports.CoordinateResolver, cache ports.GeocodeCache, log *zap.Logger) *CachedResolver {
	return &CachedResolver{next: next, cache: cache, log: log}
}

func cacheKey(placeName, countryHint string) string {
	return strings.ToLower(searchText(placeName, countryHint))
}

func (c *CachedResolver) Resolve(ctx context.Context, placeName string, countryHint string) (domain.Coordinate, error) {
	key := cacheKey(placeName, countryHint)

	if hit, ok, err := c.cache.Get(ctx, key); err != nil {
		c.log.Warn("geocode cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return hit, nil
	}

	coord, err := c.next.Resolve(ctx, placeName, countryHint)
	if err != nil {
		return domain.Coordinate{}, err
	}

	if err := c.cache.Put(ctx, key, coord); err != nil {
		c.log.Warn("geocode cache write failed", zap.String("key", key), zap.Error(err))
	}

	return coord, nil
}
