package app

import (
	"context"
	"fmt"

	"route-evaluation-service/internal/adapters/cache"
	"route-evaluation-service/internal/adapters/geocode"
	"route-evaluation-service/internal/adapters/routing"
	"route-evaluation-service/internal/adapters/weather"
	"route-evaluation-service/internal/config"
	"route-evaluation-service/internal/platform/db"
	"route-evaluation-service/internal/ports"
	"route-evaluation-service/internal/services"

	"go.uber.org/zap"
)

// BuildEvaluator wires concrete adapters behind ports according to cfg.
// The returned cleanup releases any cache connections and is never nil.
func BuildEvaluator(ctx context.Context, cfg *config.Config, log *zap.Logger) (*services.RouteEvaluator, func(), error) {
	cleanup := func() {}

	resolver, err := newResolver(cfg, log)
	if err != nil {
		return nil, cleanup, err
	}

	geoCache, closeCache, err := newGeocodeCache(ctx, cfg, log)
	if err != nil {
		return nil, cleanup, err
	}
	if geoCache != nil {
		resolver = geocode.NewCachedResolver(resolver, geoCache, log.Named("geocode_cache"))
		cleanup = closeCache
	}

	router, err := newRouteProvider(cfg, log)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	// Weather is best-effort; a nil provider yields "N/A" snapshots.
	var weatherProvider ports.WeatherProvider
	if cfg.WeatherAPIKey != "" {
		weatherProvider = weather.NewOpenWeatherMapProvider(cfg.WeatherURL, cfg.WeatherAPIKey, cfg.CollaboratorTimeout, log.Named("weather"))
	} else {
		log.Warn("OPENWEATHERMAP_API_KEY not set; weather will be reported as N/A")
	}

	evaluator := services.NewRouteEvaluator(
		resolver,
		router,
		services.NewWeatherEnricher(weatherProvider, log.Named("weather")),
		cfg.CountryHint,
		log.Named("evaluator"),
	)

	return evaluator, cleanup, nil
}

func newResolver(cfg *config.Config, log *zap.Logger) (ports.CoordinateResolver, error) {
	switch cfg.Geocoder {
	case config.GeocoderNominatim:
		return geocode.NewNominatimResolver(cfg.NominatimURL, cfg.NominatimUserAgent, cfg.CollaboratorTimeout, log.Named("nominatim")), nil
	case config.GeocoderORS:
		return geocode.NewORSResolver(cfg.ORSURL, cfg.ORSAPIKey, cfg.CollaboratorTimeout, log.Named("ors_geocode"))
	default:
		return nil, fmt.Errorf("build evaluator: unknown geocoder %q", cfg.Geocoder)
	}
}

func newRouteProvider(cfg *config.Config, log *zap.Logger) (ports.RouteProvider, error) {
	switch cfg.Router {
	case config.RouterOSRM:
		return routing.NewOSRMProvider(cfg.OSRMURL, cfg.CollaboratorTimeout, log.Named("osrm")), nil
	case config.RouterORS:
		return routing.NewORSProvider(cfg.ORSURL, cfg.ORSAPIKey, cfg.ORSProfile, cfg.CollaboratorTimeout, log.Named("ors_routing"))
	default:
		return nil, fmt.Errorf("build evaluator: unknown router %q", cfg.Router)
	}
}

// newGeocodeCache returns a nil cache when caching is disabled.
func newGeocodeCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (ports.GeocodeCache, func(), error) {
	noop := func() {}

	switch cfg.GeocodeCache {
	case config.CacheNone:
		return nil, noop, nil

	case config.CachePostgres:
		sqlDB, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("build evaluator: %w", err)
		}
		if err := cache.InitSchema(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, noop, fmt.Errorf("build evaluator: %w", err)
		}
		return cache.NewSQLGeocodeCache(sqlDB, cfg.GeocodeCacheTTL, log.Named("pg_cache")), func() { _ = sqlDB.Close() }, nil

	case config.CacheRedis:
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, fmt.Errorf("build evaluator: %w", err)
		}
		return cache.NewRedisGeocodeCache(client, cfg.GeocodeCacheTTL, log.Named("redis_cache")), func() { _ = client.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("build evaluator: unknown geocode cache %q", cfg.GeocodeCache)
	}
}
