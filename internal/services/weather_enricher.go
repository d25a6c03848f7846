package services

import (
	"context"

	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/ports"

	"go.uber.org/zap"
)

// WeatherEnricher turns a coordinate into a weather snapshot on a
// best-effort basis. It never returns an error: any provider failure
// degrades to domain.UnavailableWeather.
type WeatherEnricher struct {
	provider ports.WeatherProvider
	log      *zap.Logger
}

// A nil provider is allowed and always yields an unavailable snapshot.
func NewWeatherEnricher(provider ports.WeatherProvider, log *zap.Logger) *WeatherEnricher {
	return &WeatherEnricher{provider: provider, log: log}
}

func (w *WeatherEnricher) Fetch(ctx context.Context, point domain.Coordinate) domain.WeatherSnapshot {
	if w == nil || w.provider == nil {
		return domain.UnavailableWeather()
	}

	snap, err := w.provider.CurrentWeather(ctx, point)
	if err != nil {
		logf := w.log.Warn
		if ctx.Err() != nil {
			// The caller gave up; the snapshot will be discarded.
			logf = w.log.Debug
		}
		logf("weather unavailable",
			zap.Float64("lat", point.Lat),
			zap.Float64("lon", point.Lon),
			zap.Error(err),
		)
		return domain.UnavailableWeather()
	}

	return snap
}
