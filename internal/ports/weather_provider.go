package ports

import (
	"context"
	"route-evaluation-service/internal/domain"
)

// Contract for reading current weather at a coordinate.
// Errors are expected and absorbed by the caller.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, point domain.Coordinate) (domain.WeatherSnapshot, error)
}
