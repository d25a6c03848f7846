package ports

import (
	"context"
	"route-evaluation-service/internal/domain"
)

// Contract for turning a human-readable place name into a coordinate.
type CoordinateResolver interface {
	// Resolve the place, disambiguated by countryHint, to the first match
	// returned by the geocoding collaborator.
	// Fails with domain.ErrLocationNotFound or domain.ErrServiceUnavailable.
	Resolve(ctx context.Context, placeName string, countryHint string) (domain.Coordinate, error)
}
