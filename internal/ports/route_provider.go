package ports

import (
	"context"
	"route-evaluation-service/internal/domain"
)

// Contract for retrieving alternative routes between two coordinates.
type RouteProvider interface {
	// Return route candidates in the collaborator's order, primary route first.
	// Emissions are left unset.
	// Fails with domain.ErrNoRouteFound or domain.ErrServiceUnavailable.
	Routes(ctx context.Context, origin domain.Coordinate, destination domain.Coordinate) ([]domain.RouteCandidate, error)
}
