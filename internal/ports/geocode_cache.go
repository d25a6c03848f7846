package ports

import (
	"context"
	"route-evaluation-service/internal/domain"
)

// Port: a memo of successful place-name lookups.
// Keys are expected to be normalized by the caller.
type GeocodeCache interface {
	// Return the cached coordinate and whether it was present.
	Get(ctx context.Context, key string) (domain.Coordinate, bool, error)
	Put(ctx context.Context, key string, c domain.Coordinate) error
}
