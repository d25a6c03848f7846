package routing

import (
	"errors"
	"fmt"
	"strconv"

	"route-evaluation-service/internal/domain"
)

// toCandidate converts one collaborator route, whose geometry is a list of
// [lon, lat] positions, into a RouteCandidate in (lat, lon) order.
func toCandidate(positions [][]float64, distanceM, durationS float64) (domain.RouteCandidate, error) {
	if len(positions) == 0 {
		return domain.RouteCandidate{}, errors.New("route has empty geometry")
	}
	if distanceM < 0 || durationS < 0 {
		return domain.RouteCandidate{}, fmt.Errorf("route has negative metrics: distance=%v duration=%v", distanceM, durationS)
	}

	geometry := make(domain.RouteGeometry, 0, len(positions))
	for i, p := range positions {
		c, err := domain.CoordinateFromLonLat(p)
		if err != nil {
			return domain.RouteCandidate{}, fmt.Errorf("geometry position #%d: %w", i, err)
		}
		geometry = append(geometry, c)
	}

	return domain.RouteCandidate{
		Geometry:        geometry,
		DistanceMeters:  distanceM,
		DurationSeconds: durationS,
	}, nil
}

// lonLat formats a coordinate as "lon,lat" for URL path segments.
func lonLat(c domain.Coordinate) string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrServiceUnavailable, err)
}

func noRoute(op string, detail string) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", op, domain.ErrNoRouteFound)
	}
	return fmt.Errorf("%s: %w: %s", op, domain.ErrNoRouteFound, detail)
}
