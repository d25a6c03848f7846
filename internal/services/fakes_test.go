package services

import (
	"context"
	"sync"

	"route-evaluation-service/internal/domain"
)

// fakeResolver resolves names from a fixed table. Names missing from the
// table fail with domain.ErrLocationNotFound, the same way an empty geocoder
// result does.
type fakeResolver struct {
	mu     sync.Mutex
	places map[string]domain.Coordinate
	errs   map[string]error
	calls  []string
	hints  []string
}

func (f *fakeResolver) Resolve(ctx context.Context, placeName, countryHint string) (domain.Coordinate, error) {
	f.mu.Lock()
	f.calls = append(f.calls, placeName)
	f.hints = append(f.hints, countryHint)
	f.mu.Unlock()

	if err, ok := f.errs[placeName]; ok {
		return domain.Coordinate{}, err
	}
	c, ok := f.places[placeName]
	if !ok {
		return domain.Coordinate{}, domain.ErrLocationNotFound
	}
	return c, nil
}

func (f *fakeResolver) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeRoutes struct {
	mu         sync.Mutex
	candidates []domain.RouteCandidate
	err        error
	calls      int
	gotFrom    domain.Coordinate
	gotTo      domain.Coordinate
}

func (f *fakeRoutes) Routes(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RouteCandidate, error) {
	f.mu.Lock()
	f.calls++
	f.gotFrom, f.gotTo = origin, destination
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.RouteCandidate, len(f.candidates))
	copy(out, f.candidates)
	return out, nil
}

func (f *fakeRoutes) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeWeather answers per coordinate. Coordinates listed in failing return
// an error; everything else gets the snapshot stored for it.
type fakeWeather struct {
	mu        sync.Mutex
	snapshots map[domain.Coordinate]domain.WeatherSnapshot
	failing   map[domain.Coordinate]error
	calls     int
}

func (f *fakeWeather) CurrentWeather(ctx context.Context, point domain.Coordinate) (domain.WeatherSnapshot, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if err, ok := f.failing[point]; ok {
		return domain.WeatherSnapshot{}, err
	}
	return f.snapshots[point], nil
}

func (f *fakeWeather) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
