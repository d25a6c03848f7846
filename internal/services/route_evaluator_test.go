package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"route-evaluation-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	delhi     = domain.Coordinate{Lat: 28.6, Lon: 77.1}
	bangalore = domain.Coordinate{Lat: 12.97, Lon: 77.59}
)

func twoCandidates() []domain.RouteCandidate {
	return []domain.RouteCandidate{
		{
			Geometry:        domain.RouteGeometry{delhi, {Lat: 20, Lon: 77.3}, bangalore},
			DistanceMeters:  2_150_000,
			DurationSeconds: 120_000,
		},
		{
			Geometry:        domain.RouteGeometry{delhi, {Lat: 19, Lon: 75}, bangalore},
			DistanceMeters:  500_000,
			DurationSeconds: 130_000,
		},
	}
}

type evaluatorFixture struct {
	resolver *fakeResolver
	routes   *fakeRoutes
	weather  *fakeWeather
}

func newFixture() *evaluatorFixture {
	return &evaluatorFixture{
		resolver: &fakeResolver{
			places: map[string]domain.Coordinate{
				"Delhi":     delhi,
				"Bangalore": bangalore,
			},
		},
		routes: &fakeRoutes{candidates: twoCandidates()},
		weather: &fakeWeather{
			snapshots: map[domain.Coordinate]domain.WeatherSnapshot{
				delhi:     domain.NewWeatherSnapshot(34, 30, "haze"),
				bangalore: domain.NewWeatherSnapshot(24, 70, "light rain"),
			},
		},
	}
}

func (f *evaluatorFixture) evaluator() *RouteEvaluator {
	log := zap.NewNop()
	return NewRouteEvaluator(f.resolver, f.routes, NewWeatherEnricher(f.weather, log), "India", log)
}

func TestEvaluateHappyPath(t *testing.T) {
	f := newFixture()

	res, err := f.evaluator().Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleDiesel)
	require.NoError(t, err)

	assert.Equal(t, delhi, res.Origin)
	assert.Equal(t, bangalore, res.Destination)
	assert.Equal(t, domain.VehicleDiesel, res.VehicleClass)
	require.Len(t, res.Candidates, 2)

	assert.InDelta(t, 322_500.0, res.Candidates[0].EmissionsGrams, 1e-9)
	assert.InDelta(t, 75_000.0, res.Candidates[1].EmissionsGrams, 1e-9)

	assert.Equal(t, "haze", res.OriginWeather.Description)
	assert.Equal(t, "light rain", res.DestinationWeather.Description)

	assert.Equal(t, delhi, f.routes.gotFrom)
	assert.Equal(t, bangalore, f.routes.gotTo)
	assert.Equal(t, []string{"India", "India"}, f.resolver.hints)
}

func TestEvaluatePreservesCandidateOrder(t *testing.T) {
	f := newFixture()
	want := twoCandidates()

	res, err := f.evaluator().Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleGasoline)
	require.NoError(t, err)

	require.Len(t, res.Candidates, len(want))
	for i := range want {
		assert.Equal(t, want[i].DistanceMeters, res.Candidates[i].DistanceMeters, "candidate %d", i)
		assert.Equal(t, want[i].DurationSeconds, res.Candidates[i].DurationSeconds, "candidate %d", i)
		assert.Equal(t, want[i].Geometry, res.Candidates[i].Geometry, "candidate %d", i)
	}

	// The shorter second route has lower emissions but keeps its position.
	assert.Equal(t, 1, res.LowestEmissions())
	assert.Equal(t, 0, res.Fastest())
}

func TestEvaluateElectricHasZeroEmissions(t *testing.T) {
	f := newFixture()

	res, err := f.evaluator().Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleElectric)
	require.NoError(t, err)

	for i, c := range res.Candidates {
		assert.Zero(t, c.EmissionsGrams, "candidate %d", i)
	}
}

func TestEvaluateIsIdempotentWithDeterministicCollaborators(t *testing.T) {
	f := newFixture()
	ev := f.evaluator()

	first, err := ev.Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleGasoline)
	require.NoError(t, err)
	second, err := ev.Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleGasoline)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluateRejectsUnknownVehicleClass(t *testing.T) {
	f := newFixture()

	_, err := f.evaluator().Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleClass("hovercraft"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	var evalErr *domain.EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, domain.StageValidate, evalErr.Stage)

	assert.Zero(t, f.resolver.callCount())
	assert.Zero(t, f.routes.callCount())
	assert.Zero(t, f.weather.callCount())
}

func TestEvaluateGeocodeFailures(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		errs        map[string]error
		wantErr     error
		wantStage   domain.Stage
		wantLoc     string
	}{
		{
			name:        "empty result for origin",
			origin:      "Atlantis",
			destination: "Bangalore",
			wantErr:     domain.ErrLocationNotFound,
			wantStage:   domain.StageGeocodeOrigin,
			wantLoc:     "Atlantis",
		},
		{
			name:        "empty result for destination",
			origin:      "Delhi",
			destination: "Atlantis",
			wantErr:     domain.ErrLocationNotFound,
			wantStage:   domain.StageGeocodeDestination,
			wantLoc:     "Atlantis",
		},
		{
			name:        "geocoder down",
			origin:      "Delhi",
			destination: "Bangalore",
			errs: map[string]error{
				"Delhi": fmt.Errorf("nominatim: %w: connection refused", domain.ErrServiceUnavailable),
			},
			wantErr:   domain.ErrServiceUnavailable,
			wantStage: domain.StageGeocodeOrigin,
			wantLoc:   "Delhi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.resolver.errs = tt.errs

			_, err := f.evaluator().Evaluate(context.Background(), tt.origin, tt.destination, domain.VehicleDiesel)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var evalErr *domain.EvaluationError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, tt.wantStage, evalErr.Stage)
			assert.Equal(t, tt.wantLoc, evalErr.Location)

			assert.Zero(t, f.routes.callCount())
			assert.Zero(t, f.weather.callCount())
		})
	}
}

func TestEvaluateRoutingFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "no route", err: fmt.Errorf("osrm: %w: NoRoute", domain.ErrNoRouteFound), wantErr: domain.ErrNoRouteFound},
		{name: "router down", err: fmt.Errorf("osrm: %w: timeout", domain.ErrServiceUnavailable), wantErr: domain.ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.routes.err = tt.err

			_, err := f.evaluator().Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleGasoline)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var evalErr *domain.EvaluationError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, domain.StageRouting, evalErr.Stage)
		})
	}
}

func TestEvaluateEmptyRouteListIsNoRoute(t *testing.T) {
	f := newFixture()
	f.routes.candidates = nil

	_, err := f.evaluator().Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleGasoline)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoRouteFound)
}

func TestEvaluateOriginWeatherFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	f.weather.failing = map[domain.Coordinate]error{
		delhi: errors.New("openweathermap: 401 invalid api key"),
	}

	res, err := f.evaluator().Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleGasoline)
	require.NoError(t, err)

	assert.Equal(t, domain.WeatherUnavailable, res.OriginWeather.Description)
	assert.Nil(t, res.OriginWeather.TemperatureC)
	assert.Nil(t, res.OriginWeather.HumidityPct)

	require.True(t, res.DestinationWeather.Available())
	assert.Equal(t, "light rain", res.DestinationWeather.Description)
	assert.Equal(t, 24.0, *res.DestinationWeather.TemperatureC)
	assert.Equal(t, 70, *res.DestinationWeather.HumidityPct)

	assert.Len(t, res.Candidates, 2)
}

func TestEvaluateWithoutWeatherProvider(t *testing.T) {
	f := newFixture()
	log := zap.NewNop()
	ev := NewRouteEvaluator(f.resolver, f.routes, NewWeatherEnricher(nil, log), "India", log)

	res, err := ev.Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleDiesel)
	require.NoError(t, err)

	assert.Equal(t, domain.UnavailableWeather(), res.OriginWeather)
	assert.Equal(t, domain.UnavailableWeather(), res.DestinationWeather)
}

func TestEvaluateConcurrentCalls(t *testing.T) {
	f := newFixture()
	ev := f.evaluator()

	const n = 16
	errs := make(chan error, n)
	for range n {
		go func() {
			res, err := ev.Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleDiesel)
			if err == nil && res.OriginWeather.Description != "haze" {
				err = fmt.Errorf("origin weather swapped: %q", res.OriginWeather.Description)
			}
			errs <- err
		}()
	}

	for range n {
		assert.NoError(t, <-errs)
	}
	assert.Equal(t, 2*n, f.resolver.callCount())
	assert.Equal(t, n, f.routes.callCount())
}

// blockingWeather answers only once the caller's context is done.
type blockingWeather struct{}

func (blockingWeather) CurrentWeather(ctx context.Context, _ domain.Coordinate) (domain.WeatherSnapshot, error) {
	<-ctx.Done()
	return domain.WeatherSnapshot{}, ctx.Err()
}

func TestEvaluateRoutingFailureDoesNotWarnAboutWeather(t *testing.T) {
	f := newFixture()
	f.routes.err = fmt.Errorf("osrm: %w: NoRoute", domain.ErrNoRouteFound)

	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	ev := NewRouteEvaluator(f.resolver, f.routes, NewWeatherEnricher(blockingWeather{}, log), "India", log)

	_, err := ev.Evaluate(context.Background(), "Delhi", "Bangalore", domain.VehicleDiesel)
	require.ErrorIs(t, err, domain.ErrNoRouteFound)

	weatherLogs := logs.FilterMessage("weather unavailable")
	assert.Equal(t, 2, weatherLogs.Len())
	assert.Zero(t, weatherLogs.FilterLevelExact(zapcore.WarnLevel).Len())
}
