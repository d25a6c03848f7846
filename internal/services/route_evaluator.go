package services

import (
	"context"
	"fmt"

	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/platform/obs"
	"route-evaluation-service/internal/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RouteEvaluator runs the evaluation pipeline: geocode both endpoints,
// fetch alternative routes, derive emissions, and attach endpoint weather.
//
// Geocoding and routing failures abort the evaluation. Weather failures
// never do. The evaluator holds no per-call state and is safe for
// concurrent use.
type RouteEvaluator struct {
	resolver    ports.CoordinateResolver
	routes      ports.RouteProvider
	weather     *WeatherEnricher
	countryHint string
	log         *zap.Logger
}

func NewRouteEvaluator(
	resolver ports.CoordinateResolver,
	routes ports.RouteProvider,
	weather *WeatherEnricher,
	countryHint string,
	log *zap.Logger,
) *RouteEvaluator {
	return &RouteEvaluator{
		resolver:    resolver,
		routes:      routes,
		weather:     weather,
		countryHint: countryHint,
		log:         log,
	}
}

// Evaluate returns every route alternative between the two named places,
// in the routing service's order, with emissions for vc and weather at
// both endpoints.
//
// Failures are returned as *domain.EvaluationError wrapping one of the
// domain error kinds.
func (e *RouteEvaluator) Evaluate(
	ctx context.Context,
	originName string,
	destinationName string,
	vc domain.VehicleClass,
) (_ domain.RouteEvaluationResult, err error) {
	defer obs.Time(ctx, e.log, "evaluator.Evaluate")(&err)

	if !vc.Valid() {
		return domain.RouteEvaluationResult{}, &domain.EvaluationError{
			Stage: domain.StageValidate,
			Err:   fmt.Errorf("vehicle class %q: %w", string(vc), domain.ErrInvalidConfiguration),
		}
	}

	origin, destination, err := e.resolveEndpoints(ctx, originName, destinationName)
	if err != nil {
		return domain.RouteEvaluationResult{}, err
	}

	var (
		candidates         []domain.RouteCandidate
		originWeather      domain.WeatherSnapshot
		destinationWeather domain.WeatherSnapshot
	)

	// Weather does not depend on routing, so all three calls run together.
	// Only routing can fail the group.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		routes, err := e.routes.Routes(gctx, origin, destination)
		if err != nil {
			return &domain.EvaluationError{Stage: domain.StageRouting, Err: err}
		}
		if len(routes) == 0 {
			return &domain.EvaluationError{Stage: domain.StageRouting, Err: domain.ErrNoRouteFound}
		}
		candidates = routes
		return nil
	})
	g.Go(func() error {
		originWeather = e.weather.Fetch(gctx, origin)
		return nil
	})
	g.Go(func() error {
		destinationWeather = e.weather.Fetch(gctx, destination)
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.RouteEvaluationResult{}, err
	}

	withEmissions := make([]domain.RouteCandidate, len(candidates))
	for i, c := range candidates {
		withEmissions[i] = c.WithEmissions(vc)
	}

	e.log.Info("route evaluation complete",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("origin", originName),
		zap.String("destination", destinationName),
		zap.String("vehicle_class", vc.String()),
		zap.Int("candidates", len(withEmissions)),
		zap.Bool("origin_weather", originWeather.Available()),
		zap.Bool("destination_weather", destinationWeather.Available()),
	)

	return domain.RouteEvaluationResult{
		Origin:             origin,
		Destination:        destination,
		VehicleClass:       vc,
		Candidates:         withEmissions,
		OriginWeather:      originWeather,
		DestinationWeather: destinationWeather,
	}, nil
}

// resolveEndpoints geocodes origin and destination concurrently. The first
// failure cancels the other lookup.
func (e *RouteEvaluator) resolveEndpoints(
	ctx context.Context,
	originName string,
	destinationName string,
) (domain.Coordinate, domain.Coordinate, error) {
	var origin, destination domain.Coordinate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := e.resolver.Resolve(gctx, originName, e.countryHint)
		if err != nil {
			return &domain.EvaluationError{Stage: domain.StageGeocodeOrigin, Location: originName, Err: err}
		}
		origin = c
		return nil
	})
	g.Go(func() error {
		c, err := e.resolver.Resolve(gctx, destinationName, e.countryHint)
		if err != nil {
			return &domain.EvaluationError{Stage: domain.StageGeocodeDestination, Location: destinationName, Err: err}
		}
		destination = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Coordinate{}, domain.Coordinate{}, err
	}
	return origin, destination, nil
}
