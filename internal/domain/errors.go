package domain

import (
	"errors"
	"fmt"
)

// Error kinds produced by the evaluation pipeline.
// Adapters wrap these so callers can classify failures with errors.Is.
var (
	ErrLocationNotFound     = errors.New("location not found")
	ErrNoRouteFound         = errors.New("no route found")
	ErrServiceUnavailable   = errors.New("service unavailable")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Stage names the pipeline step that failed.
type Stage string

const (
	StageValidate           Stage = "validate"
	StageGeocodeOrigin      Stage = "geocode_origin"
	StageGeocodeDestination Stage = "geocode_destination"
	StageRouting            Stage = "routing"
)

// EvaluationError carries enough context for a caller to explain a failed
// evaluation: which stage failed and, for geocoding, which location.
type EvaluationError struct {
	Stage    Stage
	Location string
	Err      error
}

func (e *EvaluationError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("%s %q: %v", e.Stage, e.Location, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// KindOf returns a stable identifier for the error kind, or "internal" when
// err matches none of the pipeline kinds.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidConfiguration):
		return "invalid_configuration"
	case errors.Is(err, ErrLocationNotFound):
		return "location_not_found"
	case errors.Is(err, ErrNoRouteFound):
		return "no_route_found"
	case errors.Is(err, ErrServiceUnavailable):
		return "service_unavailable"
	default:
		return "internal"
	}
}
