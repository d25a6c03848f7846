package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: ErrInvalidConfiguration, want: "invalid_configuration"},
		{err: fmt.Errorf("nominatim: %w", ErrLocationNotFound), want: "location_not_found"},
		{err: &EvaluationError{Stage: StageRouting, Err: ErrNoRouteFound}, want: "no_route_found"},
		{err: fmt.Errorf("osrm: %w: %w", ErrServiceUnavailable, errors.New("dial tcp")), want: "service_unavailable"},
		{err: errors.New("boom"), want: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestEvaluationErrorMessage(t *testing.T) {
	withLoc := &EvaluationError{Stage: StageGeocodeOrigin, Location: "Atlantis", Err: ErrLocationNotFound}
	assert.Equal(t, `geocode_origin "Atlantis": location not found`, withLoc.Error())
	assert.ErrorIs(t, withLoc, ErrLocationNotFound)

	noLoc := &EvaluationError{Stage: StageRouting, Err: ErrNoRouteFound}
	assert.Equal(t, "routing: no route found", noLoc.Error())
}
