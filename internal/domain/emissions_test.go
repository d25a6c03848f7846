package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeEmissions(t *testing.T) {
	tests := []struct {
		name      string
		distanceM float64
		vc        VehicleClass
		want      float64
	}{
		{name: "diesel 500km", distanceM: 500_000, vc: VehicleDiesel, want: 75_000},
		{name: "gasoline 500km", distanceM: 500_000, vc: VehicleGasoline, want: 60_000},
		{name: "electric 500km", distanceM: 500_000, vc: VehicleElectric, want: 0},
		{name: "zero distance", distanceM: 0, vc: VehicleDiesel, want: 0},
		{name: "fractional km", distanceM: 1_500, vc: VehicleGasoline, want: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeEmissions(tt.distanceM, tt.vc), 1e-9)
		})
	}
}

func TestComputeEmissionsElectricIsAlwaysZero(t *testing.T) {
	for _, d := range []float64{0, 1, 999.5, 42_195, 3_000_000} {
		assert.Zero(t, ComputeEmissions(d, VehicleElectric), "distance %v", d)
	}
}

func TestComputeEmissionsMonotonicInDistance(t *testing.T) {
	distances := []float64{0, 10, 1_000, 25_000, 500_000, 2_150_000}

	for _, vc := range VehicleClasses() {
		prev := -1.0
		for _, d := range distances {
			got := ComputeEmissions(d, vc)
			assert.GreaterOrEqual(t, got, prev, "%s at %v m", vc, d)
			prev = got
		}
	}
}

func TestComputeEmissionsPanicsOnNegativeDistance(t *testing.T) {
	assert.Panics(t, func() { ComputeEmissions(-1, VehicleDiesel) })
}

func TestComputeEmissionsPanicsOnUnknownClass(t *testing.T) {
	assert.Panics(t, func() { ComputeEmissions(1000, VehicleClass("steam")) })
}
