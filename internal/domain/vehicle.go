package domain

import (
	"fmt"
	"strings"
)

// VehicleClass is the closed set of vehicle types an evaluation can be run for.
type VehicleClass string

const (
	VehicleElectric VehicleClass = "electric"
	VehicleGasoline VehicleClass = "gasoline"
	VehicleDiesel   VehicleClass = "diesel"
)

// VehicleClasses lists every supported class in a stable order.
func VehicleClasses() []VehicleClass {
	return []VehicleClass{VehicleElectric, VehicleGasoline, VehicleDiesel}
}

// ParseVehicleClass maps user input to a VehicleClass.
// Unknown values are rejected with ErrInvalidConfiguration.
func ParseVehicleClass(s string) (VehicleClass, error) {
	vc := VehicleClass(strings.ToLower(strings.TrimSpace(s)))
	if !vc.Valid() {
		return "", fmt.Errorf("vehicle class %q: %w", s, ErrInvalidConfiguration)
	}
	return vc, nil
}

func (v VehicleClass) Valid() bool {
	switch v {
	case VehicleElectric, VehicleGasoline, VehicleDiesel:
		return true
	}
	return false
}

// EmissionFactor returns grams of CO2 emitted per kilometer.
// Callers must validate the class first; an unknown class is a programming error.
func (v VehicleClass) EmissionFactor() float64 {
	switch v {
	case VehicleElectric:
		return 0
	case VehicleGasoline:
		return 120
	case VehicleDiesel:
		return 150
	default:
		panic(fmt.Sprintf("domain: emission factor requested for unknown vehicle class %q", string(v)))
	}
}

func (v VehicleClass) String() string { return string(v) }
