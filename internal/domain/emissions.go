package domain

import "fmt"

// ComputeEmissions returns grams of CO2 emitted travelling distanceM meters
// in a vehicle of the given class.
//
// distanceM must be non-negative and vc must be a valid class; violating
// either is a programming error and panics.
func ComputeEmissions(distanceM float64, vc VehicleClass) float64 {
	if distanceM < 0 {
		panic(fmt.Sprintf("domain: negative distance %v", distanceM))
	}
	return vc.EmissionFactor() * distanceM / 1000
}
