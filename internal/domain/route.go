package domain

// Ordered path polyline of a single route. Non-empty when the route exists.
type RouteGeometry []Coordinate

// Represents one alternative path between an origin and a destination.
// EmissionsGrams is derived from DistanceMeters and a VehicleClass through
// WithEmissions and is never set independently.
// A RouteCandidate is immutable once built.
type RouteCandidate struct {
	Geometry        RouteGeometry
	DistanceMeters  float64
	DurationSeconds float64
	EmissionsGrams  float64
}

// WithEmissions returns a copy of the candidate with EmissionsGrams computed
// for the given vehicle class.
func (r RouteCandidate) WithEmissions(vc VehicleClass) RouteCandidate {
	out := r
	out.EmissionsGrams = ComputeEmissions(r.DistanceMeters, vc)
	return out
}

// Represents the output of a single evaluation run.
// Candidates keep the routing collaborator's order (primary route first).
// The value is owned by the caller once returned; nothing else retains it.
type RouteEvaluationResult struct {
	Origin             Coordinate
	Destination        Coordinate
	VehicleClass       VehicleClass
	Candidates         []RouteCandidate
	OriginWeather      WeatherSnapshot
	DestinationWeather WeatherSnapshot
}

// LowestEmissions returns the index of the candidate with the smallest
// emissions, preferring the earlier candidate on ties. It returns -1 when
// there are no candidates.
func (r RouteEvaluationResult) LowestEmissions() int {
	best := -1
	for i, c := range r.Candidates {
		if best == -1 || c.EmissionsGrams < r.Candidates[best].EmissionsGrams {
			best = i
		}
	}
	return best
}

// Fastest returns the index of the candidate with the shortest duration,
// preferring the earlier candidate on ties. It returns -1 when there are no
// candidates.
func (r RouteEvaluationResult) Fastest() int {
	best := -1
	for i, c := range r.Candidates {
		if best == -1 || c.DurationSeconds < r.Candidates[best].DurationSeconds {
			best = i
		}
	}
	return best
}
