package dto

import "route-evaluation-service/internal/domain"

type EvaluationRequest struct {
	Origin       string `json:"origin" binding:"required"`
	Destination  string `json:"destination" binding:"required"`
	VehicleClass string `json:"vehicle_class" binding:"required"`
}

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Numeric readings are null when weather could not be obtained.
type WeatherResponse struct {
	TemperatureC *float64 `json:"temperature_c"`
	HumidityPct  *int     `json:"humidity_pct"`
	Description  string   `json:"description"`
}

// Geometry is a list of [lat, lon] pairs.
type RouteResponse struct {
	Index           int          `json:"index"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	EmissionsGrams  float64      `json:"emissions_grams"`
	Geometry        [][2]float64 `json:"geometry"`
}

type EvaluationResponse struct {
	Origin               CoordinateResponse `json:"origin"`
	Destination          CoordinateResponse `json:"destination"`
	VehicleClass         string             `json:"vehicle_class"`
	Routes               []RouteResponse    `json:"routes"`
	LowestEmissionsRoute int                `json:"lowest_emissions_route"`
	FastestRoute         int                `json:"fastest_route"`
	OriginWeather        WeatherResponse    `json:"origin_weather"`
	DestinationWeather   WeatherResponse    `json:"destination_weather"`
}

type VehicleClassResponse struct {
	Name       string  `json:"name"`
	GramsPerKm float64 `json:"grams_per_km"`
}

type ListVehicleClassesResponse struct {
	VehicleClasses []VehicleClassResponse `json:"vehicle_classes"`
}

type ErrorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	Stage    string `json:"stage,omitempty"`
	Location string `json:"location,omitempty"`
}

// FromResult maps an evaluation result to its wire form.
func FromResult(res domain.RouteEvaluationResult) EvaluationResponse {
	routes := make([]RouteResponse, 0, len(res.Candidates))
	for i, c := range res.Candidates {
		geometry := make([][2]float64, 0, len(c.Geometry))
		for _, p := range c.Geometry {
			geometry = append(geometry, [2]float64{p.Lat, p.Lon})
		}

		routes = append(routes, RouteResponse{
			Index:           i,
			DistanceMeters:  c.DistanceMeters,
			DurationSeconds: c.DurationSeconds,
			EmissionsGrams:  c.EmissionsGrams,
			Geometry:        geometry,
		})
	}

	return EvaluationResponse{
		Origin:               CoordinateResponse{Lat: res.Origin.Lat, Lon: res.Origin.Lon},
		Destination:          CoordinateResponse{Lat: res.Destination.Lat, Lon: res.Destination.Lon},
		VehicleClass:         res.VehicleClass.String(),
		Routes:               routes,
		LowestEmissionsRoute: res.LowestEmissions(),
		FastestRoute:         res.Fastest(),
		OriginWeather:        fromWeather(res.OriginWeather),
		DestinationWeather:   fromWeather(res.DestinationWeather),
	}
}

func fromWeather(w domain.WeatherSnapshot) WeatherResponse {
	return WeatherResponse{
		TemperatureC: w.TemperatureC,
		HumidityPct:  w.HumidityPct,
		Description:  w.Description,
	}
}
