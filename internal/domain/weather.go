package domain

// Description used when weather could not be obtained.
const WeatherUnavailable = "N/A"

// Point-in-time weather reading at a coordinate.
// Nil numeric fields mean the value is unavailable, which is a valid state.
type WeatherSnapshot struct {
	TemperatureC *float64
	HumidityPct  *int
	Description  string
}

func UnavailableWeather() WeatherSnapshot {
	return WeatherSnapshot{Description: WeatherUnavailable}
}

func NewWeatherSnapshot(temperatureC float64, humidityPct int, description string) WeatherSnapshot {
	return WeatherSnapshot{
		TemperatureC: &temperatureC,
		HumidityPct:  &humidityPct,
		Description:  description,
	}
}

// Available reports whether the snapshot carries numeric readings.
func (w WeatherSnapshot) Available() bool {
	return w.TemperatureC != nil && w.HumidityPct != nil
}
