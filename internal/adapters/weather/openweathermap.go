package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"route-evaluation-service/internal/adapters/httpx"
	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/platform/obs"

	"go.uber.org/zap"
)

type currentWeatherResponse struct {
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// OpenWeatherMapProvider reads current conditions from the OpenWeatherMap
// "current weather" endpoint in metric units.
type OpenWeatherMapProvider struct {
	client  *httpx.Client
	baseURL string
	apiKey  string
	log     *zap.Logger
}

func NewOpenWeatherMapProvider(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		client:  httpx.NewClient(timeout, nil),
		baseURL: baseURL,
		apiKey:  apiKey,
		log:     log,
	}
}

func (o *OpenWeatherMapProvider) CurrentWeather(
	ctx context.Context,
	point domain.Coordinate,
) (_ domain.WeatherSnapshot, err error) {
	defer obs.Time(ctx, o.log, "openweathermap.CurrentWeather")(&err)

	req, err := o.client.NewRequest(ctx, http.MethodGet, o.baseURL+"/data/2.5/weather", nil)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("current weather: %w", err)
	}

	q := req.URL.Query()
	q.Set("lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(point.Lon, 'f', -1, 64))
	q.Set("appid", o.apiKey)
	q.Set("units", "metric")
	req.URL.RawQuery = q.Encode()

	var decoded currentWeatherResponse
	if err := o.client.DoJSON(req, &decoded); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("current weather: %w", err)
	}

	if decoded.Main.Temp == nil || decoded.Main.Humidity == nil {
		return domain.WeatherSnapshot{}, errors.New("current weather: response missing temperature or humidity")
	}
	if len(decoded.Weather) == 0 {
		return domain.WeatherSnapshot{}, errors.New("current weather: response missing description")
	}

	return domain.NewWeatherSnapshot(
		*decoded.Main.Temp,
		int(math.Round(*decoded.Main.Humidity)),
		decoded.Weather[0].Description,
	), nil
}
