package geocode

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"route-evaluation-service/internal/adapters/httpx"
	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/platform/obs"

	"go.uber.org/zap"
)

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimResolver implements CoordinateResolver using the OpenStreetMap
// Nominatim search API. Only the first match is used.
type NominatimResolver struct {
	client  *httpx.Client
	baseURL string
	log     *zap.Logger
}

// Nominatim's usage policy requires an identifying User-Agent.
func NewNominatimResolver(baseURL, userAgent string, timeout time.Duration, log *zap.Logger) *NominatimResolver {
	return &NominatimResolver{
		client:  httpx.NewClient(timeout, map[string]string{"User-Agent": userAgent}),
		baseURL: baseURL,
		log:     log,
	}
}

func (n *NominatimResolver) Resolve(
	ctx context.Context,
	placeName string,
	countryHint string,
) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, n.log, "nominatim.Resolve")(&err)

	text := searchText(placeName, countryHint)
	op := fmt.Sprintf("nominatim resolve %q", text)

	if normalize(placeName) == "" {
		return domain.Coordinate{}, notFound(op)
	}

	req, err := n.client.NewRequest(ctx, http.MethodGet, n.baseURL+"/search", nil)
	if err != nil {
		return domain.Coordinate{}, unavailable(op, err)
	}

	q := req.URL.Query()
	q.Set("q", text)
	q.Set("format", "json")
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	var places []nominatimPlace
	if err := n.client.DoJSON(req, &places); err != nil {
		return domain.Coordinate{}, unavailable(op, err)
	}

	if len(places) == 0 {
		return domain.Coordinate{}, notFound(op)
	}

	first := places[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return domain.Coordinate{}, unavailable(op, fmt.Errorf("parse lat %q: %w", first.Lat, err))
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return domain.Coordinate{}, unavailable(op, fmt.Errorf("parse lon %q: %w", first.Lon, err))
	}

	c := domain.Coordinate{Lat: lat, Lon: lon}
	if err := c.Validate(); err != nil {
		return domain.Coordinate{}, unavailable(op, err)
	}

	n.log.Debug("resolved place",
		zap.String("query", text),
		zap.String("match", first.DisplayName),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
	)

	return c, nil
}
