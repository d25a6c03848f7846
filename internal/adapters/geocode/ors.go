package geocode

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"route-evaluation-service/internal/adapters/httpx"
	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/platform/obs"

	"go.uber.org/zap"
)

type orsGeocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// ORSResolver implements CoordinateResolver using OpenRouteService
// (/geocode/search).
type ORSResolver struct {
	client  *httpx.Client
	baseURL string
	log     *zap.Logger
}

func NewORSResolver(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) (*ORSResolver, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ORS api key is empty: %w", domain.ErrInvalidConfiguration)
	}

	return &ORSResolver{
		client:  httpx.NewClient(timeout, map[string]string{"Authorization": apiKey}),
		baseURL: baseURL,
		log:     log,
	}, nil
}

func (o *ORSResolver) Resolve(
	ctx context.Context,
	placeName string,
	countryHint string,
) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, o.log, "ors.Resolve")(&err)

	text := searchText(placeName, countryHint)
	op := fmt.Sprintf("ors resolve %q", text)

	if normalize(placeName) == "" {
		return domain.Coordinate{}, notFound(op)
	}

	req, err := o.client.NewRequest(ctx, http.MethodGet, o.baseURL+"/geocode/search", nil)
	if err != nil {
		return domain.Coordinate{}, unavailable(op, err)
	}

	q := req.URL.Query()
	q.Set("text", text)
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()

	var decoded orsGeocodeResponse
	if err := o.client.DoJSON(req, &decoded); err != nil {
		return domain.Coordinate{}, unavailable(op, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinate{}, notFound(op)
	}

	c, err := domain.CoordinateFromLonLat(decoded.Features[0].Geometry.Coordinates)
	if err != nil {
		return domain.Coordinate{}, unavailable(op, err)
	}

	return c, nil
}
