package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"route-evaluation-service/internal/adapters/httpx"
	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/platform/obs"

	"go.uber.org/zap"
)

type directionsRequest struct {
	Coordinates       [][]float64       `json:"coordinates"`
	AlternativeRoutes alternativeRoutes `json:"alternative_routes"`
}

type alternativeRoutes struct {
	TargetCount  int     `json:"target_count"`
	WeightFactor float64 `json:"weight_factor"`
	ShareFactor  float64 `json:"share_factor"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

type orsErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ORS directions error codes for "no routable point" and "route not found".
var orsNoRouteCodes = map[int]bool{
	2009: true,
	2010: true,
}

// ORSProvider implements RouteProvider using OpenRouteService directions
// with alternative routes enabled.
//
// The provider is safe for concurrent use.
type ORSProvider struct {
	client  *httpx.Client
	baseURL string
	profile string
	log     *zap.Logger
}

func NewORSProvider(baseURL, apiKey, profile string, timeout time.Duration, log *zap.Logger) (*ORSProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ORS api key is empty: %w", domain.ErrInvalidConfiguration)
	}

	return &ORSProvider{
		client:  httpx.NewClient(timeout, map[string]string{"Authorization": apiKey}),
		baseURL: baseURL,
		profile: profile,
		log:     log,
	}, nil
}

func (o *ORSProvider) Routes(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
) (_ []domain.RouteCandidate, err error) {
	defer obs.Time(ctx, o.log, "ors.Routes")(&err)

	op := fmt.Sprintf("ors routes %s -> %s", lonLat(origin), lonLat(destination))
	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{origin.CoordsToList(), destination.CoordsToList()},
		AlternativeRoutes: alternativeRoutes{
			TargetCount:  3,
			WeightFactor: 1.4,
			ShareFactor:  0.6,
		},
	})
	if err != nil {
		return nil, unavailable(op, fmt.Errorf("marshal directions request: %w", err))
	}

	req, err := o.client.NewRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, unavailable(op, err)
	}

	var decoded directionsResponse
	if err := o.client.DoJSON(req, &decoded); err != nil {
		var se *httpx.StatusError
		if errors.As(err, &se) {
			var body orsErrorResponse
			if json.Unmarshal([]byte(se.Body), &body) == nil && orsNoRouteCodes[body.Error.Code] {
				return nil, noRoute(op, body.Error.Message)
			}
		}
		return nil, unavailable(op, err)
	}

	if len(decoded.Features) == 0 {
		return nil, noRoute(op, "")
	}

	out := make([]domain.RouteCandidate, 0, len(decoded.Features))
	for i, f := range decoded.Features {
		s := f.Properties.Summary
		c, err := toCandidate(f.Geometry.Coordinates, s.Distance, s.Duration)
		if err != nil {
			return nil, unavailable(op, fmt.Errorf("route #%d: %w", i, err))
		}
		out = append(out, c)
	}

	return out, nil
}
