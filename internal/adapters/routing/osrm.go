package routing

import (
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

type osrmResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Routes  []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Geometry struct {
		Coordinates [][]float64 `json:"coordinates"`
	} `json:"geometry"`
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

// OSRM response codes meaning the inputs are valid but no path exists.
var osrmNoRouteCodes = map[string]bool{
	"NoRoute":   true,
	"NoSegment": true,
}

// OSRMProvider implements RouteProvider using the OSRM route service.
// Alternatives are always requested; OSRM's ordering is preserved.
type OSRMProvider struct {
	client  *httpx.Client
	baseURL string
	profile string
	log     *zap.Logger
}

func NewOSRMProvider(baseURL string, timeout time.Duration, log *zap.Logger) *OSRMProvider {
	return &OSRMProvider{
		client:  httpx.NewClient(timeout, nil),
		baseURL: baseURL,
		profile: "driving",
		log:     log,
	}
}

func (o *OSRMProvider) Routes(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
) (_ []domain.RouteCandidate, err error) {
	defer obs.Time(ctx, o.log, "osrm.Routes")(&err)

	op := fmt.Sprintf("osrm routes %s -> %s", lonLat(origin), lonLat(destination))
	endpoint := fmt.Sprintf("%s/route/v1/%s/%s;%s", o.baseURL, o.profile, lonLat(origin), lonLat(destination))

	req, err := o.client.NewRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, unavailable(op, err)
	}

	q := req.URL.Query()
	q.Set("overview", "full")
	q.Set("geometries", "geojson")
	q.Set("alternatives", "true")
	req.URL.RawQuery = q.Encode()

	var decoded osrmResponse
	if err := o.client.DoJSON(req, &decoded); err != nil {
		// OSRM reports unroutable inputs as 400 with a code in the body.
		var se *httpx.StatusError
		if errors.As(err, &se) {
			var body osrmResponse
			if json.Unmarshal([]byte(se.Body), &body) == nil && osrmNoRouteCodes[body.Code] {
				return nil, noRoute(op, body.Message)
			}
		}
		return nil, unavailable(op, err)
	}

	if osrmNoRouteCodes[decoded.Code] {
		return nil, noRoute(op, decoded.Message)
	}
	if decoded.Code != "" && decoded.Code != "Ok" {
		return nil, unavailable(op, fmt.Errorf("osrm code %q: %s", decoded.Code, decoded.Message))
	}

	if len(decoded.Routes) == 0 {
		return nil, noRoute(op, "")
	}

	out := make([]domain.RouteCandidate, 0, len(decoded.Routes))
	for i, r := range decoded.Routes {
		c, err := toCandidate(r.Geometry.Coordinates, r.Distance, r.Duration)
		if err != nil {
			return nil, unavailable(op, fmt.Errorf("route #%d: %w", i, err))
		}
		out = append(out, c)
	}

	return out, nil
}
