package handlers

import (
	"errors"
	"net/http"

	"route-evaluation-service/internal/api/dto"
	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/platform/obs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

// statusForKind maps a domain error kind to the HTTP status returned for it.
func statusForKind(kind string) int {
	switch kind {
	case "invalid_configuration":
		return http.StatusBadRequest
	case "location_not_found":
		return http.StatusNotFound
	case "no_route_found":
		return http.StatusUnprocessableEntity
	case "service_unavailable":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeEvaluationError is the single place evaluation failures become HTTP
// responses. Upstream details stay in the log for 5xx responses.
func writeEvaluationError(c *gin.Context, log *zap.Logger, err error) {
	kind := domain.KindOf(err)
	status := statusForKind(kind)

	res := dto.ErrorResponse{Error: err.Error(), Kind: kind}

	var evalErr *domain.EvaluationError
	if errors.As(err, &evalErr) {
		res.Stage = string(evalErr.Stage)
		res.Location = evalErr.Location
	}

	if status >= http.StatusInternalServerError {
		log.Error("evaluation failed",
			zap.String("req_id", obs.RequestID(c.Request.Context())),
			zap.String("kind", kind),
			zap.String("stage", res.Stage),
			zap.Error(err),
		)
		switch status {
		case http.StatusServiceUnavailable:
			res.Error = "upstream service unavailable"
		default:
			res.Error = "internal server error"
		}
	}

	c.JSON(status, res)
}
