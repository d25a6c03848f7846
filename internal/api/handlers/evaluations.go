package handlers

import (
	"context"
	"net/http"

	"route-evaluation-service/internal/api/dto"
	"route-evaluation-service/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Evaluator is satisfied by *services.RouteEvaluator.
type Evaluator interface {
	Evaluate(ctx context.Context, originName, destinationName string, vc domain.VehicleClass) (domain.RouteEvaluationResult, error)
}

type EvaluationHandler struct {
	Evaluator Evaluator
	Log       *zap.Logger
}

// Create runs one evaluation for the posted origin, destination and vehicle class.
func (h *EvaluationHandler) Create(c *gin.Context) {
	var req dto.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json body: origin, destination and vehicle_class are required")
		return
	}

	vc, err := domain.ParseVehicleClass(req.VehicleClass)
	if err != nil {
		writeEvaluationError(c, h.Log, &domain.EvaluationError{Stage: domain.StageValidate, Err: err})
		return
	}

	res, err := h.Evaluator.Evaluate(c.Request.Context(), req.Origin, req.Destination, vc)
	if err != nil {
		writeEvaluationError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromResult(res))
}
