package api

import (
	"route-evaluation-service/internal/api/handlers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies.
// Handlers stay unaware of concrete adapters.
func NewRouter(evaluator handlers.Evaluator, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(log), recovery(log))

	evalHandler := &handlers.EvaluationHandler{Evaluator: evaluator, Log: log}

	r.GET("/health", handlers.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/vehicle-classes", handlers.VehicleClasses)
		v1.POST("/evaluations", evalHandler.Create)
	}

	return r
}
