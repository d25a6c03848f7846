package handlers

import (
	"net/http"

	"route-evaluation-service/internal/api/dto"
	"route-evaluation-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// VehicleClasses lists the supported classes with their emission factors.
func VehicleClasses(c *gin.Context) {
	classes := domain.VehicleClasses()

	res := dto.ListVehicleClassesResponse{
		VehicleClasses: make([]dto.VehicleClassResponse, 0, len(classes)),
	}
	for _, vc := range classes {
		res.VehicleClasses = append(res.VehicleClasses, dto.VehicleClassResponse{
			Name:       vc.String(),
			GramsPerKm: vc.EmissionFactor(),
		})
	}

	c.JSON(http.StatusOK, res)
}
