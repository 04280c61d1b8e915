package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mfghub/api-go/controllers"
)

func SetupCalculatorRoutes(public *gin.RouterGroup, calculatorController *controllers.CalculatorController) {
	calculators := public.Group("/calculators")
	{
		calculators.POST("/oee", calculatorController.ComputeOEE)
		calculators.POST("/oee/report", calculatorController.OEEReport)
		calculators.POST("/roi", calculatorController.ComputeROI)
		calculators.POST("/roi/report", calculatorController.ROIReport)
	}
}
