package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mfghub/api-go/controllers"
)

func SetupContributorRoutes(protected *gin.RouterGroup, contributorController *controllers.ContributorController) {
	contributor := protected.Group("/contributor")
	{
		contributor.POST("/:type", contributorController.CreateSubmission)
		contributor.GET("/:type", contributorController.ListMySubmissions)
		contributor.GET("/:type/:id", contributorController.GetSubmission)
		contributor.PATCH("/:type/:id", contributorController.UpdateSubmission)
		contributor.DELETE("/:type/:id", contributorController.DeleteSubmission)
	}
}
