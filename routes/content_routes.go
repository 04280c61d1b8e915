package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mfghub/api-go/controllers"
)

func SetupContentRoutes(public *gin.RouterGroup, contentController *controllers.ContentController, validationController *controllers.ValidationController) {
	content := public.Group("/content")
	{
		content.GET("/:type", contentController.ListPublished)
		content.GET("/:type/:slug", contentController.GetPublishedBySlug)
	}

	public.GET("/validate/slug/:type/:slug", validationController.ValidateSlug)
}
