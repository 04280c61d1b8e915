package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mfghub/api-go/controllers"
)

func SetupNewsletterRoutes(public *gin.RouterGroup, newsletterController *controllers.NewsletterController) {
	newsletter := public.Group("/newsletter")
	{
		newsletter.POST("/subscribe", newsletterController.Subscribe)
		newsletter.GET("/unsubscribe", newsletterController.Unsubscribe)
	}
}
