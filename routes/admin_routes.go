package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mfghub/api-go/controllers"
)

func SetupAdminRoutes(admin *gin.RouterGroup, adminController *controllers.AdminController, newsletterController *controllers.NewsletterController) {
	content := admin.Group("/content")
	{
		content.GET("/:type", adminController.ListReviewQueue)
		content.PATCH("/:type/:id", adminController.ReviewSubmission)
	}

	admin.GET("/reviews", adminController.ListReviewLog)

	users := admin.Group("/users")
	{
		users.GET("", adminController.ListUsers)
		users.POST("/:id/role", adminController.UpdateUserRole)
	}

	admin.GET("/newsletter/subscribers", newsletterController.ListSubscribers)
}
