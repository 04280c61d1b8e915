package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mfghub/api-go/controllers"
)

func SetupCourseRoutes(protected *gin.RouterGroup, courseController *controllers.CourseController, billingController *controllers.BillingController) {
	protected.POST("/courses/:slug/enroll", courseController.Enroll)
	protected.POST("/courses/:slug/checkout", billingController.CreateCheckoutSession)
	protected.GET("/me/enrollments", courseController.MyEnrollments)
	protected.POST("/enrollments/:id/progress", courseController.UpdateProgress)
}
