package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/config"
	"github.com/mfghub/api-go/controllers"
	"github.com/mfghub/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r2Config := config.GetR2Config()
	r2Client := config.NewR2Client(r2Config)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	contributorController := controllers.NewContributorController(db)
	adminController := controllers.NewAdminController(db)
	contentController := controllers.NewContentController(db)
	calculatorController := controllers.NewCalculatorController(r2Client, r2Config)
	courseController := controllers.NewCourseController(db)
	billingController := controllers.NewBillingController(db, config.GetStripeConfig())
	newsletterController := controllers.NewNewsletterController(db, config.GetMailerConfig())
	validationController := controllers.NewValidationController(db)
	uploadController := controllers.NewUploadController(r2Client, r2Config)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
		public.POST("/refresh-token", authController.RefreshToken)

		SetupContentRoutes(public, contentController, validationController)
		SetupCalculatorRoutes(public, calculatorController)
		SetupNewsletterRoutes(public, newsletterController)

		public.GET("/courses", courseController.ListCourses)
		public.GET("/courses/:slug", courseController.GetCourse)
		public.POST("/webhooks/stripe", billingController.StripeWebhook)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)

		SetupContributorRoutes(protected, contributorController)
		SetupCourseRoutes(protected, courseController, billingController)
		SetupUploadRoutes(protected, uploadController)
	}

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware(db))
	{
		SetupAdminRoutes(admin, adminController, newsletterController)
	}
}
