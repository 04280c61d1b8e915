package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mfghub/api-go/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	uploads := protected.Group("/uploads")
	{
		uploads.POST("/logo", uploadController.GetLogoUploadURL)
		uploads.POST("/confirm", uploadController.ConfirmUpload)
		uploads.DELETE("/*key", uploadController.DeleteFile)
	}
}
