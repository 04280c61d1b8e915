package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/models"
	"github.com/mfghub/api-go/utils"
)

// ValidationController answers form-time availability probes so
// submitters see slug collisions before they submit.
type ValidationController struct {
	DB *gorm.DB
}

func NewValidationController(db *gorm.DB) *ValidationController {
	return &ValidationController{DB: db}
}

func (vc *ValidationController) ValidateSlug(c *gin.Context) {
	item, ok := models.NewSubmittable(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown content type"})
		return
	}

	slug := utils.Slugify(c.Param("slug"))

	var count int64
	if err := vc.DB.Model(item).Where("slug = ?", slug).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check slug"})
		return
	}

	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"available": false,
			"slug":      slug,
			"message":   "Slug is already taken",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available": true,
		"slug":      slug,
	})
}
