package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/models"
	"github.com/mfghub/api-go/moderation"
)

// ContentController serves the public read surface. Every query is scoped
// to published rows in one place, so nothing below published ever leaks
// into a listing or detail response.
type ContentController struct {
	DB *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db}
}

func publishedScope(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(moderation.StatusPublished))
}

// ListPublished returns the published rows of one kind, newest first.
func (cc *ContentController) ListPublished(c *gin.Context) {
	item, ok := models.NewSubmittable(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown content type"})
		return
	}
	page, pageSize, offset := paginationParams(c)

	query := publishedScope(cc.DB.Model(item))

	var total int64
	query.Count(&total)

	items := sliceOf(item)
	if err := query.Order("reviewed_at DESC").Offset(offset).Limit(pageSize).Find(items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching content"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       items,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// GetPublishedBySlug returns one published row. Drafts, pending and
// rejected rows are indistinguishable from missing ones here.
func (cc *ContentController) GetPublishedBySlug(c *gin.Context) {
	item, ok := models.NewSubmittable(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown content type"})
		return
	}

	if err := publishedScope(cc.DB).First(item, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: item})
}
