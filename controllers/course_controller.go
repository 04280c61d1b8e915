package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/models"
	"github.com/mfghub/api-go/utils"
)

// CourseController serves the course catalog, enrollment and lesson-level
// progress tracking. Paid courses enroll through the billing controller;
// this one only enrolls into free courses directly.
type CourseController struct {
	DB *gorm.DB
}

type ProgressRequest struct {
	LessonID uint `json:"lesson_id" binding:"required"`
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

func (cc *CourseController) ListCourses(c *gin.Context) {
	page, pageSize, offset := paginationParams(c)

	query := cc.DB.Model(&models.Course{}).Where("is_published = ?", true)
	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}

	var total int64
	query.Count(&total)

	var courses []models.Course
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching courses"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       courses,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

func (cc *CourseController) GetCourse(c *gin.Context) {
	var course models.Course
	err := cc.DB.
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("is_published = ?", true).
		First(&course, "slug = ?", c.Param("slug")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: course})
}

// Enroll creates an active enrollment in a free course. Paid courses go
// through checkout; asking here gets a pointer in that direction.
func (cc *CourseController) Enroll(c *gin.Context) {
	user := utils.GetUser(c)

	var course models.Course
	if err := cc.DB.Where("is_published = ?", true).First(&course, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	if !course.IsFree && course.PriceCents > 0 {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "This course requires checkout"})
		return
	}

	var existing models.Enrollment
	if cc.DB.Where("user_id = ? AND course_id = ?", user.UserID, course.ID).First(&existing).Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already enrolled in this course"})
		return
	}

	enrollment := models.Enrollment{
		UserID:   user.UserID,
		CourseID: course.ID,
		Status:   models.EnrollmentActive,
	}
	if err := cc.DB.Create(&enrollment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enroll"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: enrollment, Message: "Enrolled"})
}

func (cc *CourseController) MyEnrollments(c *gin.Context) {
	user := utils.GetUser(c)

	var enrollments []models.Enrollment
	if err := cc.DB.Preload("Course").Where("user_id = ?", user.UserID).Order("updated_at DESC").Find(&enrollments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching enrollments"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: enrollments})
}

// UpdateProgress marks one lesson complete and recomputes the percentage.
// Marking the same lesson twice is a no-op.
func (cc *CourseController) UpdateProgress(c *gin.Context) {
	user := utils.GetUser(c)

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var enrollment models.Enrollment
	if err := cc.DB.First(&enrollment, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
		return
	}

	if enrollment.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own progress"})
		return
	}

	if enrollment.Status != models.EnrollmentActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enrollment is not active"})
		return
	}

	var lesson models.Lesson
	if err := cc.DB.Where("course_id = ?", enrollment.CourseID).First(&lesson, req.LessonID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lesson does not belong to this course"})
		return
	}

	for _, done := range enrollment.CompletedLessons {
		if uint(done) == lesson.ID {
			c.JSON(http.StatusOK, StandardResponse{Success: true, Data: enrollment})
			return
		}
	}
	enrollment.CompletedLessons = append(enrollment.CompletedLessons, int64(lesson.ID))

	var lessonCount int64
	cc.DB.Model(&models.Lesson{}).Where("course_id = ?", enrollment.CourseID).Count(&lessonCount)

	if lessonCount > 0 {
		enrollment.ProgressPercent = float64(len(enrollment.CompletedLessons)) / float64(lessonCount) * 100
	}
	if lessonCount > 0 && int64(len(enrollment.CompletedLessons)) >= lessonCount {
		now := time.Now()
		enrollment.CompletedAt = &now
	}

	if err := cc.DB.Save(&enrollment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: enrollment})
}
