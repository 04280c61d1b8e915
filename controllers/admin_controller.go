package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/models"
	"github.com/mfghub/api-go/moderation"
	"github.com/mfghub/api-go/utils"
)

// AdminController serves the review console: the pending queue, the
// publish/reject decision, the review audit log, and user role management.
type AdminController struct {
	DB *gorm.DB
}

type ReviewRequest struct {
	Status      moderation.Status `json:"status" binding:"required"`
	ReviewNotes string            `json:"review_notes"`
}

type RoleChangeRequest struct {
	Role string `json:"role" binding:"required"`
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// ListReviewQueue returns the rows awaiting review for one kind. A status
// filter widens it to any lifecycle state for back-office browsing.
func (ac *AdminController) ListReviewQueue(c *gin.Context) {
	item, ok := models.NewSubmittable(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown content type"})
		return
	}
	page, pageSize, offset := paginationParams(c)

	status := c.DefaultQuery("status", string(moderation.StatusPendingReview))
	if !moderation.ValidStatus(moderation.Status(status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
		return
	}

	query := ac.DB.Model(item).Where("status = ?", status)

	var total int64
	query.Count(&total)

	items := sliceOf(item)
	if err := query.Order("created_at ASC").Offset(offset).Limit(pageSize).Find(items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching review queue"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       items,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// ReviewSubmission applies the admin decision: pending_review -> published
// or rejected. The status change, the reviewer metadata and (for posts)
// the public-visibility pair land in one conditional UPDATE scoped by the
// required source state; a row that already left pending_review is
// untouched and the loser of a concurrent review gets an error instead of
// a partial write.
func (ac *AdminController) ReviewSubmission(c *gin.Context) {
	admin := utils.GetUser(c)
	item, ok := models.NewSubmittable(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown content type"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !moderation.ReviewOutcome(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review status must be published or rejected"})
		return
	}

	if err := ac.DB.First(item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if !item.Policy().CanTransition(item.GetStatus(), req.Status, moderation.ActorAdmin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Cannot review a submission in %s state", item.GetStatus())})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":       string(req.Status),
		"reviewer_id":  admin.UserID,
		"reviewed_at":  now,
		"review_notes": req.ReviewNotes,
		"updated_at":   now,
	}
	if _, isPost := item.(*models.Post); isPost {
		// The blog visibility flag moves with status, in the same statement.
		if req.Status == moderation.StatusPublished {
			updates["is_public"] = true
			updates["published_at"] = now
		} else {
			updates["is_public"] = false
			updates["published_at"] = nil
		}
	}

	tx := ac.DB.Begin()

	result := tx.Model(item).
		Where("status = ?", string(moderation.StatusPendingReview)).
		Updates(updates)
	if result.Error != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review submission"})
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Submission is no longer pending review"})
		return
	}

	logEntry := models.ReviewLog{
		ReviewerID:  admin.UserID,
		ContentKind: item.ContentKind(),
		ContentID:   item.PrimaryID(),
		Decision:    req.Status,
		Notes:       req.ReviewNotes,
	}
	if err := tx.Create(&logEntry).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record review"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit review"})
		return
	}

	ac.DB.First(item, "id = ?", item.PrimaryID())
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: item, Message: "Review recorded"})
}

// ListReviewLog returns the audit trail of review decisions, newest first.
func (ac *AdminController) ListReviewLog(c *gin.Context) {
	page, pageSize, offset := paginationParams(c)

	query := ac.DB.Model(&models.ReviewLog{})
	if kind := c.Query("type"); kind != "" {
		query = query.Where("content_kind = ?", kind)
	}

	var total int64
	query.Count(&total)

	var entries []models.ReviewLog
	if err := query.Preload("Reviewer").Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching review log"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       entries,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// ListUsers returns users with their roles for the admin console.
func (ac *AdminController) ListUsers(c *gin.Context) {
	page, pageSize, offset := paginationParams(c)

	var total int64
	ac.DB.Model(&models.User{}).Count(&total)

	var users []models.User
	if err := ac.DB.Preload("Role").Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       users,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// UpdateUserRole changes a user's role. An admin may not demote
// themselves; that always leaves the row unchanged.
func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	admin := utils.GetUser(c)

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req RoleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ValidateRoleChange(admin.UserID, uint(targetID), req.Role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var role models.Role
	if err := ac.DB.Where("name = ?", req.Role).First(&role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Role not available"})
		return
	}

	if err := ac.DB.Model(&user).Update("role_id", role.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Role updated"})
}

// ValidateRoleChange enforces the role-change rules: the role must exist
// and an admin cannot remove their own admin role.
func ValidateRoleChange(callerID, targetID uint, newRole string) error {
	if !models.ValidRole(newRole) {
		return fmt.Errorf("unknown role %q", newRole)
	}
	if callerID == targetID && newRole != models.RoleAdmin {
		return fmt.Errorf("admins cannot demote themselves")
	}
	return nil
}
