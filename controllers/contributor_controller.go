package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/mfghub/api-go/models"
	"github.com/mfghub/api-go/moderation"
	"github.com/mfghub/api-go/utils"
)

// ContributorController serves the owner-scoped CRUD surface for all five
// submittable content kinds. One implementation, parameterized by the kind
// registry, instead of a guard block per kind.
type ContributorController struct {
	DB *gorm.DB
}

func NewContributorController(db *gorm.DB) *ContributorController {
	return &ContributorController{DB: db}
}

func (cc *ContributorController) resolveKind(c *gin.Context) (models.Submittable, bool) {
	item, ok := models.NewSubmittable(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown content type"})
		return nil, false
	}
	return item, true
}

// CreateSubmission creates a new row as draft or pending_review, at the
// submitter's choice. Owner and review metadata are set server-side no
// matter what the payload carries.
func (cc *ContributorController) CreateSubmission(c *gin.Context) {
	user := utils.GetUser(c)
	item, ok := cc.resolveKind(c)
	if !ok {
		return
	}

	if err := c.ShouldBindJSON(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := item.GetStatus()
	if status == "" {
		status = moderation.StatusDraft
	}
	if !moderation.ValidInitial(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New submissions must be draft or pending_review"})
		return
	}

	item.SetStatus(status)
	item.SetOwner(user.UserID)
	item.ClearReview()
	item.ResetManaged()
	if item.GetSlug() == "" {
		item.SetSlug(utils.Slugify(item.SlugSource()))
	}

	if err := cc.DB.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "A submission with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     item.PrimaryID(),
		"slug":   item.GetSlug(),
		"status": item.GetStatus(),
	})
}

// UpdateSubmission is the owner edit path, covering both field edits and
// the owner-side status transitions (draft -> pending_review, and for
// posts rejected -> draft/pending_review). The write is one conditional
// UPDATE scoped by id, owner and editable source states, so a row that
// moved on under review is left untouched.
func (cc *ContributorController) UpdateSubmission(c *gin.Context) {
	user := utils.GetUser(c)
	item, ok := cc.resolveKind(c)
	if !ok {
		return
	}

	if err := cc.DB.First(item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if item.OwnerID() != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own submissions"})
		return
	}

	policy := item.Policy()
	if !policy.OwnerEditable(item.GetStatus()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Submissions in %s state cannot be edited", item.GetStatus())})
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates, restated, err := cc.editableUpdates(item, policy, payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(updates) == 0 {
		if restated {
			// Restating the current status changes nothing.
			c.JSON(http.StatusOK, StandardResponse{Success: true, Data: item})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No editable fields in request"})
		return
	}
	updates["updated_at"] = time.Now()

	result := cc.DB.Model(item).
		Where(fmt.Sprintf("%s = ?", item.OwnerColumn()), user.UserID).
		Where("status IN ?", statusStrings(policy.OwnerEditableStates())).
		Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "A submission with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		return
	}
	if result.RowsAffected == 0 {
		// The row changed state between the read and the write.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Submission is no longer editable"})
		return
	}

	cc.DB.First(item, "id = ?", item.PrimaryID())
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: item})
}

// DeleteSubmission removes an owned row. Published rows are never
// deletable through this API regardless of who asks.
func (cc *ContributorController) DeleteSubmission(c *gin.Context) {
	user := utils.GetUser(c)
	item, ok := cc.resolveKind(c)
	if !ok {
		return
	}

	if err := cc.DB.First(item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if item.OwnerID() != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own submissions"})
		return
	}

	if !item.Policy().OwnerDeletable(item.GetStatus()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Published content cannot be deleted"})
		return
	}

	result := cc.DB.
		Where(fmt.Sprintf("%s = ?", item.OwnerColumn()), user.UserID).
		Where("status <> ?", string(moderation.StatusPublished)).
		Delete(item)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete submission"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Submission is no longer deletable"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Submission deleted"})
}

// ListMySubmissions returns the caller's own rows for one kind, any state.
func (cc *ContributorController) ListMySubmissions(c *gin.Context) {
	user := utils.GetUser(c)
	item, ok := cc.resolveKind(c)
	if !ok {
		return
	}
	page, pageSize, offset := paginationParams(c)

	query := cc.DB.Model(item).Where(fmt.Sprintf("%s = ?", item.OwnerColumn()), user.UserID)
	if status := c.Query("status"); status != "" {
		if !moderation.ValidStatus(moderation.Status(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	items := sliceOf(item)
	if err := query.Order("updated_at DESC").Offset(offset).Limit(pageSize).Find(items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching submissions"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       items,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// GetSubmission returns a single owned row; admins may read any row.
func (cc *ContributorController) GetSubmission(c *gin.Context) {
	user := utils.GetUser(c)
	item, ok := cc.resolveKind(c)
	if !ok {
		return
	}

	if err := cc.DB.First(item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if item.OwnerID() != user.UserID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own submissions"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: item})
}

// editableUpdates filters a PATCH payload down to the kind's whitelisted
// columns and validates a requested status change against the transition
// table. Unknown keys are dropped, not errors, so clients may PATCH the
// representation they previously fetched. restated reports a valid
// restatement of the current status, which the caller treats as a no-op
// rather than an empty request.
func (cc *ContributorController) editableUpdates(item models.Submittable, policy moderation.Policy, payload map[string]interface{}) (updates map[string]interface{}, restated bool, err error) {
	allowed := make(map[string]bool, len(item.EditableColumns()))
	for _, col := range item.EditableColumns() {
		allowed[col] = true
	}
	arrays := make(map[string]bool, len(item.ArrayColumns()))
	for _, col := range item.ArrayColumns() {
		arrays[col] = true
	}

	updates = make(map[string]interface{})
	for key, value := range payload {
		if key == "status" {
			next := moderation.Status(fmt.Sprint(value))
			if !moderation.ValidStatus(next) {
				return nil, false, fmt.Errorf("unknown status %q", next)
			}
			if !policy.CanTransition(item.GetStatus(), next, moderation.ActorOwner) {
				return nil, false, fmt.Errorf("cannot move submission from %s to %s", item.GetStatus(), next)
			}
			if next != item.GetStatus() {
				updates["status"] = string(next)
			} else {
				restated = true
			}
			continue
		}
		if !allowed[key] {
			continue
		}
		if arrays[key] {
			updates[key] = toStringArray(value)
			continue
		}
		updates[key] = value
	}
	return updates, restated, nil
}

func toStringArray(value interface{}) pq.StringArray {
	raw, ok := value.([]interface{})
	if !ok {
		return pq.StringArray{}
	}
	out := make(pq.StringArray, 0, len(raw))
	for _, e := range raw {
		out = append(out, fmt.Sprint(e))
	}
	return out
}

func statusStrings(states []moderation.Status) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}

// sliceOf builds a *[]T for the concrete content type behind the
// interface, so list queries scan into typed rows.
func sliceOf(item models.Submittable) interface{} {
	return reflect.New(reflect.SliceOf(reflect.TypeOf(item).Elem())).Interface()
}
