package models

import (
	"time"

	"github.com/mfghub/api-go/moderation"
)

// ReviewLog is an append-only audit row for every admin review decision.
type ReviewLog struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	ReviewerID  uint              `json:"reviewer_id" gorm:"not null;index"`
	Reviewer    User              `json:"reviewer" gorm:"foreignKey:ReviewerID"`
	ContentKind string            `json:"content_kind" gorm:"not null;type:varchar(30);index"`
	ContentID   uint              `json:"content_id" gorm:"not null"`
	Decision    moderation.Status `json:"decision" gorm:"not null;type:varchar(20)"`
	Notes       string            `json:"notes"`
}
