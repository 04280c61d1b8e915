package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Enrollment states. Paid courses sit in pending_payment until the Stripe
// webhook confirms the checkout session.
const (
	EnrollmentActive         = "active"
	EnrollmentPendingPayment = "pending_payment"
)

type Enrollment struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	UserID           uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	User             User           `json:"-" gorm:"foreignKey:UserID"`
	CourseID         uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Course           Course         `json:"course" gorm:"foreignKey:CourseID"`
	Status           string         `json:"status" gorm:"not null;type:varchar(20);default:'active'"`
	CompletedLessons pq.Int64Array  `json:"completed_lessons" gorm:"type:bigint[]"`
	ProgressPercent  float64        `json:"progress_percent" gorm:"not null;default:0"`
	CompletedAt      *time.Time     `json:"completed_at"`
	StripeSessionID  string         `json:"-" gorm:"index"`
}
