package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Course struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null;type:varchar(160)"`
	Description string         `json:"description" gorm:"type:text"`
	Level       string         `json:"level" gorm:"type:varchar(20)"` // "beginner", "intermediate", "advanced"
	Topics      pq.StringArray `json:"topics" gorm:"type:text[]"`
	PriceCents  int64          `json:"price_cents" gorm:"not null;default:0"`
	IsFree      bool           `json:"is_free" gorm:"default:false"`
	IsPublished bool           `json:"is_published" gorm:"default:false;index"`
	Lessons     []Lesson       `json:"lessons" gorm:"foreignKey:CourseID"`
}

type Lesson struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	CourseID        uint      `json:"course_id" gorm:"not null;index"`
	Position        int       `json:"position" gorm:"not null;default:0"`
	Title           string    `json:"title" gorm:"not null"`
	Body            string    `json:"body" gorm:"type:text"`
	DurationMinutes int       `json:"duration_minutes"`
	IsPreview       bool      `json:"is_preview" gorm:"default:false"` // viewable without enrollment
}
