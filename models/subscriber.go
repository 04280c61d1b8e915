package models

import (
	"time"
)

// Subscriber states.
const (
	SubscriberActive       = "subscribed"
	SubscriberUnsubscribed = "unsubscribed"
)

type Subscriber struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	Status           string    `json:"status" gorm:"not null;type:varchar(20);default:'subscribed'"`
	UnsubscribeToken string    `json:"-" gorm:"uniqueIndex;not null"`
}
