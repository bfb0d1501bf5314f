package model

import "time"

type NewsletterStatus string

const (
	NewsletterStatusActive       NewsletterStatus = "active"
	NewsletterStatusUnsubscribed NewsletterStatus = "unsubscribed"
)

type NewsletterSubscription struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	Email        string           `json:"email" gorm:"not null;index"`
	Status       NewsletterStatus `json:"status" gorm:"size:30;default:'active'"`
	SubscribedAt time.Time        `json:"subscribed_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}
