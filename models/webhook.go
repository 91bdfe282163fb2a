package models

import "time"

// WebhookSubscription is plain CRUD state; delivery happens server-side in
// a separate function and is not handled here.
type WebhookSubscription struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	TargetURL string    `json:"targetUrl"`
	EventType string    `json:"eventType"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func (WebhookSubscription) TableName() string { return "webhook_subscriptions" }
