package model

import "time"

// Activity log actions.
const (
	ActivityCreated = "created"
	ActivityUpdated = "updated"
	ActivityDeleted = "deleted"
)

// ActivityLog records a donation lifecycle event. All donation mutations are
// logged regardless of outcome; log writes never fail the mutation itself.
type ActivityLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	DonationID uint      `json:"donation_id" gorm:"not null;index"`
	ActorID    uint      `json:"actor_id" gorm:"not null;index"`
	Action     string    `json:"action" gorm:"size:20;not null;index"`
	Detail     string    `json:"detail,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
