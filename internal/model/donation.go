package model

import "time"

// UnassignedRecipient is the sentinel recipient id for donations that have
// not been matched yet.
const UnassignedRecipient uint = 0

// Donation links one donor to at most one recipient.
type Donation struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Category      string     `json:"category" gorm:"size:255"`
	Details       string     `json:"details" gorm:"type:text"`
	Amount        int        `json:"amount"`
	PickupDate    *time.Time `json:"pickup_date"`
	PickupAddress string     `json:"pickup_address" gorm:"size:512"`

	// Donor is always the authenticated creator's id, never client-supplied.
	Donor     uint `json:"donor" gorm:"not null;index"`
	Recipient uint `json:"recipient" gorm:"default:0;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
