package model

import "time"

// User roles. Unset roles default to donor.
const (
	RoleAdmin     = "admin"
	RoleRecipient = "recipient"
	RoleDonor     = "donor"
)

// User represents a donor, recipient, or admin account.
type User struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Role         string  `json:"role" gorm:"size:50;default:'donor';index"`
	Organization string  `json:"organization" gorm:"size:255;default:'Individual Donor'"`
	FirstName    string  `json:"first_name" gorm:"size:255"`
	LastName     string  `json:"last_name" gorm:"size:255"`
	Email        string  `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password     string  `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed in JSON
	Address      string  `json:"address" gorm:"size:255"`
	Phone        string  `json:"phone" gorm:"size:50"`
	City         string  `json:"city" gorm:"size:255"`
	State        string  `json:"state" gorm:"size:50"`
	Zip          int     `json:"zip"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	DonationType string  `json:"donation_type" gorm:"size:255"`
	Notes        string  `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations, resolved at query time.
	Donations []Donation `json:"donations,omitempty" gorm:"foreignKey:Donor"`
	Received  []Donation `json:"received,omitempty" gorm:"foreignKey:Recipient"`
}
