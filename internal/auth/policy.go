package auth

import "donorlink/internal/model"

// Action is the kind of operation being authorized.
type Action int

const (
	// ActionManageUser covers updating or deleting a user record.
	ActionManageUser Action = iota
	// ActionManageDonation covers deleting a donation.
	ActionManageDonation
	// ActionAdminOnly covers operations reserved for admins.
	ActionAdminOnly
)

// Authorize decides whether the caller may perform action on a resource owned
// by ownerID. Admins may do anything; owners may manage their own user record
// and their own donations.
func Authorize(caller *Claims, action Action, ownerID uint) bool {
	if caller == nil {
		return false
	}
	if caller.User.Role == model.RoleAdmin {
		return true
	}
	switch action {
	case ActionManageUser, ActionManageDonation:
		return caller.User.ID == ownerID
	default:
		return false
	}
}
