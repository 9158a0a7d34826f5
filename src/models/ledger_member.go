package models

import "github.com/google/uuid"

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// LedgerMember is a membership row joined with the member's profile email.
// Email is "unknown user" when the profile row no longer exists.
type LedgerMember struct {
	LedgerID uuid.UUID `json:"ledger_id"`
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	Email    string    `json:"email"`
}
