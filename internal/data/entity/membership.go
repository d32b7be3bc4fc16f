package entity

import "github.com/google/uuid"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// MembershipApplication is a user's request to join the band as a member.
// Approval promotes the user's role from user to member.
type MembershipApplication struct {
	Base
	UserID     uuid.UUID         `db:"user_id"`
	Instrument *string           `db:"instrument"`
	Motivation string            `db:"motivation"`
	Status     ApplicationStatus `db:"status"`
}
