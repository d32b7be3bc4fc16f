package request

type ApplyMembershipRequest struct {
	Instrument string `json:"instrument" validate:"required,min=2,max=100"`
	Motivation string `json:"motivation" validate:"required,min=10"`
}

type MembershipDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
