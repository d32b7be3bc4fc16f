package response

import (
	"time"

	"band-booking/internal/data/entity"
)

type MembershipApplicationResponse struct {
	ID         string                   `json:"id"`
	UserID     string                   `json:"user_id"`
	Instrument *string                  `json:"instrument,omitempty"`
	Motivation string                   `json:"motivation"`
	Status     entity.ApplicationStatus `json:"status"`
	CreatedAt  time.Time                `json:"created_at"`
}

// Helper converters
func MembershipToResponse(app *entity.MembershipApplication) MembershipApplicationResponse {
	return MembershipApplicationResponse{
		ID:         app.ID.String(),
		UserID:     app.UserID.String(),
		Instrument: app.Instrument,
		Motivation: app.Motivation,
		Status:     app.Status,
		CreatedAt:  app.CreatedAt,
	}
}
