package entity

import (
	"band-booking/internal/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reservation is the persisted counterpart of a submitted booking request.
// Service-specific fields are nullable; only the columns belonging to the
// reservation's service are set, the rest stay NULL.
type Reservation struct {
	Base
	Code           string          `db:"code"`
	RequestID      uuid.UUID       `db:"request_id"` // client idempotency key
	UserID         uuid.UUID       `db:"user_id"`
	ServiceName    string          `db:"service_name"`
	CustomerName   string          `db:"customer_name"`
	CustomerEmail  string          `db:"customer_email"`
	CustomerPhone  *string         `db:"customer_phone"`
	Location       string          `db:"location"`
	Date           string          `db:"date"` // the calendar date the reservation occupies
	StartTime      *string         `db:"start_time"`
	EndTime        *string         `db:"end_time"`
	EstimatedValue decimal.Decimal `db:"estimated_value"`
	Status         booking.Status  `db:"status"`
	Notes          *string         `db:"notes"`

	// Band gig options
	PackageKey *string `db:"package_key"`

	// Arrangement options
	NumPieces *int `db:"num_pieces"`
}

// CalendarRecord projects the reservation for the availability index.
func (r *Reservation) CalendarRecord() booking.CalendarRecord {
	return booking.CalendarRecord{
		Date:   r.Date,
		Status: r.Status,
	}
}
