package response

import (
	"time"

	"band-booking/internal/booking"
	"band-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	ServiceName    string          `json:"service_name"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	Location       string          `json:"location"`
	Date           string          `json:"date"`
	StartTime      *string         `json:"start_time,omitempty"`
	EndTime        *string         `json:"end_time,omitempty"`
	PackageKey     *string         `json:"package_key,omitempty"`
	NumPieces      *int            `json:"num_pieces,omitempty"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Status         booking.Status  `json:"status"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// DayAvailabilityResponse reports the derived status of a single date.
type DayAvailabilityResponse struct {
	Date   string            `json:"date"`
	Status booking.DayStatus `json:"status"`
}

// CalendarResponse lists the derived status for every date in the
// requested window that has at least one non-terminal reservation.
type CalendarResponse struct {
	From string                    `json:"from"`
	To   string                    `json:"to"`
	Days []DayAvailabilityResponse `json:"days"`
}

type EstimateResponse struct {
	ServiceName    string          `json:"service_name"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
}

// Helper converters
func ReservationToResponse(res *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             res.ID.String(),
		Code:           res.Code,
		ServiceName:    res.ServiceName,
		CustomerName:   res.CustomerName,
		CustomerEmail:  res.CustomerEmail,
		Location:       res.Location,
		Date:           res.Date,
		StartTime:      res.StartTime,
		EndTime:        res.EndTime,
		PackageKey:     res.PackageKey,
		NumPieces:      res.NumPieces,
		EstimatedValue: res.EstimatedValue,
		Status:         res.Status,
		Notes:          res.Notes,
		CreatedAt:      res.CreatedAt,
	}
}
