package response

import (
	"time"

	"band-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type RentalRequestResponse struct {
	ID             string                     `json:"id"`
	Kind           entity.RentalKind          `json:"kind"`
	InstrumentID   string                     `json:"instrument_id"`
	InstrumentName string                     `json:"instrument_name,omitempty"`
	CustomerName   string                     `json:"customer_name"`
	CustomerEmail  string                     `json:"customer_email"`
	StartDate      string                     `json:"start_date"`
	EndDate        string                     `json:"end_date"`
	Purpose        string                     `json:"purpose"`
	EstimatedValue decimal.Decimal            `json:"estimated_value"`
	Status         entity.RentalRequestStatus `json:"status"`
	CreatedAt      time.Time                  `json:"created_at"`
}

// Helper converters
func RentalRequestToResponse(req *entity.RentalRequest, instrument *entity.Instrument) RentalRequestResponse {
	resp := RentalRequestResponse{
		ID:             req.ID.String(),
		Kind:           req.Kind,
		InstrumentID:   req.InstrumentID.String(),
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Purpose:        req.Purpose,
		EstimatedValue: req.EstimatedValue,
		Status:         req.Status,
		CreatedAt:      req.CreatedAt,
	}

	if instrument != nil {
		resp.InstrumentName = instrument.Name
	}

	return resp
}
