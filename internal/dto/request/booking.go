package request

import "band-booking/internal/booking"

// CreateReservationRequest carries the full form state. Only the option
// fields belonging to the selected service are read; the converter below
// drops everything else so a previously selected service can never leak
// stale values into the submission.
type CreateReservationRequest struct {
	RequestID     string  `json:"request_id" validate:"required,uuid4"`
	ServiceName   string  `json:"service_name" validate:"required"`
	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	Location      string  `json:"location" validate:"required"`
	Date          string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string `json:"notes,omitempty"`

	// Band gig fields
	PackageKey string `json:"package_key,omitempty"`
	EventDate  string `json:"event_date,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`

	// Instrument rental fields
	InstrumentID string `json:"instrument_id,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Purpose      string `json:"purpose,omitempty"`

	// Music arrangement fields
	NumPieces int `json:"num_pieces,omitempty"`
}

// ToBookingRequest builds the tagged-union engine request, populating
// exactly the variant matching the selected service.
func (r *CreateReservationRequest) ToBookingRequest() booking.Request {
	req := booking.Request{
		ServiceName: r.ServiceName,
		Customer: booking.Customer{
			Name:  r.CustomerName,
			Email: r.CustomerEmail,
		},
		Location: r.Location,
	}

	if r.CustomerPhone != nil {
		req.Customer.Phone = *r.CustomerPhone
	}
	if r.Notes != nil {
		req.Notes = *r.Notes
	}

	switch r.ServiceName {
	case booking.ServiceBandGig:
		req.Options.BandGig = &booking.BandGigOptions{
			PackageKey: r.PackageKey,
			EventDate:  r.EventDate,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
		}
	case booking.ServiceInstrumentRental:
		req.Options.Rental = &booking.RentalOptions{
			InstrumentID: r.InstrumentID,
			StartDate:    r.StartDate,
			EndDate:      r.EndDate,
			Purpose:      r.Purpose,
		}
	case booking.ServiceMusicArrangement:
		pieces := r.NumPieces
		if pieces < 1 {
			pieces = 1
		}
		req.Options.Arrangement = &booking.ArrangementOptions{NumPieces: pieces}
	case booking.ServiceMusicWorkshop:
		req.Options.Workshop = &booking.WorkshopOptions{}
	}

	return req
}

type EstimateRequest struct {
	ServiceName  string `json:"service_name" validate:"required"`
	PackageKey   string `json:"package_key,omitempty"`
	InstrumentID string `json:"instrument_id,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	NumPieces    int    `json:"num_pieces,omitempty"`
}

type CancelReservationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected paid"`
}

type RentalDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
