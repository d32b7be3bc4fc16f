package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RentalRequestStatus string

const (
	RentalRequestPending  RentalRequestStatus = "pending"
	RentalRequestApproved RentalRequestStatus = "approved"
	RentalRequestRejected RentalRequestStatus = "rejected"
)

// RentalRequest is an instrument rental waiting in the approval channel.
// Rentals do not go through the generic bookings flow; they are queued
// here and become effective only once an admin approves them.
type RentalRequest struct {
	Base
	Kind           RentalKind          `db:"kind"`
	UserID         uuid.UUID           `db:"user_id"`
	InstrumentID   uuid.UUID           `db:"instrument_id"`
	CustomerName   string              `db:"customer_name"`
	CustomerEmail  string              `db:"customer_email"`
	CustomerPhone  *string             `db:"customer_phone"`
	StartDate      string              `db:"start_date"`
	EndDate        string              `db:"end_date"`
	Purpose        string              `db:"purpose"`
	EstimatedValue decimal.Decimal     `db:"estimated_value"`
	Status         RentalRequestStatus `db:"status"`
}
