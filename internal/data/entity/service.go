package entity

import "github.com/shopspring/decimal"

// Service is immutable reference data describing a bookable offering and
// which extra fields its reservations carry.
type Service struct {
	BaseSimple
	Name               string           `db:"name"`
	RequiresPackage    bool             `db:"requires_package"`
	RequiresInstrument bool             `db:"requires_instrument"`
	RequiresPieceCount bool             `db:"requires_piece_count"`
	BasePrice          *decimal.Decimal `db:"base_price"`
}
