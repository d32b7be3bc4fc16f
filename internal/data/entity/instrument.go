package entity

import "github.com/shopspring/decimal"

type Instrument struct {
	Base
	Name              string          `db:"name"`
	PricePerDay       decimal.Decimal `db:"price_per_day"`
	AvailableQuantity int             `db:"available_quantity"`
	IsArchived        bool            `db:"is_archived"`
	Condition         *string         `db:"condition"`
	SerialNumber      *string         `db:"serial_number"`
	Notes             *string         `db:"notes"`
}

// Rentable is the eligibility invariant for offering an instrument to a
// renter.
func (i *Instrument) Rentable() bool {
	return i.AvailableQuantity > 0 && !i.IsArchived
}
