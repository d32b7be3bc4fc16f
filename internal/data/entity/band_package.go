package entity

import "github.com/shopspring/decimal"

// BandPackage is a fixed-price tier for band-gig services, unique by Key.
// Only active packages are offered to bookers.
type BandPackage struct {
	BaseSimple
	Key    string          `db:"key"`
	Label  string          `db:"label"`
	Price  decimal.Decimal `db:"price"`
	Active bool            `db:"active"`
}
