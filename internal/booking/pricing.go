package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price constants. Workshops are priced by a literal constant rather than
// a catalog lookup; the arrangement rate is per piece.
var (
	ArrangementPricePerPiece = decimal.NewFromInt(3000)
	WorkshopPrice            = decimal.NewFromInt(5000)
)

// PriceCatalog supplies the reference prices the calculator needs:
// package prices keyed by package key and instrument per-day rates keyed
// by instrument ID.
type PriceCatalog struct {
	PackagePrices   map[string]decimal.Decimal
	InstrumentRates map[string]decimal.Decimal
}

// RentalDays returns the inclusive day count between two YYYY-MM-DD dates.
// An unparseable bound or end before start yields 0 rather than an error;
// the calculator treats that as "no valid range selected yet".
func RentalDays(startDate, endDate string) int {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0
	}

	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0
	}

	if end.Before(start) {
		return 0
	}

	return int(end.Sub(start).Hours()/24) + 1
}

// Estimate computes the estimated value of a request from its direct
// inputs. It is recomputed on every change, holds no state, and never
// errors: incomplete selections price at zero.
func Estimate(req Request, catalog PriceCatalog) decimal.Decimal {
	switch req.ServiceName {
	case ServiceBandGig:
		opts := req.Options.BandGig
		if opts == nil || opts.PackageKey == "" {
			return decimal.Zero
		}
		price, ok := catalog.PackagePrices[opts.PackageKey]
		if !ok {
			return decimal.Zero
		}
		return price

	case ServiceInstrumentRental:
		opts := req.Options.Rental
		if opts == nil || opts.InstrumentID == "" {
			return decimal.Zero
		}
		rate, ok := catalog.InstrumentRates[opts.InstrumentID]
		if !ok {
			return decimal.Zero
		}
		days := RentalDays(opts.StartDate, opts.EndDate)
		if days == 0 {
			return decimal.Zero
		}
		return rate.Mul(decimal.NewFromInt(int64(days)))

	case ServiceMusicArrangement:
		pieces := 1
		if opts := req.Options.Arrangement; opts != nil && opts.NumPieces >= 1 {
			pieces = opts.NumPieces
		}
		return ArrangementPricePerPiece.Mul(decimal.NewFromInt(int64(pieces)))

	case ServiceMusicWorkshop:
		return WorkshopPrice

	default:
		return decimal.Zero
	}
}
