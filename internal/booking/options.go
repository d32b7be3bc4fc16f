// Package booking holds the reservation engine: availability derivation,
// price estimation and submit-eligibility rules. Everything in this package
// is a pure function over its inputs; persistence and transport live in the
// repository and adaptor layers.
package booking

// Bookable service names as they appear in the service catalog.
const (
	ServiceBandGig          = "Band Gigs"
	ServiceInstrumentRental = "Instrument Rentals"
	ServiceMusicArrangement = "Music Arrangement"
	ServiceMusicWorkshop    = "Music Workshops"
)

// Customer identifies who the reservation is for.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// BandGigOptions selects a fixed-price package for a gig or parade event.
type BandGigOptions struct {
	PackageKey string
	EventDate  string // YYYY-MM-DD
	StartTime  string
	EndTime    string
}

// RentalOptions covers an instrument rental over an inclusive date range.
type RentalOptions struct {
	InstrumentID string
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
	Purpose      string
}

// ArrangementOptions requests custom arrangement of one or more pieces.
type ArrangementOptions struct {
	NumPieces int
}

// WorkshopOptions carries no extra fields; workshops are fixed price.
type WorkshopOptions struct{}

// ServiceOptions is a tagged union: exactly one variant is populated and it
// must match the request's service name. Options for previously selected
// services are never carried over.
type ServiceOptions struct {
	BandGig     *BandGigOptions
	Rental      *RentalOptions
	Arrangement *ArrangementOptions
	Workshop    *WorkshopOptions
}

// Request is the engine's output payload, built from form state and
// submitted once. The backend assigns id/status/createdAt on acceptance.
type Request struct {
	ServiceName string
	Customer    Customer
	Location    string
	Notes       string
	Options     ServiceOptions
}
