package booking

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testCatalog() PriceCatalog {
	return PriceCatalog{
		PackagePrices: map[string]decimal.Decimal{
			"full_band": decimal.NewFromInt(25000),
			"brass":     decimal.NewFromInt(12000),
		},
		InstrumentRates: map[string]decimal.Decimal{
			"inst-1": decimal.NewFromInt(500),
		},
	}
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"inclusive of both endpoints", "2025-01-10", "2025-01-12", 3},
		{"single day", "2025-01-10", "2025-01-10", 1},
		{"end before start yields zero", "2025-01-12", "2025-01-10", 0},
		{"missing start", "", "2025-01-10", 0},
		{"missing end", "2025-01-10", "", 0},
		{"garbage input", "not-a-date", "2025-01-10", 0},
		{"across month boundary", "2025-01-30", "2025-02-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RentalDays(tt.start, tt.end); got != tt.want {
				t.Errorf("RentalDays(%q, %q) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestEstimateRental(t *testing.T) {
	req := Request{
		ServiceName: ServiceInstrumentRental,
		Options: ServiceOptions{
			Rental: &RentalOptions{
				InstrumentID: "inst-1",
				StartDate:    "2025-01-10",
				EndDate:      "2025-01-12",
				Purpose:      "school parade",
			},
		},
	}

	got := Estimate(req, testCatalog())
	if !got.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Estimate = %s, want 1500", got)
	}

	// Invalid range prices at zero, not an error
	req.Options.Rental.StartDate = "2025-01-12"
	req.Options.Rental.EndDate = "2025-01-10"
	if got := Estimate(req, testCatalog()); !got.IsZero() {
		t.Errorf("Estimate with inverted range = %s, want 0", got)
	}

	// Unknown instrument prices at zero
	req.Options.Rental = &RentalOptions{InstrumentID: "missing", StartDate: "2025-01-10", EndDate: "2025-01-12"}
	if got := Estimate(req, testCatalog()); !got.IsZero() {
		t.Errorf("Estimate with unknown instrument = %s, want 0", got)
	}
}

func TestEstimateBandGig(t *testing.T) {
	req := Request{
		ServiceName: ServiceBandGig,
		Options: ServiceOptions{
			BandGig: &BandGigOptions{PackageKey: "full_band"},
		},
	}

	if got := Estimate(req, testCatalog()); !got.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("Estimate = %s, want 25000", got)
	}

	// No package selected yet
	req.Options.BandGig.PackageKey = ""
	if got := Estimate(req, testCatalog()); !got.IsZero() {
		t.Errorf("Estimate without package = %s, want 0", got)
	}
}

func TestEstimateArrangement(t *testing.T) {
	tests := []struct {
		name   string
		pieces int
		want   int64
	}{
		{"two pieces", 2, 6000},
		{"single piece", 1, 3000},
		{"zero defaults to one piece", 0, 3000},
		{"negative defaults to one piece", -3, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{
				ServiceName: ServiceMusicArrangement,
				Options:     ServiceOptions{Arrangement: &ArrangementOptions{NumPieces: tt.pieces}},
			}
			if got := Estimate(req, testCatalog()); !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("Estimate(%d pieces) = %s, want %d", tt.pieces, got, tt.want)
			}
		})
	}
}

func TestEstimateWorkshopAndDefault(t *testing.T) {
	workshop := Request{ServiceName: ServiceMusicWorkshop, Options: ServiceOptions{Workshop: &WorkshopOptions{}}}
	if got := Estimate(workshop, testCatalog()); !got.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("workshop Estimate = %s, want 5000", got)
	}

	unknown := Request{ServiceName: "Nonexistent Service"}
	if got := Estimate(unknown, testCatalog()); !got.IsZero() {
		t.Errorf("unknown service Estimate = %s, want 0", got)
	}

	unselected := Request{}
	if got := Estimate(unselected, testCatalog()); !got.IsZero() {
		t.Errorf("unselected service Estimate = %s, want 0", got)
	}
}

// Calling the calculator twice with identical inputs yields identical
// results and leaves the catalog untouched.
func TestEstimateIdempotent(t *testing.T) {
	catalog := testCatalog()
	req := Request{
		ServiceName: ServiceInstrumentRental,
		Options: ServiceOptions{
			Rental: &RentalOptions{InstrumentID: "inst-1", StartDate: "2025-03-01", EndDate: "2025-03-05"},
		},
	}

	first := Estimate(req, catalog)
	second := Estimate(req, catalog)

	if !first.Equal(second) {
		t.Errorf("repeated Estimate differs: %s vs %s", first, second)
	}

	if !catalog.InstrumentRates["inst-1"].Equal(decimal.NewFromInt(500)) {
		t.Error("Estimate mutated the catalog")
	}
}
