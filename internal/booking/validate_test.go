package booking

import "testing"

func baseRequest(service string) Request {
	return Request{
		ServiceName: service,
		Customer: Customer{
			Name:  "Ayu Lestari",
			Email: "ayu@example.com",
			Phone: "08123456789",
		},
		Location: "Town Square",
	}
}

func TestValidateUniversalFields(t *testing.T) {
	req := baseRequest(ServiceMusicWorkshop)
	req.Options.Workshop = &WorkshopOptions{}

	if !Valid(req) {
		t.Fatalf("complete workshop request should be valid, got %v", Validate(req))
	}

	tests := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{"missing name", func(r *Request) { r.Customer.Name = "" }, "name"},
		{"missing email", func(r *Request) { r.Customer.Email = "  " }, "email"},
		{"missing location", func(r *Request) { r.Location = "" }, "location"},
		{"missing service", func(r *Request) { r.ServiceName = "" }, "service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := baseRequest(ServiceMusicWorkshop)
			r.Options.Workshop = &WorkshopOptions{}
			tt.mutate(&r)

			errs := Validate(r)
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("expected error on %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateBandGig(t *testing.T) {
	req := baseRequest(ServiceBandGig)
	req.Options.BandGig = &BandGigOptions{
		PackageKey: "full_band",
		EventDate:  "2025-08-17",
		StartTime:  "09:00",
		EndTime:    "12:00",
	}

	if !Valid(req) {
		t.Fatalf("complete gig request should be valid, got %v", Validate(req))
	}

	for _, field := range []string{"package", "event_date", "start_time", "end_time"} {
		r := req
		opts := *req.Options.BandGig
		switch field {
		case "package":
			opts.PackageKey = ""
		case "event_date":
			opts.EventDate = ""
		case "start_time":
			opts.StartTime = ""
		case "end_time":
			opts.EndTime = ""
		}
		r.Options.BandGig = &opts

		if Valid(r) {
			t.Errorf("gig request without %s should be invalid", field)
		}
	}

	// No options at all
	req.Options.BandGig = nil
	if Valid(req) {
		t.Error("gig request without options should be invalid")
	}
}

func TestValidateRental(t *testing.T) {
	req := baseRequest(ServiceInstrumentRental)
	req.Options.Rental = &RentalOptions{
		InstrumentID: "inst-1",
		StartDate:    "2025-01-10",
		EndDate:      "2025-01-12",
		Purpose:      "school parade",
	}

	if !Valid(req) {
		t.Fatalf("complete rental request should be valid, got %v", Validate(req))
	}

	r := req
	opts := *req.Options.Rental
	opts.Purpose = ""
	r.Options.Rental = &opts
	if Valid(r) {
		t.Error("rental request without purpose should be invalid")
	}
}

func TestValidateArrangement(t *testing.T) {
	req := baseRequest(ServiceMusicArrangement)
	req.Options.Arrangement = &ArrangementOptions{NumPieces: 2}

	if !Valid(req) {
		t.Fatalf("arrangement request should be valid, got %v", Validate(req))
	}

	req.Options.Arrangement.NumPieces = 0
	if Valid(req) {
		t.Error("arrangement request with zero pieces should be invalid")
	}
}

// A request naming a service the engine does not recognize is never
// valid, regardless of every other field being filled.
func TestValidateUnknownServiceFailsClosed(t *testing.T) {
	req := baseRequest("Nonexistent Service")
	req.Options = ServiceOptions{
		BandGig:     &BandGigOptions{PackageKey: "full_band", EventDate: "2025-08-17", StartTime: "09:00", EndTime: "12:00"},
		Rental:      &RentalOptions{InstrumentID: "inst-1", StartDate: "2025-01-10", EndDate: "2025-01-12", Purpose: "x"},
		Arrangement: &ArrangementOptions{NumPieces: 3},
		Workshop:    &WorkshopOptions{},
	}

	if Valid(req) {
		t.Error("unknown service must fail closed")
	}
}
