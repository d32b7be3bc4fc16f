package booking

import "strings"

// Validate decides submit-eligibility for a request. It returns a
// field-to-message map for inline display; an empty map means the request
// may be submitted. Unknown services fail closed.
func Validate(req Request) map[string]string {
	errs := make(map[string]string)

	// Universal requirements, all services
	if strings.TrimSpace(req.ServiceName) == "" {
		errs["service"] = "Select a service"
	}
	if strings.TrimSpace(req.Customer.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(req.Customer.Email) == "" {
		errs["email"] = "Email is required"
	}
	if strings.TrimSpace(req.Location) == "" {
		errs["location"] = "Location is required"
	}

	switch req.ServiceName {
	case ServiceBandGig:
		opts := req.Options.BandGig
		if opts == nil {
			errs["options"] = "Package details are required"
			break
		}
		if strings.TrimSpace(opts.PackageKey) == "" {
			errs["package"] = "Select a package"
		}
		if strings.TrimSpace(opts.EventDate) == "" {
			errs["event_date"] = "Event date is required"
		}
		if strings.TrimSpace(opts.StartTime) == "" {
			errs["start_time"] = "Start time is required"
		}
		if strings.TrimSpace(opts.EndTime) == "" {
			errs["end_time"] = "End time is required"
		}

	case ServiceInstrumentRental:
		opts := req.Options.Rental
		if opts == nil {
			errs["options"] = "Rental details are required"
			break
		}
		if strings.TrimSpace(opts.InstrumentID) == "" {
			errs["instrument"] = "Select an instrument"
		}
		if strings.TrimSpace(opts.StartDate) == "" {
			errs["start_date"] = "Start date is required"
		}
		if strings.TrimSpace(opts.EndDate) == "" {
			errs["end_date"] = "End date is required"
		}
		if strings.TrimSpace(opts.Purpose) == "" {
			errs["purpose"] = "Purpose is required"
		}

	case ServiceMusicArrangement:
		opts := req.Options.Arrangement
		if opts == nil || opts.NumPieces <= 0 {
			errs["num_pieces"] = "Number of pieces must be at least 1"
		}

	case ServiceMusicWorkshop:
		// No extra fields

	default:
		// Fails closed: a service the engine does not recognize is never valid
		if _, ok := errs["service"]; !ok {
			errs["service"] = "Unknown service"
		}
	}

	return errs
}

// Valid is the single boolean the submit action keys off.
func Valid(req Request) bool {
	return len(Validate(req)) == 0
}
