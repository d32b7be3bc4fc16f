package booking

// Status is the lifecycle state of a persisted reservation. Only the
// approval workflow mutates it; the engine reads it to derive calendar
// availability.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusPaid      Status = "paid"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// DayStatus is the aggregate availability of a calendar date.
type DayStatus string

const (
	DayApproved  DayStatus = "approved"
	DayPending   DayStatus = "pending"
	DayAvailable DayStatus = "available"
)

// CalendarRecord is the minimal projection of a reservation the
// availability index needs.
type CalendarRecord struct {
	Date   string // YYYY-MM-DD
	Status Status
}

// Blocks reports whether a reservation in this status fully blocks its
// date. A paid reservation is an approved one that has settled, so it
// blocks too. There is no capacity model: one approved reservation blocks
// the whole date regardless of how many resources exist.
func (s Status) Blocks() bool {
	return s == StatusApproved || s == StatusPaid
}

// StatusFor returns the availability of a date given all records visible
// to the caller. Approved strictly dominates pending, which dominates
// available; checked in that order, first match wins.
func StatusFor(records []CalendarRecord, date string) DayStatus {
	for _, r := range records {
		if r.Date == date && r.Status.Blocks() {
			return DayApproved
		}
	}

	for _, r := range records {
		if r.Date == date && r.Status == StatusPending {
			return DayPending
		}
	}

	return DayAvailable
}
