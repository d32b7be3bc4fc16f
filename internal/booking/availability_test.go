package booking

import "testing"

func TestStatusFor(t *testing.T) {
	records := []CalendarRecord{
		{Date: "2025-06-01", Status: StatusPending},
		{Date: "2025-06-01", Status: StatusApproved},
		{Date: "2025-06-02", Status: StatusPending},
		{Date: "2025-06-03", Status: StatusCancelled},
		{Date: "2025-06-04", Status: StatusRejected},
		{Date: "2025-06-05", Status: StatusPaid},
	}

	tests := []struct {
		name string
		date string
		want DayStatus
	}{
		{"approved dominates pending", "2025-06-01", DayApproved},
		{"pending only", "2025-06-02", DayPending},
		{"cancelled does not block", "2025-06-03", DayAvailable},
		{"rejected does not block", "2025-06-04", DayAvailable},
		{"paid blocks like approved", "2025-06-05", DayApproved},
		{"no records at all", "2025-06-09", DayAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(records, tt.date); got != tt.want {
				t.Errorf("StatusFor(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestStatusForEmptyRecordSet(t *testing.T) {
	if got := StatusFor(nil, "2025-06-01"); got != DayAvailable {
		t.Errorf("StatusFor(nil) = %q, want available", got)
	}
}
