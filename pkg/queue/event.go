package queue

// RentalRequestedEvent is published when an instrument rental request is
// queued for approval. It carries enough information for downstream
// consumers (approval dashboard, notifications) without querying the
// primary database.
type RentalRequestedEvent struct {
	RequestID      string `json:"request_id"`
	Kind           string `json:"kind"`
	UserID         string `json:"user_id"`
	InstrumentID   string `json:"instrument_id"`
	InstrumentName string `json:"instrument_name"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Purpose        string `json:"purpose"`
	EstimatedValue string `json:"estimated_value"`
	RequestedAt    string `json:"requested_at"`
}
