package request

type CreateInstrumentRequest struct {
	Name              string  `json:"name" validate:"required,min=2,max=100"`
	PricePerDay       float64 `json:"price_per_day" validate:"required,gt=0"`
	AvailableQuantity int     `json:"available_quantity" validate:"min=0"`
	Condition         *string `json:"condition,omitempty"`
	SerialNumber      *string `json:"serial_number,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

type UpdateInstrumentRequest struct {
	Name              string  `json:"name" validate:"required,min=2,max=100"`
	PricePerDay       float64 `json:"price_per_day" validate:"required,gt=0"`
	AvailableQuantity int     `json:"available_quantity" validate:"min=0"`
	Condition         *string `json:"condition,omitempty"`
	SerialNumber      *string `json:"serial_number,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

type CreateMaintenanceRequest struct {
	Description string  `json:"description" validate:"required,min=3"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	PerformedAt string  `json:"performed_at" validate:"required,datetime=2006-01-02"`
}
