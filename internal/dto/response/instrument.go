package response

import (
	"time"

	"band-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

// InstrumentDetailResponse is the admin view, including archived and
// maintenance information the public catalog omits.
type InstrumentDetailResponse struct {
	InstrumentResponse
	IsArchived   bool                  `json:"is_archived"`
	Condition    *string               `json:"condition,omitempty"`
	SerialNumber *string               `json:"serial_number,omitempty"`
	Notes        *string               `json:"notes,omitempty"`
	Maintenance  []MaintenanceResponse `json:"maintenance,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type MaintenanceResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	PerformedAt string          `json:"performed_at"`
}

// Helper converters
func MaintenanceToResponse(record *entity.MaintenanceRecord) MaintenanceResponse {
	return MaintenanceResponse{
		ID:          record.ID.String(),
		Description: record.Description,
		Cost:        record.Cost,
		PerformedAt: record.PerformedAt.Format("2006-01-02"),
	}
}

func InstrumentToDetailResponse(instrument *entity.Instrument, records []*entity.MaintenanceRecord) InstrumentDetailResponse {
	resp := InstrumentDetailResponse{
		InstrumentResponse: InstrumentToResponse(instrument),
		IsArchived:         instrument.IsArchived,
		Condition:          instrument.Condition,
		SerialNumber:       instrument.SerialNumber,
		Notes:              instrument.Notes,
		CreatedAt:          instrument.CreatedAt,
		UpdatedAt:          instrument.UpdatedAt,
	}

	for _, record := range records {
		resp.Maintenance = append(resp.Maintenance, MaintenanceToResponse(record))
	}

	return resp
}
