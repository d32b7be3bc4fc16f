package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaintenanceRecord tracks repair and upkeep work on a physical instrument.
type MaintenanceRecord struct {
	BaseSimple
	InstrumentID uuid.UUID       `db:"instrument_id"`
	Description  string          `db:"description"`
	Cost         decimal.Decimal `db:"cost"`
	PerformedAt  time.Time       `db:"performed_at"`
}
