package repository

import (
	"context"
	"fmt"

	"band-booking/internal/data/entity"
	"band-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, record *entity.MaintenanceRecord) error
	FindByInstrumentID(ctx context.Context, instrumentID uuid.UUID) ([]*entity.MaintenanceRecord, error)
}

type maintenanceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMaintenanceRepository(db database.PgxIface, log *zap.Logger) MaintenanceRepository {
	return &maintenanceRepository{
		db:  db,
		log: log.With(zap.String("repository", "maintenance")),
	}
}

func (r *maintenanceRepository) Create(ctx context.Context, record *entity.MaintenanceRecord) error {
	query := `
		INSERT INTO maintenance_records (id, instrument_id, description, cost, performed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.InstrumentID,
		record.Description,
		record.Cost,
		record.PerformedAt,
		record.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create maintenance record",
			zap.Error(err),
			zap.String("instrument_id", record.InstrumentID.String()),
		)
		return fmt.Errorf("create maintenance record: %w", err)
	}

	return nil
}

func (r *maintenanceRepository) FindByInstrumentID(ctx context.Context, instrumentID uuid.UUID) ([]*entity.MaintenanceRecord, error) {
	query := `
		SELECT id, instrument_id, description, cost, performed_at, created_at
		FROM maintenance_records
		WHERE instrument_id = $1
		ORDER BY performed_at DESC
	`

	rows, err := r.db.Query(ctx, query, instrumentID)
	if err != nil {
		r.log.Error("Failed to find maintenance records",
			zap.Error(err),
			zap.String("instrument_id", instrumentID.String()),
		)
		return nil, fmt.Errorf("find maintenance records for %s: %w", instrumentID.String(), err)
	}
	defer rows.Close()

	var records []*entity.MaintenanceRecord
	for rows.Next() {
		var record entity.MaintenanceRecord
		err := rows.Scan(
			&record.ID,
			&record.InstrumentID,
			&record.Description,
			&record.Cost,
			&record.PerformedAt,
			&record.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan maintenance row", zap.Error(err))
			return nil, fmt.Errorf("scan maintenance row: %w", err)
		}
		records = append(records, &record)
	}

	return records, nil
}
