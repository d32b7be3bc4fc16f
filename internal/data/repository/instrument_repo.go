package repository

import (
	"context"
	"fmt"

	"band-booking/internal/data/entity"
	"band-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InstrumentRepository interface {
	Create(ctx context.Context, instrument *entity.Instrument) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Instrument, error)
	FindAll(ctx context.Context, includeArchived bool) ([]*entity.Instrument, error)
	FindRentable(ctx context.Context) ([]*entity.Instrument, error)
	Update(ctx context.Context, instrument *entity.Instrument) error
	Archive(ctx context.Context, id uuid.UUID) error
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error
}

type instrumentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInstrumentRepository(db database.PgxIface, log *zap.Logger) InstrumentRepository {
	return &instrumentRepository{
		db:  db,
		log: log.With(zap.String("repository", "instrument")),
	}
}

const instrumentColumns = `id, name, price_per_day, available_quantity, is_archived, condition, serial_number, notes, created_at, updated_at, deleted_at`

func scanInstrument(row pgx.Row) (*entity.Instrument, error) {
	var inst entity.Instrument
	err := row.Scan(
		&inst.ID,
		&inst.Name,
		&inst.PricePerDay,
		&inst.AvailableQuantity,
		&inst.IsArchived,
		&inst.Condition,
		&inst.SerialNumber,
		&inst.Notes,
		&inst.CreatedAt,
		&inst.UpdatedAt,
		&inst.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *instrumentRepository) Create(ctx context.Context, instrument *entity.Instrument) error {
	query := `
		INSERT INTO instruments (id, name, price_per_day, available_quantity, is_archived,
		                        condition, serial_number, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		instrument.ID,
		instrument.Name,
		instrument.PricePerDay,
		instrument.AvailableQuantity,
		instrument.IsArchived,
		instrument.Condition,
		instrument.SerialNumber,
		instrument.Notes,
		instrument.CreatedAt,
		instrument.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create instrument",
			zap.Error(err),
			zap.String("name", instrument.Name),
		)
		return fmt.Errorf("create instrument %s: %w", instrument.Name, err)
	}

	return nil
}

func (r *instrumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Instrument, error) {
	query := `SELECT ` + instrumentColumns + ` FROM instruments WHERE id = $1 AND deleted_at IS NULL`

	inst, err := scanInstrument(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find instrument by ID",
			zap.Error(err),
			zap.String("instrument_id", id.String()),
		)
		return nil, fmt.Errorf("find instrument by ID %s: %w", id.String(), err)
	}

	return inst, nil
}

func (r *instrumentRepository) FindAll(ctx context.Context, includeArchived bool) ([]*entity.Instrument, error) {
	query := `SELECT ` + instrumentColumns + ` FROM instruments WHERE deleted_at IS NULL`
	if !includeArchived {
		query += ` AND is_archived = FALSE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find instruments", zap.Error(err))
		return nil, fmt.Errorf("find instruments: %w", err)
	}
	defer rows.Close()

	var instruments []*entity.Instrument
	for rows.Next() {
		inst, err := scanInstrument(rows)
		if err != nil {
			r.log.Error("Failed to scan instrument row", zap.Error(err))
			return nil, fmt.Errorf("scan instrument row: %w", err)
		}
		instruments = append(instruments, inst)
	}

	return instruments, nil
}

func (r *instrumentRepository) FindRentable(ctx context.Context) ([]*entity.Instrument, error) {
	query := `
		SELECT ` + instrumentColumns + `
		FROM instruments
		WHERE deleted_at IS NULL AND is_archived = FALSE AND available_quantity > 0
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find rentable instruments", zap.Error(err))
		return nil, fmt.Errorf("find rentable instruments: %w", err)
	}
	defer rows.Close()

	var instruments []*entity.Instrument
	for rows.Next() {
		inst, err := scanInstrument(rows)
		if err != nil {
			r.log.Error("Failed to scan instrument row", zap.Error(err))
			return nil, fmt.Errorf("scan instrument row: %w", err)
		}
		instruments = append(instruments, inst)
	}

	return instruments, nil
}

func (r *instrumentRepository) Update(ctx context.Context, instrument *entity.Instrument) error {
	query := `
		UPDATE instruments
		SET name = $2, price_per_day = $3, available_quantity = $4, is_archived = $5,
		    condition = $6, serial_number = $7, notes = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		instrument.ID,
		instrument.Name,
		instrument.PricePerDay,
		instrument.AvailableQuantity,
		instrument.IsArchived,
		instrument.Condition,
		instrument.SerialNumber,
		instrument.Notes,
		instrument.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update instrument",
			zap.Error(err),
			zap.String("instrument_id", instrument.ID.String()),
		)
		return fmt.Errorf("update instrument %s: %w", instrument.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("instrument %s not found", instrument.ID.String())
	}

	return nil
}

func (r *instrumentRepository) Archive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE instruments SET is_archived = TRUE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to archive instrument",
			zap.Error(err),
			zap.String("instrument_id", id.String()),
		)
		return fmt.Errorf("archive instrument %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("instrument %s not found", id.String())
	}

	return nil
}

// AdjustQuantity changes available stock by delta; the guard keeps the
// count from going negative when two approvals race.
func (r *instrumentRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	query := `
		UPDATE instruments
		SET available_quantity = available_quantity + $2, updated_at = NOW()
		WHERE id = $1 AND available_quantity + $2 >= 0
	`

	result, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		r.log.Error("Failed to adjust instrument quantity",
			zap.Error(err),
			zap.String("instrument_id", id.String()),
			zap.Int("delta", delta),
		)
		return fmt.Errorf("adjust instrument %s quantity: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("instrument %s not found or out of stock", id.String())
	}

	return nil
}
