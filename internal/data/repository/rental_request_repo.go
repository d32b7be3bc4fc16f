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

type RentalRequestRepository interface {
	Create(ctx context.Context, request *entity.RentalRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalRequest, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RentalRequest, error)
	FindByStatus(ctx context.Context, status entity.RentalRequestStatus) ([]*entity.RentalRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RentalRequestStatus) error
}

type rentalRequestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRentalRequestRepository(db database.PgxIface, log *zap.Logger) RentalRequestRepository {
	return &rentalRequestRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental_request")),
	}
}

const rentalRequestColumns = `id, kind, user_id, instrument_id, customer_name, customer_email,
	customer_phone, start_date, end_date, purpose, estimated_value, status,
	created_at, updated_at, deleted_at`

func scanRentalRequest(row pgx.Row) (*entity.RentalRequest, error) {
	var req entity.RentalRequest
	err := row.Scan(
		&req.ID,
		&req.Kind,
		&req.UserID,
		&req.InstrumentID,
		&req.CustomerName,
		&req.CustomerEmail,
		&req.CustomerPhone,
		&req.StartDate,
		&req.EndDate,
		&req.Purpose,
		&req.EstimatedValue,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *rentalRequestRepository) Create(ctx context.Context, request *entity.RentalRequest) error {
	query := `
		INSERT INTO rental_requests (id, kind, user_id, instrument_id, customer_name, customer_email,
		                            customer_phone, start_date, end_date, purpose, estimated_value,
		                            status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		request.ID,
		request.Kind,
		request.UserID,
		request.InstrumentID,
		request.CustomerName,
		request.CustomerEmail,
		request.CustomerPhone,
		request.StartDate,
		request.EndDate,
		request.Purpose,
		request.EstimatedValue,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rental request",
			zap.Error(err),
			zap.String("user_id", request.UserID.String()),
			zap.String("instrument_id", request.InstrumentID.String()),
		)
		return fmt.Errorf("create rental request: %w", err)
	}

	return nil
}

func (r *rentalRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalRequest, error) {
	query := `SELECT ` + rentalRequestColumns + ` FROM rental_requests WHERE id = $1 AND deleted_at IS NULL`

	req, err := scanRentalRequest(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rental request by ID",
			zap.Error(err),
			zap.String("request_id", id.String()),
		)
		return nil, fmt.Errorf("find rental request by ID %s: %w", id.String(), err)
	}

	return req, nil
}

func (r *rentalRequestRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RentalRequest, error) {
	query := `
		SELECT ` + rentalRequestColumns + `
		FROM rental_requests
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find rental requests by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find rental requests by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectRentalRequests(rows, r.log)
}

func (r *rentalRequestRepository) FindByStatus(ctx context.Context, status entity.RentalRequestStatus) ([]*entity.RentalRequest, error) {
	query := `
		SELECT ` + rentalRequestColumns + `
		FROM rental_requests
		WHERE status = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find rental requests by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find rental requests by status %s: %w", string(status), err)
	}
	defer rows.Close()

	return collectRentalRequests(rows, r.log)
}

func (r *rentalRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RentalRequestStatus) error {
	query := `UPDATE rental_requests SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update rental request status",
			zap.Error(err),
			zap.String("request_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update rental request %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rental request %s not found", id.String())
	}

	return nil
}

func collectRentalRequests(rows pgx.Rows, log *zap.Logger) ([]*entity.RentalRequest, error) {
	var requests []*entity.RentalRequest
	for rows.Next() {
		req, err := scanRentalRequest(rows)
		if err != nil {
			log.Error("Failed to scan rental request row", zap.Error(err))
			return nil, fmt.Errorf("scan rental request row: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}
