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

type MembershipRepository interface {
	Create(ctx context.Context, application *entity.MembershipApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipApplication, error)
	FindPendingByUserID(ctx context.Context, userID uuid.UUID) (*entity.MembershipApplication, error)
	FindByStatus(ctx context.Context, status entity.ApplicationStatus) ([]*entity.MembershipApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error
}

type membershipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMembershipRepository(db database.PgxIface, log *zap.Logger) MembershipRepository {
	return &membershipRepository{
		db:  db,
		log: log.With(zap.String("repository", "membership")),
	}
}

const applicationColumns = `id, user_id, instrument, motivation, status, created_at, updated_at, deleted_at`

func scanApplication(row pgx.Row) (*entity.MembershipApplication, error) {
	var app entity.MembershipApplication
	err := row.Scan(
		&app.ID,
		&app.UserID,
		&app.Instrument,
		&app.Motivation,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
		&app.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *membershipRepository) Create(ctx context.Context, application *entity.MembershipApplication) error {
	query := `
		INSERT INTO membership_applications (id, user_id, instrument, motivation, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		application.ID,
		application.UserID,
		application.Instrument,
		application.Motivation,
		application.Status,
		application.CreatedAt,
		application.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create membership application",
			zap.Error(err),
			zap.String("user_id", application.UserID.String()),
		)
		return fmt.Errorf("create membership application: %w", err)
	}

	return nil
}

func (r *membershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM membership_applications WHERE id = $1 AND deleted_at IS NULL`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find application by ID",
			zap.Error(err),
			zap.String("application_id", id.String()),
		)
		return nil, fmt.Errorf("find application by ID %s: %w", id.String(), err)
	}

	return app, nil
}

func (r *membershipRepository) FindPendingByUserID(ctx context.Context, userID uuid.UUID) (*entity.MembershipApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM membership_applications
		WHERE user_id = $1 AND status = 'pending' AND deleted_at IS NULL
	`

	app, err := scanApplication(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find pending application",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find pending application for %s: %w", userID.String(), err)
	}

	return app, nil
}

func (r *membershipRepository) FindByStatus(ctx context.Context, status entity.ApplicationStatus) ([]*entity.MembershipApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM membership_applications
		WHERE status = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find applications by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find applications by status %s: %w", string(status), err)
	}
	defer rows.Close()

	var applications []*entity.MembershipApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			r.log.Error("Failed to scan application row", zap.Error(err))
			return nil, fmt.Errorf("scan application row: %w", err)
		}
		applications = append(applications, app)
	}

	return applications, nil
}

func (r *membershipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error {
	query := `UPDATE membership_applications SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update application status",
			zap.Error(err),
			zap.String("application_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update application %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("application %s not found", id.String())
	}

	return nil
}
