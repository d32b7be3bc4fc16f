package repository

import (
	"context"
	"fmt"

	"band-booking/internal/data/entity"
	"band-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]*entity.Service, error)
	FindByName(ctx context.Context, name string) (*entity.Service, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	query := `
		SELECT id, name, requires_package, requires_instrument, requires_piece_count, base_price, created_at
		FROM services
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find services", zap.Error(err))
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var svc entity.Service
		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.RequiresPackage,
			&svc.RequiresInstrument,
			&svc.RequiresPieceCount,
			&svc.BasePrice,
			&svc.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &svc)
	}

	return services, nil
}

func (r *serviceRepository) FindByName(ctx context.Context, name string) (*entity.Service, error) {
	query := `
		SELECT id, name, requires_package, requires_instrument, requires_piece_count, base_price, created_at
		FROM services
		WHERE name = $1
	`

	var svc entity.Service
	err := r.db.QueryRow(ctx, query, name).Scan(
		&svc.ID,
		&svc.Name,
		&svc.RequiresPackage,
		&svc.RequiresInstrument,
		&svc.RequiresPieceCount,
		&svc.BasePrice,
		&svc.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find service %s: %w", name, err)
	}

	return &svc, nil
}
