package repository

import (
	"context"
	"fmt"

	"band-booking/internal/data/entity"
	"band-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BandPackageRepository interface {
	FindAllActive(ctx context.Context) ([]*entity.BandPackage, error)
	FindByKey(ctx context.Context, key string) (*entity.BandPackage, error)
}

type bandPackageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBandPackageRepository(db database.PgxIface, log *zap.Logger) BandPackageRepository {
	return &bandPackageRepository{
		db:  db,
		log: log.With(zap.String("repository", "band_package")),
	}
}

func (r *bandPackageRepository) FindAllActive(ctx context.Context) ([]*entity.BandPackage, error) {
	query := `
		SELECT id, key, label, price, active, created_at
		FROM band_packages
		WHERE active = TRUE
		ORDER BY price
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active packages", zap.Error(err))
		return nil, fmt.Errorf("find active packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.BandPackage
	for rows.Next() {
		var pkg entity.BandPackage
		err := rows.Scan(
			&pkg.ID,
			&pkg.Key,
			&pkg.Label,
			&pkg.Price,
			&pkg.Active,
			&pkg.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	return packages, nil
}

func (r *bandPackageRepository) FindByKey(ctx context.Context, key string) (*entity.BandPackage, error) {
	query := `
		SELECT id, key, label, price, active, created_at
		FROM band_packages
		WHERE key = $1
	`

	var pkg entity.BandPackage
	err := r.db.QueryRow(ctx, query, key).Scan(
		&pkg.ID,
		&pkg.Key,
		&pkg.Label,
		&pkg.Price,
		&pkg.Active,
		&pkg.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by key",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("find package %s: %w", key, err)
	}

	return &pkg, nil
}
