package repository

import (
	"context"
	"fmt"

	"band-booking/pkg/database"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ServiceRevenue is one line of the sales report: how much a service
// earned over the reporting window.
type ServiceRevenue struct {
	ServiceName  string
	Reservations int64
	Revenue      decimal.Decimal
}

type ReportRepository interface {
	CountByStatus(ctx context.Context, from, to string) (map[string]int64, error)
	PaidRevenue(ctx context.Context, from, to string) (decimal.Decimal, error)
	ApprovedValue(ctx context.Context, from, to string) (decimal.Decimal, error)
	RevenueByService(ctx context.Context, from, to string) ([]ServiceRevenue, error)
	MaintenanceSpend(ctx context.Context, from, to string) (decimal.Decimal, error)
}

type reportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReportRepository(db database.PgxIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

func (r *reportRepository) CountByStatus(ctx context.Context, from, to string) (map[string]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM reservations
		WHERE date >= $1 AND date <= $2 AND deleted_at IS NULL
		GROUP BY status
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to count reservations by status", zap.Error(err))
		return nil, fmt.Errorf("count reservations by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			r.log.Error("Failed to scan status count row", zap.Error(err))
			return nil, fmt.Errorf("scan status count row: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}

func (r *reportRepository) PaidRevenue(ctx context.Context, from, to string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(estimated_value), 0)
		FROM reservations
		WHERE date >= $1 AND date <= $2 AND status = 'paid' AND deleted_at IS NULL
	`

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		r.log.Error("Failed to sum paid revenue", zap.Error(err))
		return decimal.Zero, fmt.Errorf("sum paid revenue: %w", err)
	}

	return total, nil
}

func (r *reportRepository) ApprovedValue(ctx context.Context, from, to string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(estimated_value), 0)
		FROM reservations
		WHERE date >= $1 AND date <= $2 AND status = 'approved' AND deleted_at IS NULL
	`

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		r.log.Error("Failed to sum approved value", zap.Error(err))
		return decimal.Zero, fmt.Errorf("sum approved value: %w", err)
	}

	return total, nil
}

func (r *reportRepository) RevenueByService(ctx context.Context, from, to string) ([]ServiceRevenue, error) {
	query := `
		SELECT service_name, COUNT(*), COALESCE(SUM(estimated_value), 0)
		FROM reservations
		WHERE date >= $1 AND date <= $2 AND status IN ('approved', 'paid') AND deleted_at IS NULL
		GROUP BY service_name
		ORDER BY SUM(estimated_value) DESC
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to group revenue by service", zap.Error(err))
		return nil, fmt.Errorf("group revenue by service: %w", err)
	}
	defer rows.Close()

	var lines []ServiceRevenue
	for rows.Next() {
		var line ServiceRevenue
		if err := rows.Scan(&line.ServiceName, &line.Reservations, &line.Revenue); err != nil {
			r.log.Error("Failed to scan revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (r *reportRepository) MaintenanceSpend(ctx context.Context, from, to string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(cost), 0)
		FROM maintenance_records
		WHERE performed_at >= $1::date AND performed_at < ($2::date + INTERVAL '1 day')
	`

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		r.log.Error("Failed to sum maintenance spend", zap.Error(err))
		return decimal.Zero, fmt.Errorf("sum maintenance spend: %w", err)
	}

	return total, nil
}
