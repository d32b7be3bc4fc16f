package usecase

import (
	"context"
	"fmt"

	"band-booking/internal/data/repository"
	"band-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ReportService interface {
	SalesReport(ctx context.Context, from, to string) (*response.SalesReportResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

// SalesReport aggregates the booking pipeline over an inclusive date
// window. Net revenue is paid revenue minus maintenance spend.
func (s *reportService) SalesReport(ctx context.Context, from, to string) (*response.SalesReportResponse, error) {
	if err := validateDateWindow(from, to); err != nil {
		return nil, err
	}

	counts, err := s.repo.Report.CountByStatus(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to build report", zap.Error(err))
		return nil, fmt.Errorf("failed to build report")
	}

	paid, err := s.repo.Report.PaidRevenue(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to build report", zap.Error(err))
		return nil, fmt.Errorf("failed to build report")
	}

	approved, err := s.repo.Report.ApprovedValue(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to build report", zap.Error(err))
		return nil, fmt.Errorf("failed to build report")
	}

	byService, err := s.repo.Report.RevenueByService(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to build report", zap.Error(err))
		return nil, fmt.Errorf("failed to build report")
	}

	maintenance, err := s.repo.Report.MaintenanceSpend(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to build report", zap.Error(err))
		return nil, fmt.Errorf("failed to build report")
	}

	return &response.SalesReportResponse{
		From:             from,
		To:               to,
		CountsByStatus:   counts,
		PaidRevenue:      paid,
		ApprovedValue:    approved,
		MaintenanceSpend: maintenance,
		NetRevenue:       paid.Sub(maintenance),
		ByService:        response.RevenueLinesToResponse(byService),
	}, nil
}
