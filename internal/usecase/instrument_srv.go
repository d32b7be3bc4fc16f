package usecase

import (
	"context"
	"fmt"
	"time"

	"band-booking/internal/data/entity"
	"band-booking/internal/data/repository"
	"band-booking/internal/dto/request"
	"band-booking/internal/dto/response"
	"band-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type InstrumentService interface {
	Create(ctx context.Context, req *request.CreateInstrumentRequest) (*response.InstrumentDetailResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateInstrumentRequest) (*response.InstrumentDetailResponse, error)
	Archive(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context, includeArchived bool) ([]response.InstrumentDetailResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.InstrumentDetailResponse, error)
	RecordMaintenance(ctx context.Context, instrumentID uuid.UUID, req *request.CreateMaintenanceRequest) (*response.MaintenanceResponse, error)
}

type instrumentService struct {
	repo    *repository.Repository
	catalog CatalogService
	log     *zap.Logger
}

func NewInstrumentService(repo *repository.Repository, catalog CatalogService, log *zap.Logger) InstrumentService {
	return &instrumentService{
		repo:    repo,
		catalog: catalog,
		log:     log.With(zap.String("service", "instrument")),
	}
}

func (s *instrumentService) Create(ctx context.Context, req *request.CreateInstrumentRequest) (*response.InstrumentDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	instrument := &entity.Instrument{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:              req.Name,
		PricePerDay:       decimal.NewFromFloat(req.PricePerDay),
		AvailableQuantity: req.AvailableQuantity,
		Condition:         req.Condition,
		SerialNumber:      req.SerialNumber,
		Notes:             req.Notes,
	}

	if err := s.repo.Instrument.Create(ctx, instrument); err != nil {
		s.log.Error("Failed to create instrument", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create instrument")
	}

	s.catalog.InvalidateCache(ctx)

	s.log.Info("Instrument created",
		zap.String("instrument_id", instrument.ID.String()),
		zap.String("name", instrument.Name))

	resp := response.InstrumentToDetailResponse(instrument, nil)
	return &resp, nil
}

func (s *instrumentService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateInstrumentRequest) (*response.InstrumentDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	instrument, err := s.repo.Instrument.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find instrument", zap.Error(err), zap.String("instrument_id", id.String()))
		return nil, fmt.Errorf("failed to update instrument")
	}
	if instrument == nil {
		return nil, fmt.Errorf("instrument not found")
	}

	instrument.Name = req.Name
	instrument.PricePerDay = decimal.NewFromFloat(req.PricePerDay)
	instrument.AvailableQuantity = req.AvailableQuantity
	instrument.Condition = req.Condition
	instrument.SerialNumber = req.SerialNumber
	instrument.Notes = req.Notes
	instrument.UpdatedAt = time.Now()

	if err := s.repo.Instrument.Update(ctx, instrument); err != nil {
		s.log.Error("Failed to update instrument", zap.Error(err), zap.String("instrument_id", id.String()))
		return nil, fmt.Errorf("failed to update instrument")
	}

	s.catalog.InvalidateCache(ctx)

	records, _ := s.repo.Maintenance.FindByInstrumentID(ctx, id)
	resp := response.InstrumentToDetailResponse(instrument, records)
	return &resp, nil
}

// Archive takes an instrument out of the rentable pool without deleting
// its history.
func (s *instrumentService) Archive(ctx context.Context, id uuid.UUID) error {
	instrument, err := s.repo.Instrument.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find instrument", zap.Error(err), zap.String("instrument_id", id.String()))
		return fmt.Errorf("failed to archive instrument")
	}
	if instrument == nil {
		return fmt.Errorf("instrument not found")
	}

	if err := s.repo.Instrument.Archive(ctx, id); err != nil {
		s.log.Error("Failed to archive instrument", zap.Error(err), zap.String("instrument_id", id.String()))
		return fmt.Errorf("failed to archive instrument")
	}

	s.catalog.InvalidateCache(ctx)

	s.log.Info("Instrument archived", zap.String("instrument_id", id.String()))

	return nil
}

func (s *instrumentService) GetAll(ctx context.Context, includeArchived bool) ([]response.InstrumentDetailResponse, error) {
	instruments, err := s.repo.Instrument.FindAll(ctx, includeArchived)
	if err != nil {
		s.log.Error("Failed to list instruments", zap.Error(err))
		return nil, fmt.Errorf("failed to load instruments")
	}

	out := make([]response.InstrumentDetailResponse, 0, len(instruments))
	for _, instrument := range instruments {
		out = append(out, response.InstrumentToDetailResponse(instrument, nil))
	}
	return out, nil
}

func (s *instrumentService) GetByID(ctx context.Context, id uuid.UUID) (*response.InstrumentDetailResponse, error) {
	instrument, err := s.repo.Instrument.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find instrument", zap.Error(err), zap.String("instrument_id", id.String()))
		return nil, fmt.Errorf("failed to load instrument")
	}
	if instrument == nil {
		return nil, fmt.Errorf("instrument not found")
	}

	records, err := s.repo.Maintenance.FindByInstrumentID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load maintenance history", zap.Error(err), zap.String("instrument_id", id.String()))
		return nil, fmt.Errorf("failed to load instrument")
	}

	resp := response.InstrumentToDetailResponse(instrument, records)
	return &resp, nil
}

func (s *instrumentService) RecordMaintenance(ctx context.Context, instrumentID uuid.UUID, req *request.CreateMaintenanceRequest) (*response.MaintenanceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	instrument, err := s.repo.Instrument.FindByID(ctx, instrumentID)
	if err != nil {
		s.log.Error("Failed to find instrument", zap.Error(err), zap.String("instrument_id", instrumentID.String()))
		return nil, fmt.Errorf("failed to record maintenance")
	}
	if instrument == nil {
		return nil, fmt.Errorf("instrument not found")
	}

	performedAt, err := utils.ParseDate(req.PerformedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid performed_at: must be YYYY-MM-DD")
	}

	record := &entity.MaintenanceRecord{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		InstrumentID: instrumentID,
		Description:  req.Description,
		Cost:         decimal.NewFromFloat(req.Cost),
		PerformedAt:  performedAt,
	}

	if err := s.repo.Maintenance.Create(ctx, record); err != nil {
		s.log.Error("Failed to record maintenance",
			zap.Error(err),
			zap.String("instrument_id", instrumentID.String()))
		return nil, fmt.Errorf("failed to record maintenance")
	}

	s.log.Info("Maintenance recorded",
		zap.String("instrument_id", instrumentID.String()),
		zap.String("cost", record.Cost.String()))

	resp := response.MaintenanceToResponse(record)
	return &resp, nil
}
