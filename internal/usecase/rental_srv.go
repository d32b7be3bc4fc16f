package usecase

import (
	"context"
	"fmt"
	"time"

	"band-booking/internal/booking"
	"band-booking/internal/data/entity"
	"band-booking/internal/data/repository"
	"band-booking/internal/dto/request"
	"band-booking/internal/dto/response"
	"band-booking/pkg/queue"
	"band-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QueuePublisher is the broker surface the rental flow needs. Satisfied by
// *queue.Publisher; narrowed to an interface so tests can capture events.
type QueuePublisher interface {
	PublishRentalRequested(ctx context.Context, kind string, event queue.RentalRequestedEvent) error
}

type RentalService interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, role entity.UserRole, req *request.CreateReservationRequest) (*response.RentalRequestResponse, error)
	GetMyRequests(ctx context.Context, userID uuid.UUID) ([]response.RentalRequestResponse, error)
	GetByStatus(ctx context.Context, status entity.RentalRequestStatus) ([]response.RentalRequestResponse, error)
	Decide(ctx context.Context, id uuid.UUID, req *request.RentalDecisionRequest) error
}

type rentalService struct {
	repo      *repository.Repository
	catalog   CatalogService
	publisher QueuePublisher
	log       *zap.Logger
}

func NewRentalService(
	repo *repository.Repository,
	catalog CatalogService,
	publisher QueuePublisher,
	log *zap.Logger,
) RentalService {
	return &rentalService{
		repo:      repo,
		catalog:   catalog,
		publisher: publisher,
		log:       log.With(zap.String("service", "rental")),
	}
}

// CreateRequest queues an instrument rental for approval. The channel kind
// follows the requester's role: plain users rent, members and admins
// borrow. The broker event is best-effort; the stored request is the
// source of truth.
func (s *rentalService) CreateRequest(ctx context.Context, userID uuid.UUID, role entity.UserRole, req *request.CreateReservationRequest) (*response.RentalRequestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingReq := req.ToBookingRequest()
	if errs := booking.Validate(bookingReq); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.ServiceName != booking.ServiceInstrumentRental {
		return nil, fmt.Errorf("invalid service: only instrument rentals are queued here")
	}

	instrumentID, err := utils.ParseUUID(req.InstrumentID)
	if err != nil {
		return nil, fmt.Errorf("invalid instrument_id")
	}

	instrument, err := s.repo.Instrument.FindByID(ctx, instrumentID)
	if err != nil {
		s.log.Error("Failed to find instrument", zap.Error(err), zap.String("instrument_id", req.InstrumentID))
		return nil, fmt.Errorf("failed to create rental request")
	}
	if instrument == nil {
		return nil, fmt.Errorf("instrument not found")
	}
	if !instrument.Rentable() {
		return nil, fmt.Errorf("instrument is not available for rental")
	}

	if booking.RentalDays(req.StartDate, req.EndDate) == 0 {
		return nil, fmt.Errorf("invalid rental dates")
	}

	estimate := booking.Estimate(bookingReq, s.catalog.PriceCatalog(ctx))
	kind := entity.RentalKindForRole(role)

	now := time.Now()
	rental := &entity.RentalRequest{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Kind:           kind,
		UserID:         userID,
		InstrumentID:   instrumentID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Purpose:        req.Purpose,
		EstimatedValue: estimate,
		Status:         entity.RentalRequestPending,
	}

	if err := s.repo.Rental.Create(ctx, rental); err != nil {
		s.log.Error("Failed to create rental request",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("instrument_id", req.InstrumentID))
		return nil, fmt.Errorf("failed to create rental request")
	}

	event := queue.RentalRequestedEvent{
		RequestID:      rental.ID.String(),
		Kind:           string(kind),
		UserID:         userID.String(),
		InstrumentID:   instrumentID.String(),
		InstrumentName: instrument.Name,
		CustomerName:   rental.CustomerName,
		CustomerEmail:  rental.CustomerEmail,
		StartDate:      rental.StartDate,
		EndDate:        rental.EndDate,
		Purpose:        rental.Purpose,
		EstimatedValue: estimate.String(),
		RequestedAt:    now.UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishRentalRequested(ctx, string(kind), event); err != nil {
		s.log.Warn("Rental event not published, request stored anyway",
			zap.Error(err),
			zap.String("rental_id", rental.ID.String()))
	}

	s.log.Info("Rental request queued",
		zap.String("rental_id", rental.ID.String()),
		zap.String("kind", string(kind)),
		zap.String("instrument", instrument.Name))

	resp := response.RentalRequestToResponse(rental, instrument)
	return &resp, nil
}

func (s *rentalService) GetMyRequests(ctx context.Context, userID uuid.UUID) ([]response.RentalRequestResponse, error) {
	rentals, err := s.repo.Rental.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list rental requests", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load rental requests")
	}

	return s.toResponses(ctx, rentals), nil
}

func (s *rentalService) GetByStatus(ctx context.Context, status entity.RentalRequestStatus) ([]response.RentalRequestResponse, error) {
	rentals, err := s.repo.Rental.FindByStatus(ctx, status)
	if err != nil {
		s.log.Error("Failed to list rental requests", zap.Error(err), zap.String("status", string(status)))
		return nil, fmt.Errorf("failed to load rental requests")
	}

	return s.toResponses(ctx, rentals), nil
}

// Decide resolves a pending rental request. Approval takes one unit of the
// instrument out of the available pool and invalidates the cached catalog.
func (s *rentalService) Decide(ctx context.Context, id uuid.UUID, req *request.RentalDecisionRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rental, err := s.repo.Rental.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find rental request", zap.Error(err), zap.String("rental_id", id.String()))
		return fmt.Errorf("failed to update rental request")
	}
	if rental == nil {
		return fmt.Errorf("rental request not found")
	}
	if rental.Status != entity.RentalRequestPending {
		return fmt.Errorf("cannot decide a %s rental request", rental.Status)
	}

	status := entity.RentalRequestStatus(req.Status)

	if status == entity.RentalRequestApproved {
		if err := s.repo.Instrument.AdjustQuantity(ctx, rental.InstrumentID, -1); err != nil {
			s.log.Error("Failed to reserve instrument unit",
				zap.Error(err),
				zap.String("instrument_id", rental.InstrumentID.String()))
			return fmt.Errorf("cannot approve: instrument is no longer available")
		}
		s.catalog.InvalidateCache(ctx)
	}

	if err := s.repo.Rental.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update rental request",
			zap.Error(err),
			zap.String("rental_id", id.String()),
			zap.String("status", req.Status))
		return fmt.Errorf("failed to update rental request")
	}

	s.log.Info("Rental request decided",
		zap.String("rental_id", id.String()),
		zap.String("status", req.Status))

	return nil
}

func (s *rentalService) toResponses(ctx context.Context, rentals []*entity.RentalRequest) []response.RentalRequestResponse {
	// Small result sets; one instrument lookup per distinct ID.
	instruments := make(map[uuid.UUID]*entity.Instrument)

	out := make([]response.RentalRequestResponse, 0, len(rentals))
	for _, rental := range rentals {
		instrument, ok := instruments[rental.InstrumentID]
		if !ok {
			instrument, _ = s.repo.Instrument.FindByID(ctx, rental.InstrumentID)
			instruments[rental.InstrumentID] = instrument
		}
		out = append(out, response.RentalRequestToResponse(rental, instrument))
	}
	return out
}
