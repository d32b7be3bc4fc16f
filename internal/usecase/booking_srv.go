package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"band-booking/internal/booking"
	"band-booking/internal/data/entity"
	"band-booking/internal/data/repository"
	"band-booking/internal/dto/request"
	"band-booking/internal/dto/response"
	"band-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateReservation(ctx context.Context, userID uuid.UUID, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	Estimate(ctx context.Context, req *request.EstimateRequest) (*response.EstimateResponse, error)
	GetUserReservations(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	GetAllReservations(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	GetReservation(ctx context.Context, id uuid.UUID) (*response.ReservationResponse, error)
	GetCalendar(ctx context.Context, from, to string) (*response.CalendarResponse, error)
	GetAvailability(ctx context.Context, date string) (*response.DayAvailabilityResponse, error)
	CancelReservation(ctx context.Context, id uuid.UUID, req *request.CancelReservationRequest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateReservationStatusRequest) error
}

type bookingService struct {
	repo    *repository.Repository
	catalog CatalogService
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, catalog CatalogService, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		catalog: catalog,
		log:     log.With(zap.String("service", "booking")),
	}
}

// CreateReservation submits a booking for any service except instrument
// rentals, which are queued through the rental approval channel instead.
// The request UUID deduplicates double-submits: a second submission with
// the same request_id returns the already-created reservation.
func (s *bookingService) CreateReservation(ctx context.Context, userID uuid.UUID, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingReq := req.ToBookingRequest()
	if errs := booking.Validate(bookingReq); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.ServiceName == booking.ServiceInstrumentRental {
		return nil, fmt.Errorf("invalid service: instrument rentals are queued for approval, not booked directly")
	}

	requestID, err := utils.ParseUUID(req.RequestID)
	if err != nil {
		return nil, fmt.Errorf("invalid request_id")
	}

	existing, err := s.repo.Reservation.FindByRequestID(ctx, requestID)
	if err != nil {
		s.log.Error("Failed to check request ID", zap.Error(err), zap.String("request_id", req.RequestID))
		return nil, fmt.Errorf("failed to create reservation")
	}
	if existing != nil {
		s.log.Info("Duplicate submission, returning existing reservation",
			zap.String("request_id", req.RequestID),
			zap.String("reservation_id", existing.ID.String()))
		resp := response.ReservationToResponse(existing)
		return &resp, nil
	}

	// The estimate is recomputed server-side; a stale client value never
	// reaches storage.
	estimate := booking.Estimate(bookingReq, s.catalog.PriceCatalog(ctx))

	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:           utils.GenerateReservationCode(),
		RequestID:      requestID,
		UserID:         userID,
		ServiceName:    req.ServiceName,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		Location:       req.Location,
		Date:           req.Date,
		EstimatedValue: estimate,
		Status:         booking.StatusPending,
		Notes:          req.Notes,
	}

	switch req.ServiceName {
	case booking.ServiceBandGig:
		reservation.Date = req.EventDate
		reservation.StartTime = &req.StartTime
		reservation.EndTime = &req.EndTime
		reservation.PackageKey = &req.PackageKey
	case booking.ServiceMusicArrangement:
		pieces := req.NumPieces
		if pieces < 1 {
			pieces = 1
		}
		reservation.NumPieces = &pieces
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("service", req.ServiceName))
		return nil, fmt.Errorf("failed to create reservation")
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("code", reservation.Code),
		zap.String("service", reservation.ServiceName),
		zap.String("estimated_value", estimate.String()))

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

// Estimate prices the current form state. Incomplete selections price to
// zero instead of erroring, so the form can show a running total.
func (s *bookingService) Estimate(ctx context.Context, req *request.EstimateRequest) (*response.EstimateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingReq := booking.Request{ServiceName: req.ServiceName}
	switch req.ServiceName {
	case booking.ServiceBandGig:
		bookingReq.Options.BandGig = &booking.BandGigOptions{PackageKey: req.PackageKey}
	case booking.ServiceInstrumentRental:
		bookingReq.Options.Rental = &booking.RentalOptions{
			InstrumentID: req.InstrumentID,
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
		}
	case booking.ServiceMusicArrangement:
		bookingReq.Options.Arrangement = &booking.ArrangementOptions{NumPieces: req.NumPieces}
	case booking.ServiceMusicWorkshop:
		bookingReq.Options.Workshop = &booking.WorkshopOptions{}
	}

	estimate := booking.Estimate(bookingReq, s.catalog.PriceCatalog(ctx))

	return &response.EstimateResponse{
		ServiceName:    req.ServiceName,
		EstimatedValue: estimate,
	}, nil
}

func (s *bookingService) GetUserReservations(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	reservations, err := s.repo.Reservation.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list user reservations", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load reservations")
	}

	total, err := s.repo.Reservation.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user reservations", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load reservations")
	}

	return response.NewPaginatedResponse(toReservationResponses(reservations), page.Page, page.Limit(), total), nil
}

func (s *bookingService) GetAllReservations(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	reservations, err := s.repo.Reservation.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("failed to load reservations")
	}

	total, err := s.repo.Reservation.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count reservations", zap.Error(err))
		return nil, fmt.Errorf("failed to load reservations")
	}

	return response.NewPaginatedResponse(toReservationResponses(reservations), page.Page, page.Limit(), total), nil
}

func (s *bookingService) GetReservation(ctx context.Context, id uuid.UUID) (*response.ReservationResponse, error) {
	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find reservation", zap.Error(err), zap.String("reservation_id", id.String()))
		return nil, fmt.Errorf("failed to load reservation")
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation not found")
	}

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

// GetCalendar derives per-date availability over a window. Only dates that
// are pending or blocked appear; everything else is available by omission.
func (s *bookingService) GetCalendar(ctx context.Context, from, to string) (*response.CalendarResponse, error) {
	if err := validateDateWindow(from, to); err != nil {
		return nil, err
	}

	reservations, err := s.repo.Reservation.FindByDateRange(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to load calendar window", zap.Error(err),
			zap.String("from", from), zap.String("to", to))
		return nil, fmt.Errorf("failed to load calendar")
	}

	records := make([]booking.CalendarRecord, 0, len(reservations))
	dates := make(map[string]struct{})
	for _, res := range reservations {
		records = append(records, res.CalendarRecord())
		dates[res.Date] = struct{}{}
	}

	resp := &response.CalendarResponse{From: from, To: to, Days: []response.DayAvailabilityResponse{}}
	for date := range dates {
		status := booking.StatusFor(records, date)
		if status == booking.DayAvailable {
			continue
		}
		resp.Days = append(resp.Days, response.DayAvailabilityResponse{Date: date, Status: status})
	}

	sort.Slice(resp.Days, func(i, j int) bool { return resp.Days[i].Date < resp.Days[j].Date })

	return resp, nil
}

func (s *bookingService) GetAvailability(ctx context.Context, date string) (*response.DayAvailabilityResponse, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, fmt.Errorf("invalid date: must be YYYY-MM-DD")
	}

	reservations, err := s.repo.Reservation.FindByDateRange(ctx, date, date)
	if err != nil {
		s.log.Error("Failed to load availability", zap.Error(err), zap.String("date", date))
		return nil, fmt.Errorf("failed to load availability")
	}

	records := make([]booking.CalendarRecord, 0, len(reservations))
	for _, res := range reservations {
		records = append(records, res.CalendarRecord())
	}

	return &response.DayAvailabilityResponse{
		Date:   date,
		Status: booking.StatusFor(records, date),
	}, nil
}

// CancelReservation cancels by reservation ID, authorized by matching the
// customer email on the record. Only pending and approved reservations can
// be cancelled.
func (s *bookingService) CancelReservation(ctx context.Context, id uuid.UUID, req *request.CancelReservationRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find reservation", zap.Error(err), zap.String("reservation_id", id.String()))
		return fmt.Errorf("failed to cancel reservation")
	}
	if reservation == nil {
		return fmt.Errorf("reservation not found")
	}

	if !strings.EqualFold(reservation.CustomerEmail, req.Email) {
		return fmt.Errorf("reservation not found")
	}

	switch reservation.Status {
	case booking.StatusPending, booking.StatusApproved:
		// cancellable
	default:
		return fmt.Errorf("cannot cancel a %s reservation", reservation.Status)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, id, booking.StatusCancelled); err != nil {
		s.log.Error("Failed to cancel reservation", zap.Error(err), zap.String("reservation_id", id.String()))
		return fmt.Errorf("failed to cancel reservation")
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", id.String()),
		zap.String("code", reservation.Code))

	return nil
}

// UpdateStatus drives the approval workflow: pending reservations can be
// approved or rejected, approved reservations can be marked paid.
func (s *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateReservationStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find reservation", zap.Error(err), zap.String("reservation_id", id.String()))
		return fmt.Errorf("failed to update reservation")
	}
	if reservation == nil {
		return fmt.Errorf("reservation not found")
	}

	next := booking.Status(req.Status)
	allowed := false
	switch reservation.Status {
	case booking.StatusPending:
		allowed = next == booking.StatusApproved || next == booking.StatusRejected
	case booking.StatusApproved:
		allowed = next == booking.StatusPaid
	}
	if !allowed {
		return fmt.Errorf("cannot change a %s reservation to %s", reservation.Status, next)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, id, next); err != nil {
		s.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("status", req.Status))
		return fmt.Errorf("failed to update reservation")
	}

	s.log.Info("Reservation status updated",
		zap.String("reservation_id", id.String()),
		zap.String("from", string(reservation.Status)),
		zap.String("to", req.Status))

	return nil
}

func toReservationResponses(reservations []*entity.Reservation) []response.ReservationResponse {
	out := make([]response.ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, response.ReservationToResponse(res))
	}
	return out
}

func validateDateWindow(from, to string) error {
	start, err := utils.ParseDate(from)
	if err != nil {
		return fmt.Errorf("invalid from date: must be YYYY-MM-DD")
	}
	end, err := utils.ParseDate(to)
	if err != nil {
		return fmt.Errorf("invalid to date: must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return fmt.Errorf("invalid date window: to is before from")
	}
	return nil
}
