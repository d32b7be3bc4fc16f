package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"band-booking/internal/booking"
	"band-booking/internal/data/entity"
	"band-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func newTestBookingService(reservations *fakeReservationRepo, packages *fakeBandPackageRepo, instruments *fakeInstrumentRepo) BookingService {
	repo := newTestRepository(reservations, nil, instruments, nil, packages, nil, nil)
	catalog := NewCatalogService(repo, nil, zap.NewNop())
	return NewBookingService(repo, catalog, zap.NewNop())
}

func arrangementRequest(pieces int) *request.CreateReservationRequest {
	return &request.CreateReservationRequest{
		RequestID:     uuid.NewString(),
		ServiceName:   booking.ServiceMusicArrangement,
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		Location:      "Civic Hall",
		Date:          "2025-06-01",
		NumPieces:     pieces,
	}
}

func TestCreateReservationArrangement(t *testing.T) {
	reservations := &fakeReservationRepo{}
	svc := newTestBookingService(reservations, nil, nil)

	resp, err := svc.CreateReservation(context.Background(), uuid.New(), arrangementRequest(2))
	if err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}

	if !resp.EstimatedValue.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("estimated value = %s, want 6000", resp.EstimatedValue)
	}
	if resp.Status != booking.StatusPending {
		t.Errorf("status = %s, want pending", resp.Status)
	}
	if resp.Code == "" {
		t.Error("expected a reservation code")
	}
	if len(reservations.reservations) != 1 {
		t.Fatalf("stored %d reservations, want 1", len(reservations.reservations))
	}
}

func TestCreateReservationIdempotent(t *testing.T) {
	reservations := &fakeReservationRepo{}
	svc := newTestBookingService(reservations, nil, nil)

	req := arrangementRequest(2)
	userID := uuid.New()

	first, err := svc.CreateReservation(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("first submit error = %v", err)
	}

	second, err := svc.CreateReservation(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("second submit error = %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("duplicate submit created a new reservation: %s vs %s", first.ID, second.ID)
	}
	if len(reservations.reservations) != 1 {
		t.Errorf("stored %d reservations, want 1", len(reservations.reservations))
	}
}

func TestCreateReservationBandGigUsesPackagePrice(t *testing.T) {
	packages := &fakeBandPackageRepo{packages: []*entity.BandPackage{
		{Key: "standard", Label: "Standard", Price: decimal.NewFromInt(20000), Active: true},
	}}
	svc := newTestBookingService(nil, packages, nil)

	req := &request.CreateReservationRequest{
		RequestID:     uuid.NewString(),
		ServiceName:   booking.ServiceBandGig,
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		Location:      "Main Street",
		PackageKey:    "standard",
		EventDate:     "2025-07-04",
		StartTime:     "10:00",
		EndTime:       "12:00",
	}

	resp, err := svc.CreateReservation(context.Background(), uuid.New(), req)
	if err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}

	if !resp.EstimatedValue.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("estimated value = %s, want 20000", resp.EstimatedValue)
	}
	if resp.Date != "2025-07-04" {
		t.Errorf("date = %s, want the event date", resp.Date)
	}
}

func TestCreateReservationRejectsRentals(t *testing.T) {
	svc := newTestBookingService(nil, nil, nil)

	req := &request.CreateReservationRequest{
		RequestID:     uuid.NewString(),
		ServiceName:   booking.ServiceInstrumentRental,
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		Location:      "Band Room",
		InstrumentID:  uuid.NewString(),
		StartDate:     "2025-01-10",
		EndDate:       "2025-01-12",
		Purpose:       "practice",
	}

	if _, err := svc.CreateReservation(context.Background(), uuid.New(), req); err == nil {
		t.Fatal("expected rentals to be rejected by the generic booking flow")
	}
}

func TestCreateReservationUnknownServiceFailsClosed(t *testing.T) {
	svc := newTestBookingService(nil, nil, nil)

	req := arrangementRequest(1)
	req.ServiceName = "Nonexistent Service"

	_, err := svc.CreateReservation(context.Background(), uuid.New(), req)
	if err == nil {
		t.Fatal("expected unknown service to be invalid")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("error = %v, want a validation failure", err)
	}
}

func TestCancelReservation(t *testing.T) {
	seed := func(status booking.Status) (*fakeReservationRepo, uuid.UUID) {
		id := uuid.New()
		repo := &fakeReservationRepo{reservations: []*entity.Reservation{{
			Base:          entity.Base{ID: id, CreatedAt: time.Now()},
			Code:          "RSV-TEST",
			CustomerEmail: "dana@example.com",
			ServiceName:   booking.ServiceMusicWorkshop,
			Status:        status,
		}}}
		return repo, id
	}

	t.Run("pending cancellable by matching email", func(t *testing.T) {
		repo, id := seed(booking.StatusPending)
		svc := newTestBookingService(repo, nil, nil)

		err := svc.CancelReservation(context.Background(), id, &request.CancelReservationRequest{Email: "Dana@Example.com"})
		if err != nil {
			t.Fatalf("CancelReservation() error = %v", err)
		}
		if repo.reservations[0].Status != booking.StatusCancelled {
			t.Errorf("status = %s, want cancelled", repo.reservations[0].Status)
		}
	})

	t.Run("wrong email reports not found", func(t *testing.T) {
		repo, id := seed(booking.StatusPending)
		svc := newTestBookingService(repo, nil, nil)

		err := svc.CancelReservation(context.Background(), id, &request.CancelReservationRequest{Email: "other@example.com"})
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Errorf("error = %v, want not found", err)
		}
	})

	t.Run("paid not cancellable", func(t *testing.T) {
		repo, id := seed(booking.StatusPaid)
		svc := newTestBookingService(repo, nil, nil)

		err := svc.CancelReservation(context.Background(), id, &request.CancelReservationRequest{Email: "dana@example.com"})
		if err == nil || !strings.Contains(err.Error(), "cannot") {
			t.Errorf("error = %v, want a cannot-cancel failure", err)
		}
	})
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    booking.Status
		to      string
		wantErr bool
	}{
		{"pending to approved", booking.StatusPending, "approved", false},
		{"pending to rejected", booking.StatusPending, "rejected", false},
		{"pending to paid", booking.StatusPending, "paid", true},
		{"approved to paid", booking.StatusApproved, "paid", false},
		{"approved to rejected", booking.StatusApproved, "rejected", true},
		{"cancelled to approved", booking.StatusCancelled, "approved", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			repo := &fakeReservationRepo{reservations: []*entity.Reservation{{
				Base:   entity.Base{ID: id},
				Status: tt.from,
			}}}
			svc := newTestBookingService(repo, nil, nil)

			err := svc.UpdateStatus(context.Background(), id, &request.UpdateReservationStatusRequest{Status: tt.to})
			if (err != nil) != tt.wantErr {
				t.Errorf("UpdateStatus(%s -> %s) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestGetCalendarApprovedDominatesPending(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*entity.Reservation{
		{Base: entity.Base{ID: uuid.New()}, Date: "2025-03-10", Status: booking.StatusPending},
		{Base: entity.Base{ID: uuid.New()}, Date: "2025-03-10", Status: booking.StatusApproved},
		{Base: entity.Base{ID: uuid.New()}, Date: "2025-03-11", Status: booking.StatusPending},
		{Base: entity.Base{ID: uuid.New()}, Date: "2025-03-12", Status: booking.StatusCancelled},
	}}
	svc := newTestBookingService(repo, nil, nil)

	resp, err := svc.GetCalendar(context.Background(), "2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("GetCalendar() error = %v", err)
	}

	if len(resp.Days) != 2 {
		t.Fatalf("got %d days, want 2 (cancelled dates are available by omission)", len(resp.Days))
	}
	if resp.Days[0].Date != "2025-03-10" || resp.Days[0].Status != booking.DayApproved {
		t.Errorf("day[0] = %+v, want 2025-03-10 approved", resp.Days[0])
	}
	if resp.Days[1].Date != "2025-03-11" || resp.Days[1].Status != booking.DayPending {
		t.Errorf("day[1] = %+v, want 2025-03-11 pending", resp.Days[1])
	}
}

func TestEstimateRentalPricing(t *testing.T) {
	instrumentID := uuid.New()
	instruments := &fakeInstrumentRepo{instruments: []*entity.Instrument{{
		Base:              entity.Base{ID: instrumentID},
		Name:              "Sousaphone",
		PricePerDay:       decimal.NewFromInt(500),
		AvailableQuantity: 2,
	}}}
	svc := newTestBookingService(nil, nil, instruments)

	resp, err := svc.Estimate(context.Background(), &request.EstimateRequest{
		ServiceName:  booking.ServiceInstrumentRental,
		InstrumentID: instrumentID.String(),
		StartDate:    "2025-01-10",
		EndDate:      "2025-01-12",
	})
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}

	if !resp.EstimatedValue.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("estimated value = %s, want 1500 (500 x 3 inclusive days)", resp.EstimatedValue)
	}
}
