package usecase

import (
	"context"
	"errors"
	"testing"

	"band-booking/internal/booking"
	"band-booking/internal/data/entity"
	"band-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func newTestRentalService(rentals *fakeRentalRepo, instruments *fakeInstrumentRepo, publisher *fakePublisher) RentalService {
	repo := newTestRepository(nil, rentals, instruments, nil, nil, nil, nil)
	catalog := NewCatalogService(repo, nil, zap.NewNop())
	return NewRentalService(repo, catalog, publisher, zap.NewNop())
}

func seedInstrument(quantity int) (*fakeInstrumentRepo, uuid.UUID) {
	id := uuid.New()
	return &fakeInstrumentRepo{instruments: []*entity.Instrument{{
		Base:              entity.Base{ID: id},
		Name:              "Snare Drum",
		PricePerDay:       decimal.NewFromInt(500),
		AvailableQuantity: quantity,
	}}}, id
}

func rentalRequest(instrumentID uuid.UUID) *request.CreateReservationRequest {
	return &request.CreateReservationRequest{
		RequestID:     uuid.NewString(),
		ServiceName:   booking.ServiceInstrumentRental,
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		Location:      "Band Room",
		InstrumentID:  instrumentID.String(),
		StartDate:     "2025-01-10",
		EndDate:       "2025-01-12",
		Purpose:       "weekend practice",
	}
}

func TestCreateRequestChannelByRole(t *testing.T) {
	tests := []struct {
		name string
		role entity.UserRole
		want entity.RentalKind
	}{
		{"plain user rents", entity.RoleUser, entity.RentalKindRent},
		{"member borrows", entity.RoleMember, entity.RentalKindBorrow},
		{"admin borrows", entity.RoleAdmin, entity.RentalKindBorrow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instruments, instrumentID := seedInstrument(2)
			rentals := &fakeRentalRepo{}
			publisher := &fakePublisher{}
			svc := newTestRentalService(rentals, instruments, publisher)

			resp, err := svc.CreateRequest(context.Background(), uuid.New(), tt.role, rentalRequest(instrumentID))
			if err != nil {
				t.Fatalf("CreateRequest() error = %v", err)
			}

			if resp.Kind != tt.want {
				t.Errorf("kind = %s, want %s", resp.Kind, tt.want)
			}
			if resp.Status != entity.RentalRequestPending {
				t.Errorf("status = %s, want pending", resp.Status)
			}
			if !resp.EstimatedValue.Equal(decimal.NewFromInt(1500)) {
				t.Errorf("estimated value = %s, want 1500", resp.EstimatedValue)
			}

			if len(publisher.events) != 1 {
				t.Fatalf("published %d events, want 1", len(publisher.events))
			}
			if publisher.events[0].kind != string(tt.want) {
				t.Errorf("published to channel %q, want %q", publisher.events[0].kind, tt.want)
			}
		})
	}
}

func TestCreateRequestStoredWhenBrokerDown(t *testing.T) {
	instruments, instrumentID := seedInstrument(1)
	rentals := &fakeRentalRepo{}
	publisher := &fakePublisher{err: errors.New("broker unreachable")}
	svc := newTestRentalService(rentals, instruments, publisher)

	_, err := svc.CreateRequest(context.Background(), uuid.New(), entity.RoleUser, rentalRequest(instrumentID))
	if err != nil {
		t.Fatalf("CreateRequest() error = %v, want stored despite broker failure", err)
	}
	if len(rentals.rentals) != 1 {
		t.Errorf("stored %d rental requests, want 1", len(rentals.rentals))
	}
}

func TestCreateRequestRejectsUnrentableInstrument(t *testing.T) {
	instruments, instrumentID := seedInstrument(0)
	svc := newTestRentalService(&fakeRentalRepo{}, instruments, &fakePublisher{})

	if _, err := svc.CreateRequest(context.Background(), uuid.New(), entity.RoleUser, rentalRequest(instrumentID)); err == nil {
		t.Fatal("expected an instrument with zero quantity to be rejected")
	}
}

func TestCreateRequestRejectsInvertedDates(t *testing.T) {
	instruments, instrumentID := seedInstrument(1)
	svc := newTestRentalService(&fakeRentalRepo{}, instruments, &fakePublisher{})

	req := rentalRequest(instrumentID)
	req.StartDate = "2025-01-12"
	req.EndDate = "2025-01-10"

	if _, err := svc.CreateRequest(context.Background(), uuid.New(), entity.RoleUser, req); err == nil {
		t.Fatal("expected an inverted date range to be rejected")
	}
}

func TestDecideApprovalTakesInstrumentUnit(t *testing.T) {
	instruments, instrumentID := seedInstrument(1)
	rentalID := uuid.New()
	rentals := &fakeRentalRepo{rentals: []*entity.RentalRequest{{
		Base:         entity.Base{ID: rentalID},
		Kind:         entity.RentalKindRent,
		InstrumentID: instrumentID,
		Status:       entity.RentalRequestPending,
	}}}
	svc := newTestRentalService(rentals, instruments, &fakePublisher{})

	err := svc.Decide(context.Background(), rentalID, &request.RentalDecisionRequest{Status: "approved"})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if rentals.rentals[0].Status != entity.RentalRequestApproved {
		t.Errorf("status = %s, want approved", rentals.rentals[0].Status)
	}
	if got := instruments.instruments[0].AvailableQuantity; got != 0 {
		t.Errorf("available quantity = %d, want 0 after approval", got)
	}
}

func TestDecideApprovalFailsWhenNoUnitsLeft(t *testing.T) {
	instruments, instrumentID := seedInstrument(0)
	rentalID := uuid.New()
	rentals := &fakeRentalRepo{rentals: []*entity.RentalRequest{{
		Base:         entity.Base{ID: rentalID},
		Kind:         entity.RentalKindRent,
		InstrumentID: instrumentID,
		Status:       entity.RentalRequestPending,
	}}}
	svc := newTestRentalService(rentals, instruments, &fakePublisher{})

	err := svc.Decide(context.Background(), rentalID, &request.RentalDecisionRequest{Status: "approved"})
	if err == nil {
		t.Fatal("expected approval to fail with no units left")
	}
	if rentals.rentals[0].Status != entity.RentalRequestPending {
		t.Errorf("status = %s, want still pending", rentals.rentals[0].Status)
	}
}

func TestDecideRejectLeavesInventoryAlone(t *testing.T) {
	instruments, instrumentID := seedInstrument(3)
	rentalID := uuid.New()
	rentals := &fakeRentalRepo{rentals: []*entity.RentalRequest{{
		Base:         entity.Base{ID: rentalID},
		Kind:         entity.RentalKindBorrow,
		InstrumentID: instrumentID,
		Status:       entity.RentalRequestPending,
	}}}
	svc := newTestRentalService(rentals, instruments, &fakePublisher{})

	if err := svc.Decide(context.Background(), rentalID, &request.RentalDecisionRequest{Status: "rejected"}); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if got := instruments.instruments[0].AvailableQuantity; got != 3 {
		t.Errorf("available quantity = %d, want unchanged 3", got)
	}
}
