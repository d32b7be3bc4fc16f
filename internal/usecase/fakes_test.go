package usecase

import (
	"context"
	"errors"

	"band-booking/internal/booking"
	"band-booking/internal/data/entity"
	"band-booking/internal/data/repository"
	"band-booking/pkg/queue"

	"github.com/google/uuid"
)

// In-memory repository fakes. Each fake optionally fails every call with
// err, to exercise the degraded paths.

type fakeReservationRepo struct {
	err          error
	reservations []*entity.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *entity.Reservation) error {
	if f.err != nil {
		return f.err
	}
	f.reservations = append(f.reservations, reservation)
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindByRequestID(_ context.Context, requestID uuid.UUID) (*entity.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.reservations {
		if r.RequestID == requestID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, r := range f.reservations {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeReservationRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

func (f *fakeReservationRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.reservations)), nil
}

func (f *fakeReservationRepo) FindByDateRange(_ context.Context, from, to string) ([]*entity.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Reservation
	for _, r := range f.reservations {
		if r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status) error {
	if f.err != nil {
		return f.err
	}
	for _, r := range f.reservations {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return errors.New("reservation not found")
}

type fakeRentalRepo struct {
	err     error
	rentals []*entity.RentalRequest
}

func (f *fakeRentalRepo) Create(_ context.Context, request *entity.RentalRequest) error {
	if f.err != nil {
		return f.err
	}
	f.rentals = append(f.rentals, request)
	return nil
}

func (f *fakeRentalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RentalRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rentals {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRentalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.RentalRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.RentalRequest
	for _, r := range f.rentals {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRentalRepo) FindByStatus(_ context.Context, status entity.RentalRequestStatus) ([]*entity.RentalRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.RentalRequest
	for _, r := range f.rentals {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRentalRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.RentalRequestStatus) error {
	if f.err != nil {
		return f.err
	}
	for _, r := range f.rentals {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return errors.New("rental request not found")
}

type fakeInstrumentRepo struct {
	err         error
	adjustErr   error
	instruments []*entity.Instrument
}

func (f *fakeInstrumentRepo) Create(_ context.Context, instrument *entity.Instrument) error {
	if f.err != nil {
		return f.err
	}
	f.instruments = append(f.instruments, instrument)
	return nil
}

func (f *fakeInstrumentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Instrument, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, i := range f.instruments {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeInstrumentRepo) FindAll(_ context.Context, includeArchived bool) ([]*entity.Instrument, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Instrument
	for _, i := range f.instruments {
		if includeArchived || !i.IsArchived {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInstrumentRepo) FindRentable(_ context.Context) ([]*entity.Instrument, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Instrument
	for _, i := range f.instruments {
		if i.Rentable() {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInstrumentRepo) Update(_ context.Context, instrument *entity.Instrument) error {
	if f.err != nil {
		return f.err
	}
	for n, i := range f.instruments {
		if i.ID == instrument.ID {
			f.instruments[n] = instrument
			return nil
		}
	}
	return errors.New("instrument not found")
}

func (f *fakeInstrumentRepo) Archive(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for _, i := range f.instruments {
		if i.ID == id {
			i.IsArchived = true
			return nil
		}
	}
	return errors.New("instrument not found")
}

func (f *fakeInstrumentRepo) AdjustQuantity(_ context.Context, id uuid.UUID, delta int) error {
	if f.adjustErr != nil {
		return f.adjustErr
	}
	if f.err != nil {
		return f.err
	}
	for _, i := range f.instruments {
		if i.ID == id {
			if i.AvailableQuantity+delta < 0 {
				return errors.New("quantity cannot go negative")
			}
			i.AvailableQuantity += delta
			return nil
		}
	}
	return errors.New("instrument not found")
}

type fakeServiceRepo struct {
	err      error
	services []*entity.Service
}

func (f *fakeServiceRepo) FindAll(_ context.Context) ([]*entity.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

func (f *fakeServiceRepo) FindByName(_ context.Context, name string) (*entity.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.services {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

type fakeBandPackageRepo struct {
	err      error
	packages []*entity.BandPackage
}

func (f *fakeBandPackageRepo) FindAllActive(_ context.Context) ([]*entity.BandPackage, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.BandPackage
	for _, p := range f.packages {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBandPackageRepo) FindByKey(_ context.Context, key string) (*entity.BandPackage, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.packages {
		if p.Key == key {
			return p, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	err   error
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	for n, u := range f.users {
		if u.ID == user.ID {
			f.users[n] = user
			return nil
		}
	}
	return errors.New("user not found")
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id uuid.UUID, role entity.UserRole) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return errors.New("user not found")
}

type fakeMembershipRepo struct {
	err          error
	applications []*entity.MembershipApplication
}

func (f *fakeMembershipRepo) Create(_ context.Context, application *entity.MembershipApplication) error {
	if f.err != nil {
		return f.err
	}
	f.applications = append(f.applications, application)
	return nil
}

func (f *fakeMembershipRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MembershipApplication, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.applications {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeMembershipRepo) FindPendingByUserID(_ context.Context, userID uuid.UUID) (*entity.MembershipApplication, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.applications {
		if a.UserID == userID && a.Status == entity.ApplicationPending {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeMembershipRepo) FindByStatus(_ context.Context, status entity.ApplicationStatus) ([]*entity.MembershipApplication, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.MembershipApplication
	for _, a := range f.applications {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ApplicationStatus) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.applications {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return errors.New("application not found")
}

type publishedEvent struct {
	kind  string
	event queue.RentalRequestedEvent
}

type fakePublisher struct {
	err    error
	events []publishedEvent
}

func (f *fakePublisher) PublishRentalRequested(_ context.Context, kind string, event queue.RentalRequestedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, publishedEvent{kind: kind, event: event})
	return nil
}

// newTestRepository bundles fakes into the aggregate the services take.
func newTestRepository(
	reservations *fakeReservationRepo,
	rentals *fakeRentalRepo,
	instruments *fakeInstrumentRepo,
	services *fakeServiceRepo,
	packages *fakeBandPackageRepo,
	users *fakeUserRepo,
	memberships *fakeMembershipRepo,
) *repository.Repository {
	if reservations == nil {
		reservations = &fakeReservationRepo{}
	}
	if rentals == nil {
		rentals = &fakeRentalRepo{}
	}
	if instruments == nil {
		instruments = &fakeInstrumentRepo{}
	}
	if services == nil {
		services = &fakeServiceRepo{}
	}
	if packages == nil {
		packages = &fakeBandPackageRepo{}
	}
	if users == nil {
		users = &fakeUserRepo{}
	}
	if memberships == nil {
		memberships = &fakeMembershipRepo{}
	}

	return &repository.Repository{
		User:        users,
		Service:     services,
		BandPackage: packages,
		Instrument:  instruments,
		Reservation: reservations,
		Rental:      rentals,
		Membership:  memberships,
	}
}
