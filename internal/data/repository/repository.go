package repository

import (
	"band-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Service     ServiceRepository
	BandPackage BandPackageRepository
	Instrument  InstrumentRepository
	Maintenance MaintenanceRepository
	Reservation ReservationRepository
	Rental      RentalRequestRepository
	Membership  MembershipRepository
	Report      ReportRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Service:     NewServiceRepository(db, log),
		BandPackage: NewBandPackageRepository(db, log),
		Instrument:  NewInstrumentRepository(db, log),
		Maintenance: NewMaintenanceRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Rental:      NewRentalRequestRepository(db, log),
		Membership:  NewMembershipRepository(db, log),
		Report:      NewReportRepository(db, log),
	}
}
