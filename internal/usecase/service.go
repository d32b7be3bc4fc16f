package usecase

import (
	"band-booking/internal/data/repository"
	"band-booking/pkg/cache"
	"band-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Catalog    CatalogService
	Booking    BookingService
	Rental     RentalService
	Instrument InstrumentService
	Membership MembershipService
	Report     ReportService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	cacheStore *cache.Store,
	publisher QueuePublisher,
	log *zap.Logger,
) *Service {
	catalog := NewCatalogService(repo, cacheStore, log)

	return &Service{
		Auth:       NewAuthService(repo, config, log),
		User:       NewUserService(repo.User, log),
		Catalog:    catalog,
		Booking:    NewBookingService(repo, catalog, log),
		Rental:     NewRentalService(repo, catalog, publisher, log),
		Instrument: NewInstrumentService(repo, catalog, log),
		Membership: NewMembershipService(repo, log),
		Report:     NewReportService(repo, log),
	}
}
