package usecase

import (
	"context"
	"encoding/json"

	"band-booking/internal/booking"
	"band-booking/internal/data/repository"
	"band-booking/internal/dto/response"
	"band-booking/pkg/cache"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const catalogCacheKey = "catalog:v1"

// defaultPackages is the fallback tier list offered when the catalog
// cannot be loaded. The booking form must stay usable for gig bookings
// even with the database down.
var defaultPackages = []response.BandPackageResponse{
	{Key: "small", Label: "Small Ensemble", Price: decimal.NewFromInt(10000)},
	{Key: "standard", Label: "Standard Marching Band", Price: decimal.NewFromInt(20000)},
	{Key: "full", Label: "Full Band with Color Guard", Price: decimal.NewFromInt(35000)},
}

type CatalogService interface {
	GetCatalog(ctx context.Context) (*response.CatalogResponse, error)
	GetServices(ctx context.Context) ([]response.ServiceResponse, error)
	GetPackages(ctx context.Context) ([]response.BandPackageResponse, error)
	GetInstruments(ctx context.Context) ([]response.InstrumentResponse, error)
	PriceCatalog(ctx context.Context) booking.PriceCatalog
	InvalidateCache(ctx context.Context)
}

type catalogService struct {
	repo  *repository.Repository
	cache *cache.Store
	log   *zap.Logger
}

func NewCatalogService(repo *repository.Repository, cacheStore *cache.Store, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cacheStore,
		log:   log.With(zap.String("service", "catalog")),
	}
}

// GetCatalog returns the full booking-form catalog. Reads through the
// cache; on any load failure it degrades to the default packages and
// empty instrument/service lists instead of erroring.
func (s *catalogService) GetCatalog(ctx context.Context) (*response.CatalogResponse, error) {
	if payload, ok := s.cache.Get(ctx, catalogCacheKey); ok {
		var cached response.CatalogResponse
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			return &cached, nil
		}
		s.log.Warn("Discarding unreadable cached catalog")
	}

	catalog := &response.CatalogResponse{
		Services:    s.loadServices(ctx),
		Packages:    s.loadPackages(ctx),
		Instruments: s.loadInstruments(ctx),
	}

	if payload, err := json.Marshal(catalog); err == nil {
		s.cache.Set(ctx, catalogCacheKey, string(payload))
	}

	return catalog, nil
}

func (s *catalogService) GetServices(ctx context.Context) ([]response.ServiceResponse, error) {
	return s.loadServices(ctx), nil
}

func (s *catalogService) GetPackages(ctx context.Context) ([]response.BandPackageResponse, error) {
	return s.loadPackages(ctx), nil
}

func (s *catalogService) GetInstruments(ctx context.Context) ([]response.InstrumentResponse, error) {
	return s.loadInstruments(ctx), nil
}

// PriceCatalog assembles the rate tables the estimator prices against.
// Uses the same degraded fallbacks as the catalog endpoints, so an
// estimate against a fallback package is consistent with what the form
// offered.
func (s *catalogService) PriceCatalog(ctx context.Context) booking.PriceCatalog {
	catalog := booking.PriceCatalog{
		PackagePrices:   make(map[string]decimal.Decimal),
		InstrumentRates: make(map[string]decimal.Decimal),
	}

	for _, pkg := range s.loadPackages(ctx) {
		catalog.PackagePrices[pkg.Key] = pkg.Price
	}
	for _, inst := range s.loadInstruments(ctx) {
		catalog.InstrumentRates[inst.ID] = inst.PricePerDay
	}

	return catalog
}

// InvalidateCache drops the cached catalog after a mutation (instrument
// created, archived, quantity adjusted).
func (s *catalogService) InvalidateCache(ctx context.Context) {
	s.cache.Invalidate(ctx, catalogCacheKey)
}

func (s *catalogService) loadServices(ctx context.Context) []response.ServiceResponse {
	services, err := s.repo.Service.FindAll(ctx)
	if err != nil {
		s.log.Warn("Catalog degraded: failed to load services", zap.Error(err))
		return []response.ServiceResponse{}
	}

	out := make([]response.ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, response.ServiceToResponse(svc))
	}
	return out
}

func (s *catalogService) loadPackages(ctx context.Context) []response.BandPackageResponse {
	packages, err := s.repo.BandPackage.FindAllActive(ctx)
	if err != nil {
		s.log.Warn("Catalog degraded: falling back to default packages", zap.Error(err))
		return defaultPackages
	}

	out := make([]response.BandPackageResponse, 0, len(packages))
	for _, pkg := range packages {
		out = append(out, response.BandPackageToResponse(pkg))
	}
	return out
}

func (s *catalogService) loadInstruments(ctx context.Context) []response.InstrumentResponse {
	instruments, err := s.repo.Instrument.FindRentable(ctx)
	if err != nil {
		s.log.Warn("Catalog degraded: failed to load instruments", zap.Error(err))
		return []response.InstrumentResponse{}
	}

	out := make([]response.InstrumentResponse, 0, len(instruments))
	for _, inst := range instruments {
		out = append(out, response.InstrumentToResponse(inst))
	}
	return out
}
