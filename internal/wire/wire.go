package wire

import (
	"net/http"

	"band-booking/internal/adaptor"
	"band-booking/internal/data/repository"
	"band-booking/internal/usecase"
	"band-booking/pkg/cache"
	"band-booking/pkg/middleware"
	"band-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	cacheStore *cache.Store,
	publisher usecase.QueuePublisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, cacheStore, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireCatalog(r, handler.Catalog, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireRental(r, handler.Rental, repo, config, logger)
	wireInstrument(r, handler.Instrument, repo, config, logger)
	wireMembership(r, handler.Membership, repo, config, logger)
	wireReport(r, handler.Report, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
