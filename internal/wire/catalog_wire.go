package wire

import (
	"band-booking/internal/adaptor"
	"band-booking/internal/data/repository"
	"band-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The booking form loads these before any authentication.

	// GET /api/catalog - Full catalog in one payload
	r.Get("/api/catalog", catalogHandler.GetCatalog)

	// GET /api/services - Service catalog
	r.Get("/api/services", catalogHandler.GetServices)

	// GET /api/band-packages - Active package tiers
	r.Get("/api/band-packages", catalogHandler.GetPackages)

	// GET /api/instruments - Rentable instruments
	r.Get("/api/instruments", catalogHandler.GetInstruments)
}
