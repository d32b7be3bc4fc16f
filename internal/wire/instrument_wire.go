package wire

import (
	"band-booking/internal/adaptor"
	"band-booking/internal/data/repository"
	"band-booking/pkg/middleware"
	"band-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInstrument(
	r chi.Router,
	instrumentHandler *adaptor.InstrumentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Inventory management; the public rentable list lives in the catalog.
	r.Route("/api/admin/instruments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/instruments - Add to inventory
		r.Post("/", instrumentHandler.Create)

		// GET /api/admin/instruments?include_archived= - Full inventory
		r.Get("/", instrumentHandler.GetAll)

		// GET /api/admin/instruments/{id} - Detail with maintenance history
		r.Get("/{id}", instrumentHandler.GetByID)

		// PUT /api/admin/instruments/{id} - Update
		r.Put("/{id}", instrumentHandler.Update)

		// DELETE /api/admin/instruments/{id} - Archive, keep history
		r.Delete("/{id}", instrumentHandler.Archive)

		// POST /api/admin/instruments/{id}/maintenance - Record upkeep
		r.Post("/{id}/maintenance", instrumentHandler.RecordMaintenance)
	})
}
