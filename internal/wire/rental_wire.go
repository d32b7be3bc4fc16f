package wire

import (
	"band-booking/internal/adaptor"
	"band-booking/internal/data/repository"
	"band-booking/pkg/middleware"
	"band-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRental(
	r chi.Router,
	rentalHandler *adaptor.RentalHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/user/rentals - Caller's rental requests across statuses
		r.Get("/api/user/rentals", rentalHandler.GetMyRequests)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rentals", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/rentals?status= - Approval queue
		r.Get("/", rentalHandler.GetPending)

		// PATCH /api/admin/rentals/{id} - Approve or reject
		r.Patch("/{id}", rentalHandler.Decide)
	})
}
