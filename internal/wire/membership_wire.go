package wire

import (
	"band-booking/internal/adaptor"
	"band-booking/internal/data/repository"
	"band-booking/pkg/middleware"
	"band-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMembership(
	r chi.Router,
	membershipHandler *adaptor.MembershipHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/membership/apply - File an application
		r.Post("/api/membership/apply", membershipHandler.Apply)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/membership", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/membership?status= - Applications by status
		r.Get("/", membershipHandler.GetApplications)

		// PATCH /api/admin/membership/{id} - Approve or reject
		r.Patch("/{id}", membershipHandler.Decide)
	})
}
