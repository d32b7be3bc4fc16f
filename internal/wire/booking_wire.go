package wire

import (
	"band-booking/internal/adaptor"
	"band-booking/internal/data/repository"
	"band-booking/pkg/middleware"
	"band-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings/estimate - Price the current form state
	r.Post("/api/bookings/estimate", bookingHandler.Estimate)

	// GET /api/availability?date= - Derived status for one date
	r.Get("/api/availability", bookingHandler.GetAvailability)

	// GET /api/calendar?from=&to= - Derived statuses over a window
	r.Get("/api/calendar", bookingHandler.GetCalendar)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Submit a reservation (rentals are routed
		// to the approval queue by the handler)
		r.Post("/api/bookings", bookingHandler.CreateReservation)

		// GET /api/user/bookings - Caller's reservation history
		r.Get("/api/user/bookings", bookingHandler.GetUserReservations)

		// PATCH /api/bookings/{id}/cancel - Cancel by matching email
		r.Patch("/api/bookings/{id}/cancel", bookingHandler.CancelReservation)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/bookings - All reservations, paginated
		r.Get("/", bookingHandler.GetAllReservations)

		// GET /api/admin/bookings/{id} - Any reservation's details
		r.Get("/{id}", bookingHandler.GetReservation)

		// PATCH /api/admin/bookings/{id}/status - Approval workflow
		r.Patch("/{id}/status", bookingHandler.UpdateStatus)
	})
}
