package adaptor

import (
	"encoding/json"
	"net/http"

	"band-booking/internal/booking"
	"band-booking/internal/data/entity"
	"band-booking/internal/dto/request"
	"band-booking/internal/usecase"
	"band-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	rental  usecase.RentalService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, rental usecase.RentalService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		rental:  rental,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateReservation handles POST /api/bookings (protected). Instrument
// rentals are routed to the approval queue instead of the generic
// reservation store; every other service books directly.
func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if req.ServiceName == booking.ServiceInstrumentRental {
		role, _ := utils.GetRoleFromContext(r.Context())

		rental, err := h.rental.CreateRequest(r.Context(), userID, entity.UserRole(role), &req)
		if err != nil {
			handleServiceError(h.log, w, err, "create rental request")
			return
		}

		utils.ResponseCreated(w, "success", rental)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// Estimate handles POST /api/bookings/estimate (public)
func (h *BookingHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req request.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	estimate, err := h.service.Estimate(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "estimate")
		return
	}

	utils.ResponseSuccess(w, "success", estimate)
}

// GetUserReservations handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reservations, err := h.service.GetUserReservations(r.Context(), userID, page)
	if err != nil {
		handleServiceError(h.log, w, err, "get user reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetAvailability handles GET /api/availability?date=YYYY-MM-DD (public)
func (h *BookingHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query parameter is required", nil)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), date)
	if err != nil {
		handleServiceError(h.log, w, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// GetCalendar handles GET /api/calendar?from=...&to=... (public)
func (h *BookingHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	if from == "" || to == "" {
		utils.ResponseBadRequest(w, "from and to query parameters are required", nil)
		return
	}

	calendar, err := h.service.GetCalendar(r.Context(), from, to)
	if err != nil {
		handleServiceError(h.log, w, err, "get calendar")
		return
	}

	utils.ResponseSuccess(w, "success", calendar)
}

// CancelReservation handles PATCH /api/bookings/{id}/cancel (protected)
func (h *BookingHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return
	}

	var req request.CancelReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.CancelReservation(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation cancelled", nil)
}

// GetAllReservations handles GET /api/admin/bookings (admin)
func (h *BookingHandler) GetAllReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reservations, err := h.service.GetAllReservations(r.Context(), page)
	if err != nil {
		handleServiceError(h.log, w, err, "get all reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetReservation handles GET /api/admin/bookings/{id} (admin)
func (h *BookingHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return
	}

	reservation, err := h.service.GetReservation(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// UpdateStatus handles PATCH /api/admin/bookings/{id}/status (admin)
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return
	}

	var req request.UpdateReservationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, err, "update reservation status")
		return
	}

	utils.ResponseSuccess(w, "Reservation updated", nil)
}
