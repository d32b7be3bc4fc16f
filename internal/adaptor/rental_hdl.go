package adaptor

import (
	"encoding/json"
	"net/http"

	"band-booking/internal/data/entity"
	"band-booking/internal/dto/request"
	"band-booking/internal/usecase"
	"band-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RentalHandler struct {
	service usecase.RentalService
	log     *zap.Logger
}

func NewRentalHandler(service usecase.RentalService, log *zap.Logger) *RentalHandler {
	return &RentalHandler{
		service: service,
		log:     log.With(zap.String("handler", "rental")),
	}
}

// GetMyRequests handles GET /api/user/rentals (protected)
func (h *RentalHandler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	rentals, err := h.service.GetMyRequests(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get my rentals")
		return
	}

	utils.ResponseSuccess(w, "success", rentals)
}

// GetPending handles GET /api/admin/rentals?status=pending (admin)
func (h *RentalHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	status := entity.RentalRequestStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = entity.RentalRequestPending
	}

	switch status {
	case entity.RentalRequestPending, entity.RentalRequestApproved, entity.RentalRequestRejected:
	default:
		utils.ResponseBadRequest(w, "Invalid status filter", nil)
		return
	}

	rentals, err := h.service.GetByStatus(r.Context(), status)
	if err != nil {
		handleServiceError(h.log, w, err, "get rental queue")
		return
	}

	utils.ResponseSuccess(w, "success", rentals)
}

// Decide handles PATCH /api/admin/rentals/{id} (admin)
func (h *RentalHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid rental request ID", nil)
		return
	}

	var req request.RentalDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Decide(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, err, "decide rental request")
		return
	}

	utils.ResponseSuccess(w, "Rental request updated", nil)
}
