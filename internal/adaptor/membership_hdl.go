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

type MembershipHandler struct {
	service usecase.MembershipService
	log     *zap.Logger
}

func NewMembershipHandler(service usecase.MembershipService, log *zap.Logger) *MembershipHandler {
	return &MembershipHandler{
		service: service,
		log:     log.With(zap.String("handler", "membership")),
	}
}

// Apply handles POST /api/membership/apply (protected)
func (h *MembershipHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ApplyMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	application, err := h.service.Apply(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "apply membership")
		return
	}

	utils.ResponseCreated(w, "success", application)
}

// GetApplications handles GET /api/admin/membership?status=pending (admin)
func (h *MembershipHandler) GetApplications(w http.ResponseWriter, r *http.Request) {
	status := entity.ApplicationStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = entity.ApplicationPending
	}

	switch status {
	case entity.ApplicationPending, entity.ApplicationApproved, entity.ApplicationRejected:
	default:
		utils.ResponseBadRequest(w, "Invalid status filter", nil)
		return
	}

	applications, err := h.service.GetByStatus(r.Context(), status)
	if err != nil {
		handleServiceError(h.log, w, err, "get applications")
		return
	}

	utils.ResponseSuccess(w, "success", applications)
}

// Decide handles PATCH /api/admin/membership/{id} (admin)
func (h *MembershipHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid application ID", nil)
		return
	}

	var req request.MembershipDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Decide(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, err, "decide application")
		return
	}

	utils.ResponseSuccess(w, "Application updated", nil)
}
