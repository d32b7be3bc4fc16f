package adaptor

import (
	"encoding/json"
	"net/http"

	"band-booking/internal/dto/request"
	"band-booking/internal/usecase"
	"band-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InstrumentHandler struct {
	service usecase.InstrumentService
	log     *zap.Logger
}

func NewInstrumentHandler(service usecase.InstrumentService, log *zap.Logger) *InstrumentHandler {
	return &InstrumentHandler{
		service: service,
		log:     log.With(zap.String("handler", "instrument")),
	}
}

// Create handles POST /api/admin/instruments (admin)
func (h *InstrumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInstrumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	instrument, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create instrument")
		return
	}

	utils.ResponseCreated(w, "success", instrument)
}

// Update handles PUT /api/admin/instruments/{id} (admin)
func (h *InstrumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid instrument ID", nil)
		return
	}

	var req request.UpdateInstrumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	instrument, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update instrument")
		return
	}

	utils.ResponseSuccess(w, "success", instrument)
}

// Archive handles DELETE /api/admin/instruments/{id} (admin)
func (h *InstrumentHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid instrument ID", nil)
		return
	}

	if err := h.service.Archive(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "archive instrument")
		return
	}

	utils.ResponseSuccess(w, "Instrument archived", nil)
}

// GetAll handles GET /api/admin/instruments (admin)
func (h *InstrumentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("include_archived") == "true"

	instruments, err := h.service.GetAll(r.Context(), includeArchived)
	if err != nil {
		handleServiceError(h.log, w, err, "get instruments")
		return
	}

	utils.ResponseSuccess(w, "success", instruments)
}

// GetByID handles GET /api/admin/instruments/{id} (admin)
func (h *InstrumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid instrument ID", nil)
		return
	}

	instrument, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get instrument")
		return
	}

	utils.ResponseSuccess(w, "success", instrument)
}

// RecordMaintenance handles POST /api/admin/instruments/{id}/maintenance (admin)
func (h *InstrumentHandler) RecordMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid instrument ID", nil)
		return
	}

	var req request.CreateMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.service.RecordMaintenance(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "record maintenance")
		return
	}

	utils.ResponseCreated(w, "success", record)
}
