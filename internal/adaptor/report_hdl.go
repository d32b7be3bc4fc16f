package adaptor

import (
	"net/http"

	"band-booking/internal/usecase"
	"band-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// SalesReport handles GET /api/admin/reports/sales?from=...&to=... (admin)
func (h *ReportHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	if from == "" || to == "" {
		utils.ResponseBadRequest(w, "from and to query parameters are required", nil)
		return
	}

	report, err := h.service.SalesReport(r.Context(), from, to)
	if err != nil {
		handleServiceError(h.log, w, err, "sales report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}
