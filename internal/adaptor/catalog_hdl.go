package adaptor

import (
	"net/http"

	"band-booking/internal/usecase"
	"band-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCatalog handles GET /api/catalog (public)
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.GetCatalog(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get catalog")
		return
	}

	utils.ResponseSuccess(w, "success", catalog)
}

// GetServices handles GET /api/services (public)
func (h *CatalogHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.GetServices(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetPackages handles GET /api/band-packages (public)
func (h *CatalogHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.GetPackages(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetInstruments handles GET /api/instruments (public)
func (h *CatalogHandler) GetInstruments(w http.ResponseWriter, r *http.Request) {
	instruments, err := h.service.GetInstruments(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get instruments")
		return
	}

	utils.ResponseSuccess(w, "success", instruments)
}
