package adaptor

import (
	"net/http"
	"strings"

	"band-booking/internal/usecase"
	"band-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Catalog    *CatalogHandler
	Booking    *BookingHandler
	Rental     *RentalHandler
	Instrument *InstrumentHandler
	Membership *MembershipHandler
	Report     *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		User:       NewUserHandler(service.User, log),
		Catalog:    NewCatalogHandler(service.Catalog, log),
		Booking:    NewBookingHandler(service.Booking, service.Rental, log),
		Rental:     NewRentalHandler(service.Rental, log),
		Instrument: NewInstrumentHandler(service.Instrument, log),
		Membership: NewMembershipHandler(service.Membership, log),
		Report:     NewReportHandler(service.Report, log),
	}
}

// handleServiceError maps service-layer error messages onto HTTP statuses.
// Services return user-facing messages; the substrings routed on here are
// part of their contract.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already"):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg, nil)

	case strings.Contains(errMsg, "cannot"):
		log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not available"):
		log.Warn(operation+" failed - unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg, nil)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "An error occurred")
	}
}
