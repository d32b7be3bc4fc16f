package response

import (
	"band-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ServiceResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	RequiresPackage    bool             `json:"requires_package"`
	RequiresInstrument bool             `json:"requires_instrument"`
	RequiresPieceCount bool             `json:"requires_piece_count"`
	BasePrice          *decimal.Decimal `json:"base_price,omitempty"`
}

type BandPackageResponse struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

type InstrumentResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	PricePerDay       decimal.Decimal `json:"price_per_day"`
	AvailableQuantity int             `json:"available_quantity"`
	Rentable          bool            `json:"rentable"`
}

// CatalogResponse is the one-shot payload the booking form needs: every
// offered service plus the selectable package and instrument lists.
type CatalogResponse struct {
	Services    []ServiceResponse     `json:"services"`
	Packages    []BandPackageResponse `json:"packages"`
	Instruments []InstrumentResponse  `json:"instruments"`
}

// Helper converters
func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:                 service.ID.String(),
		Name:               service.Name,
		RequiresPackage:    service.RequiresPackage,
		RequiresInstrument: service.RequiresInstrument,
		RequiresPieceCount: service.RequiresPieceCount,
		BasePrice:          service.BasePrice,
	}
}

func BandPackageToResponse(pkg *entity.BandPackage) BandPackageResponse {
	return BandPackageResponse{
		Key:   pkg.Key,
		Label: pkg.Label,
		Price: pkg.Price,
	}
}

func InstrumentToResponse(instrument *entity.Instrument) InstrumentResponse {
	return InstrumentResponse{
		ID:                instrument.ID.String(),
		Name:              instrument.Name,
		PricePerDay:       instrument.PricePerDay,
		AvailableQuantity: instrument.AvailableQuantity,
		Rentable:          instrument.Rentable(),
	}
}
