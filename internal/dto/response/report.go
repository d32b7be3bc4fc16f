package response

import (
	"band-booking/internal/data/repository"

	"github.com/shopspring/decimal"
)

type ServiceRevenueLine struct {
	ServiceName  string          `json:"service_name"`
	Reservations int64           `json:"reservations"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// SalesReportResponse summarizes the booking pipeline over a date window:
// reservation counts per status, realized (paid) revenue, value still in
// the approved pipeline, and per-service revenue breakdown. Maintenance
// spend is subtracted to get the net figure.
type SalesReportResponse struct {
	From             string               `json:"from"`
	To               string               `json:"to"`
	CountsByStatus   map[string]int64     `json:"counts_by_status"`
	PaidRevenue      decimal.Decimal      `json:"paid_revenue"`
	ApprovedValue    decimal.Decimal      `json:"approved_value"`
	MaintenanceSpend decimal.Decimal      `json:"maintenance_spend"`
	NetRevenue       decimal.Decimal      `json:"net_revenue"`
	ByService        []ServiceRevenueLine `json:"by_service"`
}

// Helper converters
func RevenueLinesToResponse(lines []repository.ServiceRevenue) []ServiceRevenueLine {
	out := make([]ServiceRevenueLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, ServiceRevenueLine{
			ServiceName:  line.ServiceName,
			Reservations: line.Reservations,
			Revenue:      line.Revenue,
		})
	}
	return out
}
