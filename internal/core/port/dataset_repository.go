package port

import (
	"context"

	"banca-insights/internal/core/domain"
)

// DatasetRepository is the outbound port supplying the two source
// tables. Both are generated once at startup and never change, so
// implementations may be shared read-only across concurrent requests.
// Returned slices are owned by the caller.
type DatasetRepository interface {
	// Customers returns the full customer table in generation order.
	Customers(ctx context.Context) ([]domain.Customer, error)
	// CampaignMetrics returns the full campaign performance table:
	// twelve monthly rows per campaign.
	CampaignMetrics(ctx context.Context) ([]domain.CampaignMonthlyMetric, error)
}
