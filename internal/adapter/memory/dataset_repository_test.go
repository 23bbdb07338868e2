package memory

import (
	"context"
	"testing"

	"banca-insights/internal/core/domain"

	"github.com/stretchr/testify/require"
)

// The repository must hand out copies: callers mutating a returned slice
// must never affect the shared tables.
func TestRepositoryReturnsCopies(t *testing.T) {
	repo := NewDatasetRepository(
		[]domain.Customer{{ID: "CUST_0000", TotalBalance: 100, IncomeSegment: domain.IncomeLow, Region: domain.RegionNorth}},
		[]domain.CampaignMonthlyMetric{{CampaignName: "Mortgage", Month: 1, RevenueGenerated: 50}},
	)
	ctx := context.Background()

	customers, err := repo.Customers(ctx)
	require.NoError(t, err)
	customers[0].TotalBalance = -1

	again, err := repo.Customers(ctx)
	require.NoError(t, err)
	require.Equal(t, 100.0, again[0].TotalBalance)

	metrics, err := repo.CampaignMetrics(ctx)
	require.NoError(t, err)
	metrics[0].RevenueGenerated = 0

	again2, err := repo.CampaignMetrics(ctx)
	require.NoError(t, err)
	require.Equal(t, 50.0, again2[0].RevenueGenerated)
}
