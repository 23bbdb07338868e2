package dataset

import (
	"testing"

	"banca-insights/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestGenerateCustomers(t *testing.T) {
	customers, _ := Generate(42, 500)
	require.Len(t, customers, 500)

	seen := make(map[string]bool, len(customers))
	for _, c := range customers {
		require.False(t, seen[c.ID], "duplicate customer id %s", c.ID)
		seen[c.ID] = true

		require.GreaterOrEqual(t, c.Age, 18)
		require.LessOrEqual(t, c.Age, 70)
		require.GreaterOrEqual(t, c.ProductHoldings, 1)
		require.LessOrEqual(t, c.ProductHoldings, 5)
		require.GreaterOrEqual(t, c.TotalBalance, 0.0, "balance must be clamped at zero")
		require.True(t, c.IncomeSegment.Valid())
		require.True(t, c.RiskProfile.Valid())
		require.True(t, c.Region.Valid())
		require.Positive(t, c.LastTransactionDays)
	}
}

// TestGenerateCampaignGrid verifies the fixed campaign x month grid:
// each campaign has exactly one row per calendar month.
func TestGenerateCampaignGrid(t *testing.T) {
	_, metrics := Generate(42, 10)
	require.Len(t, metrics, len(domain.CampaignNames())*12)

	grid := make(map[string]map[int]bool)
	for _, m := range metrics {
		require.True(t, domain.KnownCampaign(m.CampaignName))
		require.GreaterOrEqual(t, m.Month, 1)
		require.LessOrEqual(t, m.Month, 12)
		require.GreaterOrEqual(t, m.ConversionRate, 0.0)
		require.Less(t, m.ConversionRate, 1.0)
		require.GreaterOrEqual(t, m.RevenueGenerated, 0.0)
		require.GreaterOrEqual(t, m.CostPerAcquisition, 0.0)

		if grid[m.CampaignName] == nil {
			grid[m.CampaignName] = make(map[int]bool)
		}
		require.False(t, grid[m.CampaignName][m.Month], "%s month %d duplicated", m.CampaignName, m.Month)
		grid[m.CampaignName][m.Month] = true
	}
	for name, months := range grid {
		require.Len(t, months, 12, "campaign %s", name)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	c1, m1 := Generate(7, 100)
	c2, m2 := Generate(7, 100)
	require.Equal(t, c1, c2, "same seed must yield the same customers")
	require.Equal(t, m1, m2, "same seed must yield the same metrics")

	c3, _ := Generate(8, 100)
	require.NotEqual(t, c1, c3, "different seeds should diverge")
}
